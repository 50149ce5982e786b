package handler

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"medicomeet-api/internal/booking"
	"medicomeet-api/internal/store"
)

type Handler struct {
	api      booking.API
	users    *store.Users
	secret   string
	tokenTTL time.Duration
	log      zerolog.Logger
	validate *validator.Validate
}

func New(api booking.API, users *store.Users, secret string, tokenTTL time.Duration, log zerolog.Logger) *Handler {
	return &Handler{
		api:      api,
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
		log:      log.With().Str("component", "handler").Logger(),
		validate: validator.New(),
	}
}

var _ BookingServiceServer = (*Handler)(nil)

// fail maps an access layer error to a status. Unexpected causes are
// logged here and hidden from the caller.
func (h *Handler) fail(op string, err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidBooking):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request cancelled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	h.log.Error().Err(err).Str("op", op).Msg("request failed")
	return status.Error(codes.Internal, "internal error")
}

func (h *Handler) reply(op string, v any) (*structpb.Struct, error) {
	out, err := encode(v)
	if err != nil {
		return nil, h.fail(op, err)
	}
	return out, nil
}
