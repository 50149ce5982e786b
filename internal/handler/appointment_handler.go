package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"medicomeet-api/internal/middleware"
	"medicomeet-api/internal/model"
)

type appointmentsResponse struct {
	Appointments []model.Appointment `json:"appointments"`
}

func uid(ctx context.Context) (string, error) {
	id := middleware.UserID(ctx)
	if id == "" {
		return "", status.Error(codes.Unauthenticated, "not signed in")
	}
	return id, nil
}

// BookAppointment books for the signed-in user. A userId in the payload is
// ignored.
func (h *Handler) BookAppointment(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	userID, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	var req model.BookingRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	req.UserID = userID

	a, err := h.api.Book(ctx, req)
	if err != nil {
		return nil, h.fail("book", err)
	}
	return h.reply("book", struct {
		Appointment model.Appointment `json:"appointment"`
	}{a})
}

// CancelAppointment reports cancelled=false for an unknown id. Patients can
// only cancel their own bookings; someone else's looks unknown to them.
func (h *Handler) CancelAppointment(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	userID, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	var req struct {
		ID string `json:"id"`
	}
	if err := decode(in, &req); err != nil {
		return nil, err
	}

	var ok bool
	if middleware.Role(ctx) == model.RoleAdmin {
		ok, err = h.api.Cancel(ctx, req.ID)
	} else {
		ok, err = h.api.CancelForUser(ctx, req.ID, userID)
	}
	if err != nil {
		return nil, h.fail("cancel", err)
	}
	return h.reply("cancel", cancelResponse{ok})
}

type cancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

func (h *Handler) ListMyAppointments(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	userID, err := uid(ctx)
	if err != nil {
		return nil, err
	}
	appts, err := h.api.ListForUser(ctx, userID)
	if err != nil {
		return nil, h.fail("list mine", err)
	}
	return h.reply("list mine", appointmentsResponse{appts})
}
