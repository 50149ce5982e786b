package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"medicomeet-api/internal/booking"
	"medicomeet-api/internal/model"
	"medicomeet-api/internal/report"
)

func (h *Handler) ListAllAppointments(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	appts, err := h.api.ListAll(ctx)
	if err != nil {
		return nil, h.fail("list all", err)
	}
	return h.reply("list all", appointmentsResponse{appts})
}

func (h *Handler) FilterAppointments(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req struct {
		Query  string                  `json:"query"`
		Status model.AppointmentStatus `json:"status"`
		Date   string                  `json:"date"`
	}
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	if req.Status != "" && !req.Status.Valid() {
		return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", req.Status)
	}

	appts, err := h.api.FilterAppointments(ctx, booking.AppointmentFilter{
		Query:  req.Query,
		Status: req.Status,
		Date:   req.Date,
	})
	if err != nil {
		return nil, h.fail("filter", err)
	}
	return h.reply("filter", appointmentsResponse{appts})
}

func (h *Handler) GetOverview(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	o, err := h.api.Overview(ctx)
	if err != nil {
		return nil, h.fail("overview", err)
	}
	return h.reply("overview", struct {
		Overview report.Overview `json:"overview"`
	}{o})
}
