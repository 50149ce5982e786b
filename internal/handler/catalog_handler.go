package handler

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"medicomeet-api/internal/model"
)

type doctorQuery struct {
	ID               string `json:"id"`
	SpecializationID string `json:"specializationId"`
	Query            string `json:"query"`
	Days             int    `json:"days"`
}

type doctorsResponse struct {
	Doctors []model.Doctor `json:"doctors"`
}

func (h *Handler) ListSpecializations(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	specs, err := h.api.ListSpecializations(ctx)
	if err != nil {
		return nil, h.fail("list specializations", err)
	}
	return h.reply("list specializations", struct {
		Specializations []model.Specialization `json:"specializations"`
	}{specs})
}

func (h *Handler) ListDoctors(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	docs, err := h.api.ListDoctors(ctx)
	if err != nil {
		return nil, h.fail("list doctors", err)
	}
	return h.reply("list doctors", doctorsResponse{docs})
}

// GetDoctor answers found=false for an unknown id instead of NotFound.
func (h *Handler) GetDoctor(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var q doctorQuery
	if err := decode(in, &q); err != nil {
		return nil, err
	}
	d, ok, err := h.api.GetDoctor(ctx, q.ID)
	if err != nil {
		return nil, h.fail("get doctor", err)
	}
	resp := struct {
		Found  bool          `json:"found"`
		Doctor *model.Doctor `json:"doctor,omitempty"`
	}{Found: ok}
	if ok {
		resp.Doctor = &d
	}
	return h.reply("get doctor", resp)
}

func (h *Handler) ListDoctorsBySpecialization(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var q doctorQuery
	if err := decode(in, &q); err != nil {
		return nil, err
	}
	docs, err := h.api.ListDoctorsBySpecialization(ctx, q.SpecializationID)
	if err != nil {
		return nil, h.fail("list by specialization", err)
	}
	return h.reply("list by specialization", doctorsResponse{docs})
}

func (h *Handler) SearchDoctors(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var q doctorQuery
	if err := decode(in, &q); err != nil {
		return nil, err
	}
	docs, err := h.api.SearchDoctors(ctx, q.Query, q.SpecializationID)
	if err != nil {
		return nil, h.fail("search doctors", err)
	}
	return h.reply("search doctors", doctorsResponse{docs})
}

func (h *Handler) GetDoctorAvailability(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var q doctorQuery
	if err := decode(in, &q); err != nil {
		return nil, err
	}
	dates, ok, err := h.api.DoctorAvailability(ctx, q.ID, q.Days)
	if err != nil {
		return nil, h.fail("availability", err)
	}
	if dates == nil {
		dates = []model.DateAvailability{}
	}
	return h.reply("availability", struct {
		Found bool                     `json:"found"`
		Dates []model.DateAvailability `json:"dates"`
	}{ok, dates})
}
