package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"medicomeet-api/internal/catalog"
	"medicomeet-api/internal/metrics"
	"medicomeet-api/internal/model"
	"medicomeet-api/internal/report"
	"medicomeet-api/internal/store"
)

var tracer = otel.Tracer("medicomeet.internal.booking")

const (
	defaultAvailabilityDays = 14
	maxAvailabilityDays     = 90
)

type Service struct {
	catalog *catalog.Catalog
	store   *store.Store
	metrics *metrics.Metrics
	log     zerolog.Logger
	now     func() time.Time
}

// NewService wires the access layer over an existing catalog and store.
// m may be nil.
func NewService(cat *catalog.Catalog, st *store.Store, log zerolog.Logger, m *metrics.Metrics) *Service {
	if cat == nil || st == nil {
		panic("booking: catalog and store required")
	}
	return &Service{
		catalog: cat,
		store:   st,
		metrics: m,
		log:     log.With().Str("component", "booking").Logger(),
		now:     time.Now,
	}
}

// WithClock replaces the time source used for createdAt and the overview.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

var _ API = (*Service)(nil)

func (s *Service) ListSpecializations(ctx context.Context) ([]model.Specialization, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.Specializations(), nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.Doctors(), nil
}

// GetDoctor reports found=false for an unknown id. That is not an error.
func (s *Service) GetDoctor(ctx context.Context, id string) (model.Doctor, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Doctor{}, false, err
	}
	d, ok := s.catalog.DoctorByID(id)
	return d, ok, nil
}

func (s *Service) ListDoctorsBySpecialization(ctx context.Context, specID string) ([]model.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.DoctorsBySpecialization(specID), nil
}

func (s *Service) SearchDoctors(ctx context.Context, query, specID string) ([]model.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.Search(query, specID), nil
}

// DoctorAvailability lists bookable days starting today. days <= 0 means
// two weeks.
func (s *Service) DoctorAvailability(ctx context.Context, doctorID string, days int) ([]model.DateAvailability, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	d, ok := s.catalog.DoctorByID(doctorID)
	if !ok {
		return nil, false, nil
	}
	if days <= 0 {
		days = defaultAvailabilityDays
	}
	days = min(days, maxAvailabilityDays)
	return catalog.AvailableDates(d, s.now(), days), true, nil
}

// Book stores a confirmed appointment. The doctor id and slot are taken on
// trust: no existence, availability or double-booking check is made.
func (s *Service) Book(ctx context.Context, req model.BookingRequest) (model.Appointment, error) {
	ctx, span := tracer.Start(ctx, "booking.book")
	defer span.End()
	span.SetAttributes(
		attribute.String("medicomeet.doctor_id", req.DoctorID),
		attribute.String("medicomeet.user_id", req.UserID),
	)

	if err := ctx.Err(); err != nil {
		return model.Appointment{}, err
	}
	if err := validateRequest(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		s.metrics.ObserveBooking("invalid")
		return model.Appointment{}, err
	}

	a := model.Appointment{
		ID:              uuid.NewString(),
		DoctorID:        req.DoctorID,
		UserID:          req.UserID,
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		PatientPhone:    req.PatientPhone,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
		Status:          model.StatusConfirmed,
		CreatedAt:       s.now(),
	}
	s.store.Insert(a)
	s.metrics.ObserveBooking("ok")
	span.SetAttributes(attribute.String("medicomeet.appointment_id", a.ID))

	s.log.Info().
		Str("appointment_id", a.ID).
		Str("doctor_id", a.DoctorID).
		Str("user_id", a.UserID).
		Str("date", a.AppointmentDate).
		Str("time", a.AppointmentTime).
		Msg("appointment booked")
	return a, nil
}

// Cancel marks the appointment cancelled and reports whether it exists.
// Cancelling twice is harmless; any prior status is overwritten.
func (s *Service) Cancel(ctx context.Context, id string) (bool, error) {
	ctx, span := tracer.Start(ctx, "booking.cancel")
	defer span.End()
	span.SetAttributes(attribute.String("medicomeet.appointment_id", id))

	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok := s.store.SetStatus(id, model.StatusCancelled)
	s.metrics.ObserveCancel(ok)
	span.SetAttributes(attribute.Bool("medicomeet.found", ok))

	if !ok {
		s.log.Debug().Str("appointment_id", id).Msg("cancel: unknown appointment")
		return false, nil
	}
	s.log.Info().Str("appointment_id", id).Msg("appointment cancelled")
	return true, nil
}

// CancelForUser cancels only when the appointment belongs to userID.
// Another user's appointment is indistinguishable from an unknown id.
func (s *Service) CancelForUser(ctx context.Context, id, userID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "booking.cancel")
	defer span.End()
	span.SetAttributes(
		attribute.String("medicomeet.appointment_id", id),
		attribute.String("medicomeet.user_id", userID),
	)

	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok := s.store.SetStatusFor(id, userID, model.StatusCancelled)
	s.metrics.ObserveCancel(ok)
	span.SetAttributes(attribute.Bool("medicomeet.found", ok))

	if !ok {
		s.log.Debug().Str("appointment_id", id).Str("user_id", userID).Msg("cancel: not found for user")
		return false, nil
	}
	s.log.Info().Str("appointment_id", id).Str("user_id", userID).Msg("appointment cancelled")
	return true, nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (model.Appointment, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Appointment{}, false, err
	}
	a, ok := s.store.Appointment(id)
	return a, ok, nil
}

// ListForUser returns the user's appointments in date order.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]model.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ForUser(userID), nil
}

// ListAll returns every appointment, most recently created first.
func (s *Service) ListAll(ctx context.Context) ([]model.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.All(), nil
}

func (s *Service) FilterAppointments(ctx context.Context, f AppointmentFilter) ([]model.Appointment, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := []model.Appointment{}
	for _, a := range all {
		if q != "" &&
			!strings.Contains(strings.ToLower(a.PatientName), q) &&
			!strings.Contains(strings.ToLower(a.PatientEmail), q) {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.Date != "" && a.AppointmentDate != f.Date {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Service) Overview(ctx context.Context) (report.Overview, error) {
	ctx, span := tracer.Start(ctx, "booking.overview")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return report.Overview{}, err
	}
	o := report.Compute(s.catalog.Doctors(), s.store.Snapshot(), s.now())
	span.SetAttributes(
		attribute.Int("medicomeet.appointments", o.TotalAppointments),
		attribute.Int("medicomeet.revenue", o.Revenue),
	)
	return o, nil
}
