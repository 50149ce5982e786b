// Package booking is the access layer the transports call into. It owns no
// data; catalog and store are handed in by the host process.
package booking

import (
	"context"
	"errors"

	"medicomeet-api/internal/model"
	"medicomeet-api/internal/report"
)

// ErrInvalidBooking wraps every request-shape failure from Book.
var ErrInvalidBooking = errors.New("invalid booking request")

// API is implemented by Service and by the Delayed decorator.
type API interface {
	ListSpecializations(ctx context.Context) ([]model.Specialization, error)
	ListDoctors(ctx context.Context) ([]model.Doctor, error)
	GetDoctor(ctx context.Context, id string) (model.Doctor, bool, error)
	ListDoctorsBySpecialization(ctx context.Context, specID string) ([]model.Doctor, error)
	SearchDoctors(ctx context.Context, query, specID string) ([]model.Doctor, error)
	DoctorAvailability(ctx context.Context, doctorID string, days int) ([]model.DateAvailability, bool, error)

	Book(ctx context.Context, req model.BookingRequest) (model.Appointment, error)
	Cancel(ctx context.Context, id string) (bool, error)
	CancelForUser(ctx context.Context, id, userID string) (bool, error)
	GetAppointment(ctx context.Context, id string) (model.Appointment, bool, error)
	ListForUser(ctx context.Context, userID string) ([]model.Appointment, error)
	ListAll(ctx context.Context) ([]model.Appointment, error)
	FilterAppointments(ctx context.Context, f AppointmentFilter) ([]model.Appointment, error)

	Overview(ctx context.Context) (report.Overview, error)
}

// AppointmentFilter narrows the admin listing. Empty fields match all.
type AppointmentFilter struct {
	// Query matches patient name or email, case-insensitively.
	Query  string
	Status model.AppointmentStatus
	Date   string
}
