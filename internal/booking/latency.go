package booking

import (
	"context"
	"time"

	"medicomeet-api/internal/model"
	"medicomeet-api/internal/report"
)

// Latency is the fixed delay Delayed adds before each call. Catalog applies
// to specialization and doctor reads, Appointments to everything touching
// the appointment store.
type Latency struct {
	Catalog      time.Duration
	Appointments time.Duration
}

func (l Latency) Enabled() bool {
	return l.Catalog > 0 || l.Appointments > 0
}

// Delayed wraps an API and sleeps before forwarding each call, to mimic a
// remote backend during demos. A caller whose context ends mid-wait gets
// ctx.Err() and the wrapped API is never called.
type Delayed struct {
	next API
	lat  Latency
}

func NewDelayed(next API, lat Latency) *Delayed {
	return &Delayed{next: next, lat: lat}
}

var _ API = (*Delayed)(nil)

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (d *Delayed) ListSpecializations(ctx context.Context) ([]model.Specialization, error) {
	if err := wait(ctx, d.lat.Catalog); err != nil {
		return nil, err
	}
	return d.next.ListSpecializations(ctx)
}

func (d *Delayed) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	if err := wait(ctx, d.lat.Catalog); err != nil {
		return nil, err
	}
	return d.next.ListDoctors(ctx)
}

func (d *Delayed) GetDoctor(ctx context.Context, id string) (model.Doctor, bool, error) {
	if err := wait(ctx, d.lat.Catalog); err != nil {
		return model.Doctor{}, false, err
	}
	return d.next.GetDoctor(ctx, id)
}

func (d *Delayed) ListDoctorsBySpecialization(ctx context.Context, specID string) ([]model.Doctor, error) {
	if err := wait(ctx, d.lat.Catalog); err != nil {
		return nil, err
	}
	return d.next.ListDoctorsBySpecialization(ctx, specID)
}

func (d *Delayed) SearchDoctors(ctx context.Context, query, specID string) ([]model.Doctor, error) {
	if err := wait(ctx, d.lat.Catalog); err != nil {
		return nil, err
	}
	return d.next.SearchDoctors(ctx, query, specID)
}

func (d *Delayed) DoctorAvailability(ctx context.Context, doctorID string, days int) ([]model.DateAvailability, bool, error) {
	if err := wait(ctx, d.lat.Catalog); err != nil {
		return nil, false, err
	}
	return d.next.DoctorAvailability(ctx, doctorID, days)
}

func (d *Delayed) Book(ctx context.Context, req model.BookingRequest) (model.Appointment, error) {
	if err := wait(ctx, d.lat.Appointments); err != nil {
		return model.Appointment{}, err
	}
	return d.next.Book(ctx, req)
}

func (d *Delayed) Cancel(ctx context.Context, id string) (bool, error) {
	if err := wait(ctx, d.lat.Appointments); err != nil {
		return false, err
	}
	return d.next.Cancel(ctx, id)
}

func (d *Delayed) CancelForUser(ctx context.Context, id, userID string) (bool, error) {
	if err := wait(ctx, d.lat.Appointments); err != nil {
		return false, err
	}
	return d.next.CancelForUser(ctx, id, userID)
}

func (d *Delayed) GetAppointment(ctx context.Context, id string) (model.Appointment, bool, error) {
	if err := wait(ctx, d.lat.Appointments); err != nil {
		return model.Appointment{}, false, err
	}
	return d.next.GetAppointment(ctx, id)
}

func (d *Delayed) ListForUser(ctx context.Context, userID string) ([]model.Appointment, error) {
	if err := wait(ctx, d.lat.Appointments); err != nil {
		return nil, err
	}
	return d.next.ListForUser(ctx, userID)
}

func (d *Delayed) ListAll(ctx context.Context) ([]model.Appointment, error) {
	if err := wait(ctx, d.lat.Appointments); err != nil {
		return nil, err
	}
	return d.next.ListAll(ctx)
}

func (d *Delayed) FilterAppointments(ctx context.Context, f AppointmentFilter) ([]model.Appointment, error) {
	if err := wait(ctx, d.lat.Appointments); err != nil {
		return nil, err
	}
	return d.next.FilterAppointments(ctx, f)
}

// Overview reads both stores, so it waits for the slower of the two.
func (d *Delayed) Overview(ctx context.Context) (report.Overview, error) {
	if err := wait(ctx, max(d.lat.Catalog, d.lat.Appointments)); err != nil {
		return report.Overview{}, err
	}
	return d.next.Overview(ctx)
}
