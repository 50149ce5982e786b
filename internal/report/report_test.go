package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicomeet-api/internal/catalog"
	"medicomeet-api/internal/model"
	"medicomeet-api/internal/report"
)

// 2025-03-10 is a Monday
var now = time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)

func appt(id, doctor, date string, st model.AppointmentStatus) model.Appointment {
	return model.Appointment{ID: id, DoctorID: doctor, UserID: "u1", AppointmentDate: date, Status: st}
}

func ids(as []model.Appointment) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.ID
	}
	return out
}

func TestRevenueFromCompletedOnly(t *testing.T) {
	docs := catalog.Seeded().Doctors()
	appts := []model.Appointment{
		appt("a", "1", "2025-03-01", model.StatusCompleted),
		appt("b", "4", "2025-03-02", model.StatusCompleted),
		appt("c", "2", "2025-03-03", model.StatusConfirmed),
		appt("d", "missing", "2025-03-04", model.StatusCompleted),
	}
	o := report.Compute(docs, appts, now)
	assert.Equal(t, 350, o.Revenue)
}

func TestStatusCountsAndRate(t *testing.T) {
	appts := []model.Appointment{
		appt("a", "1", "2025-03-01", model.StatusPending),
		appt("b", "1", "2025-03-01", model.StatusConfirmed),
		appt("c", "1", "2025-03-01", model.StatusCancelled),
		appt("d", "1", "2025-03-01", model.StatusCompleted),
		appt("e", "1", "2025-03-01", model.StatusConfirmed),
		appt("f", "1", "2025-03-01", model.StatusConfirmed),
	}
	o := report.Compute(nil, appts, now)
	assert.Equal(t, 6, o.TotalAppointments)
	assert.Equal(t, report.StatusCounts{Pending: 1, Confirmed: 3, Cancelled: 1, Completed: 1}, o.Status)
	// 1/6 = 16.67%
	assert.Equal(t, 17, o.CancellationRate)
}

func TestTodayAndUpcoming(t *testing.T) {
	appts := []model.Appointment{
		appt("yesterday", "1", "2025-03-09", model.StatusConfirmed),
		appt("today", "1", "2025-03-10", model.StatusConfirmed),
		appt("today-cancelled", "1", "2025-03-10", model.StatusCancelled),
		appt("edge", "1", "2025-03-17", model.StatusConfirmed),
		appt("beyond", "1", "2025-03-18", model.StatusConfirmed),
		appt("pending", "1", "2025-03-12", model.StatusPending),
		appt("bad-date", "1", "soon", model.StatusConfirmed),
	}
	o := report.Compute(nil, appts, now)
	assert.Equal(t, []string{"today", "today-cancelled"}, ids(o.Today))
	assert.Equal(t, []string{"today", "edge"}, ids(o.Upcoming))
}

func TestUpcomingPreviewCapsAtFive(t *testing.T) {
	var appts []model.Appointment
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		appts = append(appts, appt(id, "1", "2025-03-11", model.StatusConfirmed))
	}
	o := report.Compute(nil, appts, now)
	assert.Len(t, o.Upcoming, 7)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(o.UpcomingPreview))
}

func TestDoctorStats(t *testing.T) {
	docs := catalog.Seeded().Doctors()
	o := report.Compute(docs, nil, now)

	assert.Equal(t, 6, o.TotalDoctors)
	assert.InDelta(t, 28.7/6, o.AverageRating, 1e-9)
	require.Len(t, o.TopDoctors, 5)
	var top []string
	for _, d := range o.TopDoctors {
		top = append(top, d.ID)
	}
	assert.Equal(t, []string{"2", "5", "1", "6", "3"}, top)
	// input order untouched
	assert.Equal(t, "1", docs[0].ID)
}

func TestEmptyInputs(t *testing.T) {
	o := report.Compute(nil, nil, now)
	assert.Zero(t, o.AverageRating)
	assert.Zero(t, o.CancellationRate)
	assert.Zero(t, o.Revenue)
	assert.NotNil(t, o.Today)
	assert.NotNil(t, o.Upcoming)
	assert.Empty(t, o.TopDoctors)
}
