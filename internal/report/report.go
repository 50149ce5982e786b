// Package report computes the admin overview from catalog and appointment
// snapshots. It never mutates its inputs.
package report

import (
	"math"
	"sort"
	"time"

	"medicomeet-api/internal/model"
)

const (
	upcomingWindowDays = 7
	upcomingPreview    = 5
	topDoctorCount     = 5
)

type StatusCounts struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
}

type Overview struct {
	TotalDoctors      int                 `json:"totalDoctors"`
	TotalAppointments int                 `json:"totalAppointments"`
	Status            StatusCounts        `json:"status"`
	Today             []model.Appointment `json:"today"`
	Upcoming          []model.Appointment `json:"upcoming"`
	UpcomingPreview   []model.Appointment `json:"upcomingPreview"`
	Revenue           int                 `json:"revenue"`
	AverageRating     float64             `json:"averageRating"`
	CancellationRate  int                 `json:"cancellationRate"`
	TopDoctors        []model.Doctor      `json:"topDoctors"`
}

// Compute builds the overview as of now.
//
// Today compares appointment dates with now's UTC calendar date. Upcoming
// holds confirmed appointments dated from today through seven days out;
// time of day plays no part, so a same-day slot that already passed still
// counts.
func Compute(doctors []model.Doctor, appts []model.Appointment, now time.Time) Overview {
	today := now.UTC().Format(model.DateLayout)
	horizon := now.UTC().AddDate(0, 0, upcomingWindowDays).Format(model.DateLayout)

	fees := make(map[string]int, len(doctors))
	for _, d := range doctors {
		fees[d.ID] = d.ConsultationFee
	}

	o := Overview{
		TotalDoctors:      len(doctors),
		TotalAppointments: len(appts),
		Today:             []model.Appointment{},
		Upcoming:          []model.Appointment{},
	}
	for _, a := range appts {
		switch a.Status {
		case model.StatusPending:
			o.Status.Pending++
		case model.StatusConfirmed:
			o.Status.Confirmed++
		case model.StatusCancelled:
			o.Status.Cancelled++
		case model.StatusCompleted:
			o.Status.Completed++
			// unknown doctor adds nothing
			o.Revenue += fees[a.DoctorID]
		}
		if a.AppointmentDate == today {
			o.Today = append(o.Today, a)
		}
		if a.Status == model.StatusConfirmed && inWindow(a.AppointmentDate, today, horizon) {
			o.Upcoming = append(o.Upcoming, a)
		}
	}

	o.UpcomingPreview = o.Upcoming[:min(len(o.Upcoming), upcomingPreview)]
	o.AverageRating = averageRating(doctors)
	o.CancellationRate = percent(o.Status.Cancelled, o.TotalAppointments)
	o.TopDoctors = topRated(doctors, topDoctorCount)
	return o
}

// dates that don't parse as YYYY-MM-DD are never upcoming
func inWindow(date, from, to string) bool {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return false
	}
	return date >= from && date <= to
}

// averageRating is the plain mean, left unrounded for display to format.
// No doctors gives 0.
func averageRating(doctors []model.Doctor) float64 {
	if len(doctors) == 0 {
		return 0
	}
	var sum float64
	for _, d := range doctors {
		sum += d.Rating
	}
	return sum / float64(len(doctors))
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func topRated(doctors []model.Doctor, n int) []model.Doctor {
	sorted := make([]model.Doctor, len(doctors))
	copy(sorted, doctors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	return sorted[:min(len(sorted), n)]
}
