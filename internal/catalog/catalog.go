// Package catalog holds the read-only list of specializations and doctors.
package catalog

import (
	"slices"
	"strings"
	"time"

	"medicomeet-api/internal/model"
)

// Catalog is immutable after construction. Every accessor hands out copies.
type Catalog struct {
	specs   []model.Specialization
	doctors []model.Doctor
}

func New(specs []model.Specialization, docs []model.Doctor) *Catalog {
	c := &Catalog{
		specs:   slices.Clone(specs),
		doctors: make([]model.Doctor, len(docs)),
	}
	for i, d := range docs {
		c.doctors[i] = clone(d)
	}
	return c
}

// Seeded returns the catalog the service ships with.
func Seeded() *Catalog {
	return New(specializations, doctors)
}

func clone(d model.Doctor) model.Doctor {
	d.Languages = slices.Clone(d.Languages)
	d.AvailableDays = slices.Clone(d.AvailableDays)
	d.AvailableTimeSlots = slices.Clone(d.AvailableTimeSlots)
	return d
}

func (c *Catalog) Specializations() []model.Specialization {
	return slices.Clone(c.specs)
}

func (c *Catalog) Doctors() []model.Doctor {
	return c.filter(func(model.Doctor) bool { return true })
}

// DoctorByID reports false for an unknown id; a miss is not an error.
func (c *Catalog) DoctorByID(id string) (model.Doctor, bool) {
	for _, d := range c.doctors {
		if d.ID == id {
			return clone(d), true
		}
	}
	return model.Doctor{}, false
}

func (c *Catalog) DoctorsBySpecialization(specID string) []model.Doctor {
	return c.filter(func(d model.Doctor) bool { return d.Specialization.ID == specID })
}

// Search matches query against doctor and specialization names, ignoring
// case. A non-empty specID additionally restricts to that specialization.
func (c *Catalog) Search(query, specID string) []model.Doctor {
	q := strings.ToLower(strings.TrimSpace(query))
	return c.filter(func(d model.Doctor) bool {
		if specID != "" && d.Specialization.ID != specID {
			return false
		}
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Specialization.Name), q)
	})
}

func (c *Catalog) filter(keep func(model.Doctor) bool) []model.Doctor {
	out := []model.Doctor{}
	for _, d := range c.doctors {
		if keep(d) {
			out = append(out, clone(d))
		}
	}
	return out
}

// AvailableDates lists the next days calendar dates starting at from,
// flagging the ones that fall on the doctor's working days.
func AvailableDates(d model.Doctor, from time.Time, days int) []model.DateAvailability {
	if days < 0 {
		days = 0
	}
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	out := make([]model.DateAvailability, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		name := day.Weekday().String()
		out = append(out, model.DateAvailability{
			Date:        day.Format(model.DateLayout),
			DayName:     name,
			IsAvailable: d.AvailableOn(name),
		})
	}
	return out
}
