package store

import (
	"sort"

	"medicomeet-api/internal/model"
)

func (s *Store) Insert(a model.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appts = append(s.appts, a)
}

// SetStatus overwrites the status in place. It reports false when no
// appointment has that id.
func (s *Store) SetStatus(id string, st model.AppointmentStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appts {
		if s.appts[i].ID == id {
			s.appts[i].Status = st
			return true
		}
	}
	return false
}

// SetStatusFor is SetStatus restricted to one user's appointments. A record
// owned by someone else is left alone and reported as not found.
func (s *Store) SetStatusFor(id, userID string, st model.AppointmentStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appts {
		if s.appts[i].ID == id {
			if s.appts[i].UserID != userID {
				return false
			}
			s.appts[i].Status = st
			return true
		}
	}
	return false
}

func (s *Store) Appointment(id string) (model.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.appts {
		if r.ID == id {
			return r, true
		}
	}
	return model.Appointment{}, false
}

// ForUser returns the user's appointments ordered by date. Time of day is
// not a sort key, same-day records keep insertion order.
func (s *Store) ForUser(userID string) []model.Appointment {
	s.mu.RLock()
	out := []model.Appointment{}
	for _, a := range s.appts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	s.mu.RUnlock()

	// ISO dates order lexically
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentDate < out[j].AppointmentDate
	})
	return out
}

// All returns every appointment, newest first. Equal timestamps keep
// insertion order.
func (s *Store) All() []model.Appointment {
	out := s.Snapshot()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Snapshot returns the appointments in insertion order.
func (s *Store) Snapshot() []model.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Appointment, len(s.appts))
	copy(out, s.appts)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appts)
}
