// Package store keeps appointments and demo users in process memory.
// Nothing survives a restart.
package store

import (
	"sync"

	"medicomeet-api/internal/model"
)

// Store owns the appointment list. The mutex keeps concurrent handlers
// memory safe; it does not stop two bookings landing on the same slot.
type Store struct {
	mu    sync.RWMutex
	appts []model.Appointment
}

func New() *Store {
	return &Store{}
}
