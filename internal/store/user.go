package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"medicomeet-api/internal/auth"
	"medicomeet-api/internal/model"
)

var ErrEmailTaken = errors.New("email already registered")

// Users is the demo account directory behind the login stub.
type Users struct {
	mu      sync.RWMutex
	byEmail map[string]model.User
}

func NewUsers() *Users {
	return &Users{byEmail: make(map[string]model.User)}
}

func key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *Users) CreateUser(usr model.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	k := key(usr.Email)
	if _, ok := u.byEmail[k]; ok {
		return ErrEmailTaken
	}
	u.byEmail[k] = usr
	return nil
}

func (u *Users) UserByEmail(email string) (model.User, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	usr, ok := u.byEmail[key(email)]
	return usr, ok
}

type demoAccount struct {
	id, name, email, password string
	role                      model.Role
}

var demoAccounts = []demoAccount{
	{"1", "Admin User", "admin@medicomeet.com", "admin123", model.RoleAdmin},
	{"2", "John Doe", "user@example.com", "password", model.RoleUser},
}

// SeedDemoUsers installs the two hard-wired accounts the UI advertises.
func SeedDemoUsers(u *Users) error {
	for _, d := range demoAccounts {
		hash, err := auth.HashPassword(d.password)
		if err != nil {
			return fmt.Errorf("hash %s: %w", d.email, err)
		}
		err = u.CreateUser(model.User{
			ID:           d.id,
			Email:        d.email,
			PasswordHash: hash,
			Name:         d.name,
			Role:         d.role,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", d.email, err)
		}
	}
	return nil
}
