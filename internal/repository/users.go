package repository

import (
	"errors"
	"sync"

	"taskboard/internal/models"
)

var (
	ErrEmailExists = errors.New("email already registered")
	ErrUserExists  = errors.New("user id already registered")
)

// Seeder prepares a freshly created user's workspace.
type Seeder interface {
	Seed(userID string)
}

// UserStore is the identity store. Emails are indexed exactly as given:
// "A@x.io" and "a@x.io" are different accounts.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string
	seeder  Seeder
}

func NewUserStore(seeder Seeder) *UserStore {
	return &UserStore{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
		seeder:  seeder,
	}
}

// CreateUser inserts user and seeds its starter boards. The uniqueness
// check, insert and seeding happen in one critical section, so a caller
// never observes a user without a workspace.
func (s *UserStore) CreateUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return ErrEmailExists
	}
	if _, ok := s.byID[user.ID]; ok {
		return ErrUserExists
	}

	s.byID[user.ID] = user
	s.byEmail[user.Email] = user.ID
	if s.seeder != nil {
		s.seeder.Seed(user.ID)
	}
	return nil
}

func (s *UserStore) GetUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return models.User{}, false
	}
	u, ok := s.byID[id]
	return u, ok
}

func (s *UserStore) GetUserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	return u, ok
}
