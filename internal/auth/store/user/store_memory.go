package user

import (
	"context"
	"fmt"
	"sync"

	"consentd/internal/auth/models"
	"consentd/pkg/platform/sentinel"
)

// InMemoryStore stores users in memory for tests.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

// New constructs an empty in-memory user store.
func New() *InMemoryStore {
	return &InMemoryStore{users: make(map[string]*models.User)}
}

func (s *InMemoryStore) Save(_ context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}
	if user.Username == "" || user.PasswordHash == "" {
		return fmt.Errorf("username and password are required: %w", sentinel.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return fmt.Errorf("username taken: %w", sentinel.ErrAlreadyUsed)
	}
	copyUser := *user
	s.users[user.Username] = &copyUser
	return nil
}

func (s *InMemoryStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[username]; ok {
		copyUser := *user
		return &copyUser, nil
	}
	return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
}
