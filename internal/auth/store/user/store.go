package user

import (
	"context"

	"consentd/internal/auth/models"
)

// Store persists user identities.
//
// Error Contract:
// - FindByUsername returns sentinel.ErrNotFound (wrapped) when no user exists
// - Save returns sentinel.ErrAlreadyUsed (wrapped) on a duplicate username
//   and sentinel.ErrInvalidInput (wrapped) when required fields are missing
// - Other failures are returned wrapped with context
type Store interface {
	Save(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
