package models

import (
	"time"

	id "consentd/pkg/domain"
)

// User represents a registered account in the auth domain.
// This is a pure domain entity - the password hash never leaves this layer.
type User struct {
	ID           id.UserID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
