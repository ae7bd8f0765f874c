package models

import (
	"time"

	id "consentd/pkg/domain"
	dErrors "consentd/pkg/domain-errors"
)

// Record is the sole business entity managed by this service: a free-text
// consent entry with a stable identifier. The id never changes after
// creation; text is the only mutable field.
type Record struct {
	ID        id.ConsentID
	Text      string
	CreatedAt time.Time
}

// NewRecord creates a Record with domain invariant checks.
func NewRecord(consentID id.ConsentID, text string, createdAt time.Time) (*Record, error) {
	if consentID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "consent ID required")
	}
	if text == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "text is required")
	}
	if createdAt.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "creation time required")
	}
	return &Record{
		ID:        consentID,
		Text:      text,
		CreatedAt: createdAt,
	}, nil
}
