package store

import (
	"context"

	"consentd/internal/consent/models"
	id "consentd/pkg/domain"
)

// Store persists consent records.
//
// Error Contract:
// - FindByID, UpdateText, and Delete return sentinel.ErrNotFound (wrapped)
//   when no record matches the id
// - Other methods return nil on success or wrapped errors on failure
type Store interface {
	Save(ctx context.Context, consent *models.Record) error
	FindByID(ctx context.Context, consentID id.ConsentID) (*models.Record, error)
	List(ctx context.Context) ([]*models.Record, error)
	// UpdateText atomically replaces the text of the record with the given id
	// and returns the updated record. Concurrent updates to the same id must
	// not produce a lost update.
	UpdateText(ctx context.Context, consentID id.ConsentID, text string) (*models.Record, error)
	Delete(ctx context.Context, consentID id.ConsentID) error
}
