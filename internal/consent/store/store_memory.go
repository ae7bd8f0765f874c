package store

import (
	"context"
	"fmt"
	"sync"

	"consentd/internal/consent/models"
	id "consentd/pkg/domain"
	"consentd/pkg/platform/sentinel"
)

// InMemoryStore stores consent records in memory for tests. Iteration order
// is insertion order, matching the Postgres store's created_at ordering.
type InMemoryStore struct {
	mu       sync.RWMutex
	consents map[id.ConsentID]*models.Record
	order    []id.ConsentID
}

// New constructs an empty in-memory consent store.
func New() *InMemoryStore {
	return &InMemoryStore{consents: make(map[id.ConsentID]*models.Record)}
}

func (s *InMemoryStore) Save(_ context.Context, consent *models.Record) error {
	if consent == nil {
		return fmt.Errorf("consent record is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.consents[consent.ID]; !ok {
		s.order = append(s.order, consent.ID)
	}
	copyRecord := *consent
	s.consents[consent.ID] = &copyRecord
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, consentID id.ConsentID) (*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.consents[consentID]
	if !ok {
		return nil, fmt.Errorf("consent not found: %w", sentinel.ErrNotFound)
	}
	copyRecord := *record
	return &copyRecord, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]*models.Record, 0, len(s.order))
	for _, consentID := range s.order {
		// Return copies to prevent external modifications
		copyRecord := *s.consents[consentID]
		records = append(records, &copyRecord)
	}
	return records, nil
}

// UpdateText replaces the text of the record under the store lock, so two
// concurrent updates to the same id cannot interleave.
func (s *InMemoryStore) UpdateText(_ context.Context, consentID id.ConsentID, text string) (*models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.consents[consentID]
	if !ok {
		return nil, fmt.Errorf("consent not found: %w", sentinel.ErrNotFound)
	}
	record.Text = text
	copyRecord := *record
	return &copyRecord, nil
}

func (s *InMemoryStore) Delete(_ context.Context, consentID id.ConsentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.consents[consentID]; !ok {
		return fmt.Errorf("consent not found: %w", sentinel.ErrNotFound)
	}
	delete(s.consents, consentID)
	for i, orderedID := range s.order {
		if orderedID == consentID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
