package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"consentd/internal/consent/models"
	"consentd/internal/platform/metrics"
	id "consentd/pkg/domain"
	dErrors "consentd/pkg/domain-errors"
	"consentd/pkg/platform/sentinel"
)

// Store defines the persistence interface for consent records.
// Error Contract:
// - FindByID, UpdateText, and Delete return sentinel.ErrNotFound when no
//   record matches
// - Other methods return nil on success or wrapped errors on failure
type Store interface {
	Save(ctx context.Context, consent *models.Record) error
	FindByID(ctx context.Context, consentID id.ConsentID) (*models.Record, error)
	List(ctx context.Context) ([]*models.Record, error)
	UpdateText(ctx context.Context, consentID id.ConsentID, text string) (*models.Record, error)
	Delete(ctx context.Context, consentID id.ConsentID) error
}

type Option func(*Service)

// Service manages the consent record lifecycle. Every operation is a single
// store call; there is no batching and no multi-step transaction.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(store Store, logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		store:  store,
		logger: logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// WithMetrics sets the metrics instance for the service
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// List returns all consent records in store iteration order.
func (s *Service) List(ctx context.Context) ([]*models.Record, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list consents")
	}
	return records, nil
}

// Get returns the consent record with the given id.
func (s *Service) Get(ctx context.Context, consentID id.ConsentID) (*models.Record, error) {
	record, err := s.store.FindByID(ctx, consentID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "Consent not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read consent")
	}
	return record, nil
}

// Create persists a new consent record with a generated id.
func (s *Service) Create(ctx context.Context, text string) (*models.Record, error) {
	if strings.TrimSpace(text) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "text is required")
	}

	record, err := models.NewRecord(id.NewConsentID(), text, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, record); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save consent")
	}

	s.metrics.IncrementConsentsCreated()
	return record, nil
}

// UpdateText replaces the text of an existing record wholesale. The id is
// stable across updates.
func (s *Service) UpdateText(ctx context.Context, consentID id.ConsentID, text string) (*models.Record, error) {
	if strings.TrimSpace(text) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "text is required")
	}

	record, err := s.store.UpdateText(ctx, consentID, text)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "Consent not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update consent")
	}

	s.metrics.IncrementConsentsUpdated()
	return record, nil
}

// Delete permanently removes the record with the given id. Deleting an id
// that does not exist, including one already deleted, is a not-found error.
func (s *Service) Delete(ctx context.Context, consentID id.ConsentID) error {
	if err := s.store.Delete(ctx, consentID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "Consent not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete consent")
	}

	s.metrics.IncrementConsentsDeleted()
	return nil
}
