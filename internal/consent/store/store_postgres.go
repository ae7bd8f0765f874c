package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"consentd/internal/consent/models"
	id "consentd/pkg/domain"
	"consentd/pkg/platform/sentinel"
)

// PostgresStore persists consent records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed consent store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, consent *models.Record) error {
	if consent == nil {
		return fmt.Errorf("consent record is required")
	}
	query := `
		INSERT INTO consents (id, text, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(consent.ID),
		consent.Text,
		consent.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save consent: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, consentID id.ConsentID) (*models.Record, error) {
	query := `
		SELECT id, text, created_at
		FROM consents
		WHERE id = $1
	`
	record, err := scanConsent(s.db.QueryRowContext(ctx, query, uuid.UUID(consentID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("consent not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find consent: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Record, error) {
	query := `
		SELECT id, text, created_at
		FROM consents
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list consents: %w", err)
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		record, err := scanConsent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan consent: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate consents: %w", err)
	}
	return records, nil
}

// UpdateText replaces the text in a single statement, so two concurrent
// updates to the same id cannot produce a lost update.
func (s *PostgresStore) UpdateText(ctx context.Context, consentID id.ConsentID, text string) (*models.Record, error) {
	query := `
		UPDATE consents
		SET text = $2
		WHERE id = $1
		RETURNING id, text, created_at
	`
	record, err := scanConsent(s.db.QueryRowContext(ctx, query, uuid.UUID(consentID), text))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("consent not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("update consent: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) Delete(ctx context.Context, consentID id.ConsentID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM consents WHERE id = $1`, uuid.UUID(consentID))
	if err != nil {
		return fmt.Errorf("delete consent: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete consent rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("consent not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

type consentRow interface {
	Scan(dest ...any) error
}

func scanConsent(row consentRow) (*models.Record, error) {
	var record models.Record
	var consentID uuid.UUID
	if err := row.Scan(&consentID, &record.Text, &record.CreatedAt); err != nil {
		return nil, err
	}
	record.ID = id.ConsentID(consentID)
	return &record, nil
}
