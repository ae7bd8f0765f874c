package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"consentd/internal/auth/models"
	"consentd/internal/platform/metrics"
	id "consentd/pkg/domain"
	dErrors "consentd/pkg/domain-errors"
	"consentd/pkg/platform/sentinel"
)

// Store defines the persistence interface for user identities.
// Error Contract:
// - FindByUsername returns sentinel.ErrNotFound when no user exists
// - Save returns sentinel.ErrAlreadyUsed on a duplicate username
type Store interface {
	Save(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// Hasher performs one-way password hashing and verification.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) error
}

// TokenIssuer signs a stateless credential asserting a username.
type TokenIssuer interface {
	GenerateToken(username string) (string, error)
}

type Option func(*Service)

// Service implements account registration and credential exchange.
type Service struct {
	users   Store
	hasher  Hasher
	tokens  TokenIssuer
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(users Store, hasher Hasher, tokens TokenIssuer, logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
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

// Register hashes the password and persists a new user. Every failure,
// including a duplicate username, collapses into a single internal error so
// registration does not leak which usernames exist.
func (s *Service) Register(ctx context.Context, username, password string) error {
	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password", "error", err)
		return dErrors.New(dErrors.CodeInternal, "Error registering user")
	}

	user := &models.User{
		ID:           id.NewUserID(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			s.logger.WarnContext(ctx, "registration rejected - username taken", "username", username)
		} else {
			s.logger.ErrorContext(ctx, "failed to save user", "error", err)
		}
		return dErrors.New(dErrors.CodeInternal, "Error registering user")
	}

	s.metrics.IncrementUsersRegistered()
	return nil
}

// Login verifies the credentials and issues a token asserting the username.
// An unknown user and a wrong password return the identical error so callers
// cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncrementAuthFailures()
			return "", dErrors.New(dErrors.CodeUnauthorized, "Invalid username or password")
		}
		s.logger.ErrorContext(ctx, "failed to look up user", "error", err)
		return "", dErrors.New(dErrors.CodeInternal, "Error logging in")
	}

	if err := s.hasher.Verify(password, user.PasswordHash); err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			s.metrics.IncrementAuthFailures()
			return "", dErrors.New(dErrors.CodeUnauthorized, "Invalid username or password")
		}
		s.logger.ErrorContext(ctx, "failed to verify password", "error", err)
		return "", dErrors.New(dErrors.CodeInternal, "Error logging in")
	}

	token, err := s.tokens.GenerateToken(user.Username)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue token", "error", err)
		return "", dErrors.New(dErrors.CodeInternal, "Error logging in")
	}

	s.metrics.IncrementLogins()
	return token, nil
}
