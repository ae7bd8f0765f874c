package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"consentd/internal/auth/models"
	"consentd/internal/platform/middleware"
	respond "consentd/internal/transport/http/json"
	"consentd/internal/transport/http/shared"
	"consentd/pkg/platform/httputil"
)

// Service defines the interface for account operations.
type Service interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
}

// Handler handles registration and login endpoints. Both are public; the
// token returned by login is what unlocks the consent API.
type Handler struct {
	logger *slog.Logger
	auth   Service
}

// New creates a new auth Handler.
func New(auth Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		auth:   auth,
	}
}

// Register registers the auth routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeJSON[models.RegisterRequest](w, r, h.logger)
	if !ok {
		return
	}

	if err := h.auth.Register(ctx, req.Username, req.Password); err != nil {
		h.logger.ErrorContext(ctx, "failed to register user",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteErrorMessage(w, err, "Error registering user")
		return
	}

	respond.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "User registered"})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeJSON[models.LoginRequest](w, r, h.logger)
	if !ok {
		return
	}

	token, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, models.LoginResponse{Token: token})
}
