package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"consentd/internal/consent/models"
	"consentd/internal/platform/middleware"
	respond "consentd/internal/transport/http/json"
	"consentd/internal/transport/http/shared"
	id "consentd/pkg/domain"
	dErrors "consentd/pkg/domain-errors"
	"consentd/pkg/platform/httputil"
	"consentd/pkg/validation"
)

// Service defines the interface for consent operations.
type Service interface {
	List(ctx context.Context) ([]*models.Record, error)
	Get(ctx context.Context, consentID id.ConsentID) (*models.Record, error)
	Create(ctx context.Context, text string) (*models.Record, error)
	UpdateText(ctx context.Context, consentID id.ConsentID, text string) (*models.Record, error)
	Delete(ctx context.Context, consentID id.ConsentID) error
}

// Handler handles the consent CRUD endpoints. Authentication is enforced by
// composition: the router wraps these routes with the auth middleware, so
// handlers never re-check the token.
type Handler struct {
	logger  *slog.Logger
	consent Service
}

// New creates a new consent Handler.
func New(consent Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		consent: consent,
	}
}

// Register registers the consent routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.consent.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list consents",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, models.ToResponses(records))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	consentID, ok := h.consentIDFromURL(w, r)
	if !ok {
		return
	}

	record, err := h.consent.Get(ctx, consentID)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to read consent",
				"request_id", middleware.GetRequestID(ctx),
				"error", err,
			)
		}
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, models.ToResponse(record))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeJSON[models.CreateRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := validation.Validate(req); err != nil {
		shared.WriteError(w, err)
		return
	}

	record, err := h.consent.Create(ctx, req.Text)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create consent",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, models.MutationResponse{
		Message: "Consent created",
		Consent: models.ToResponse(record),
	})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	consentID, ok := h.consentIDFromURL(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeJSON[models.UpdateRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := validation.Validate(req); err != nil {
		shared.WriteError(w, err)
		return
	}

	record, err := h.consent.UpdateText(ctx, consentID, req.Text)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to update consent",
				"request_id", middleware.GetRequestID(ctx),
				"error", err,
			)
		}
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, models.MutationResponse{
		Message: "Consent updated",
		Consent: models.ToResponse(record),
	})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	consentID, ok := h.consentIDFromURL(w, r)
	if !ok {
		return
	}

	if err := h.consent.Delete(ctx, consentID); err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to delete consent",
				"request_id", middleware.GetRequestID(ctx),
				"error", err,
			)
		}
		shared.WriteError(w, err)
		return
	}

	respond.WriteJSON(w, http.StatusOK, models.MessageResponse{Message: "Consent deleted"})
}

// consentIDFromURL parses the {id} path parameter. An id that is not a valid
// UUID cannot match any record, so it is reported as not found rather than a
// malformed request.
func (h *Handler) consentIDFromURL(w http.ResponseWriter, r *http.Request) (id.ConsentID, bool) {
	consentID, err := id.ParseConsentID(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeNotFound, "Consent not found"))
		return id.ConsentID{}, false
	}
	return consentID, true
}
