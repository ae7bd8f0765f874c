package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "consentd/internal/auth/handler"
	consenthandler "consentd/internal/consent/handler"
	"consentd/internal/platform/health"
	"consentd/internal/platform/metrics"
	"consentd/internal/platform/middleware"
)

// Deps bundles the collaborators the router composes. Constructed once in
// main and passed explicitly; there is no global route registry.
type Deps struct {
	Auth      *authhandler.Handler
	Consent   *consenthandler.Handler
	Health    *health.Handler
	Validator middleware.JWTValidator
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// NewRouter wires all endpoints with middleware. Register and login are
// public; everything under /api/v1/consent requires a verified bearer token.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.Latency(deps.Metrics))

	deps.Auth.Register(r)

	r.Route("/api/v1/consent", func(r chi.Router) {
		r.Use(middleware.RequireAuth(deps.Validator, deps.Logger))
		deps.Consent.Register(r)
	})

	if deps.Health != nil {
		deps.Health.Register(r)
	}
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
