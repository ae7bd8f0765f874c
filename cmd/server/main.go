package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authhandler "consentd/internal/auth/handler"
	authservice "consentd/internal/auth/service"
	userstore "consentd/internal/auth/store/user"
	consenthandler "consentd/internal/consent/handler"
	consentservice "consentd/internal/consent/service"
	consentstore "consentd/internal/consent/store"
	"consentd/internal/jwttoken"
	"consentd/internal/platform/config"
	"consentd/internal/platform/database"
	"consentd/internal/platform/health"
	"consentd/internal/platform/httpserver"
	"consentd/internal/platform/logger"
	"consentd/internal/platform/metrics"
	httptransport "consentd/internal/transport/http"
	"consentd/pkg/secrets"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.New()
	cfg := config.FromEnv()

	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	pool, err := database.New(dbCfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close() //nolint:errcheck // process is exiting

	m := metrics.New()

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.TokenTTL)
	hasher := secrets.NewHasher(cfg.BcryptCost)

	users := userstore.NewPostgres(pool.DB())
	consents := consentstore.NewPostgres(pool.DB())

	authSvc := authservice.NewService(users, hasher, jwtService, log,
		authservice.WithMetrics(m))
	consentSvc := consentservice.NewService(consents, log,
		consentservice.WithMetrics(m))

	healthHandler := health.New()
	healthHandler.RegisterCheck("database", pool.Health)

	router := httptransport.NewRouter(httptransport.Deps{
		Auth:      authhandler.New(authSvc, log),
		Consent:   consenthandler.New(consentSvc, log),
		Health:    healthHandler,
		Validator: jwttoken.NewJWTServiceAdapter(jwtService),
		Metrics:   m,
		Logger:    log,
	})

	srv := httpserver.New(cfg.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
