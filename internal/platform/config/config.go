package config

import (
	"os"
	"strconv"
	"time"

	"consentd/pkg/secrets"
)

// Server captures process-wide configuration, read once at startup and
// injected into every component that needs it.
type Server struct {
	Addr          string
	DatabaseURL   string
	JWTSigningKey string
	// TokenTTL of zero means issued tokens never expire.
	TokenTTL   time.Duration
	BcryptCost int
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CONSENTD_ADDR")
	if addr == "" {
		addr = ":3000"
	}

	tokenTTL := time.Duration(0)
	if ttlStr := os.Getenv("TOKEN_TTL"); ttlStr != "" {
		if duration, err := time.ParseDuration(ttlStr); err == nil {
			tokenTTL = duration
		}
	}

	bcryptCost := secrets.DefaultCost
	if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
		if cost, err := strconv.Atoi(costStr); err == nil {
			bcryptCost = cost
		}
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:          addr,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSigningKey: jwtSigningKey,
		TokenTTL:      tokenTTL,
		BcryptCost:    bcryptCost,
	}
}
