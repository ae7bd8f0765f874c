package jwttoken

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	dErrors "consentd/pkg/domain-errors"
)

// Claims represents the JWT claims for issued tokens. The username is the
// join key between login-time credential checks and the identity the Auth
// Gate attaches to requests.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTService handles JWT creation and validation with a process-wide secret.
type JWTService struct {
	signingKey []byte
	// tokenTTL of zero means issued tokens carry no expiry. Tokens are
	// non-expiring by default; setting a TTL is an operator opt-in.
	tokenTTL time.Duration
}

func NewJWTService(signingKey string, tokenTTL time.Duration) *JWTService {
	return &JWTService{
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
	}
}

// GenerateToken signs a token asserting the given username, with issued-at
// metadata and a random JTI. An expiry claim is set only when a TTL is
// configured.
func (s *JWTService) GenerateToken(username string) (string, error) {
	if username == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "username cannot be empty")
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	now := time.Now()

	registered := jwt.RegisteredClaims{
		IssuedAt: jwt.NewNumericDate(now),
		ID:       hex.EncodeToString(b),
	}
	if s.tokenTTL > 0 {
		registered.ExpiresAt = jwt.NewNumericDate(now.Add(s.tokenTTL))
	}

	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username:         username,
		RegisteredClaims: registered,
	})

	signedToken, err := newToken.SignedString(s.signingKey)
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// ValidateToken verifies the signature and standard claims of a token and
// returns the decoded claims. Any failure maps to a forbidden domain error;
// the Auth Gate turns that into a 403.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeForbidden, "token expired")
		}
		return nil, dErrors.New(dErrors.CodeForbidden, "invalid token")
	}

	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeForbidden, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, dErrors.New(dErrors.CodeForbidden, "invalid token claims")
	}

	return claims, nil
}
