package jwttoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "consentd/pkg/domain-errors"
)

const testSigningKey = "test-signing-key"

func TestGenerateToken(t *testing.T) {
	svc := NewJWTService(testSigningKey, 0)

	t.Run("round trips the username", func(t *testing.T) {
		token, err := svc.GenerateToken("alice")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
		assert.NotEmpty(t, claims.ID, "tokens carry a unique JTI")
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := svc.GenerateToken("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("no expiry claim without a TTL", func(t *testing.T) {
		token, err := svc.GenerateToken("alice")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Nil(t, claims.ExpiresAt, "tokens are non-expiring by default")
	})

	t.Run("sets expiry claim when a TTL is configured", func(t *testing.T) {
		ttlSvc := NewJWTService(testSigningKey, time.Hour)

		token, err := ttlSvc.GenerateToken("alice")
		require.NoError(t, err)

		claims, err := ttlSvc.ValidateToken(token)
		require.NoError(t, err)
		require.NotNil(t, claims.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("unique JTI per token", func(t *testing.T) {
		first, err := svc.GenerateToken("alice")
		require.NoError(t, err)
		second, err := svc.GenerateToken("alice")
		require.NoError(t, err)

		firstClaims, err := svc.ValidateToken(first)
		require.NoError(t, err)
		secondClaims, err := svc.ValidateToken(second)
		require.NoError(t, err)
		assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
	})
}

func TestValidateToken(t *testing.T) {
	svc := NewJWTService(testSigningKey, 0)

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	t.Run("rejects a token signed with a different key", func(t *testing.T) {
		other := NewJWTService("another-key", 0)
		token, err := other.GenerateToken("alice")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := NewJWTService(testSigningKey, -time.Minute)
		token, err := expired.GenerateToken("alice")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
		assert.Contains(t, err.Error(), "token expired")
	})

	t.Run("rejects the none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Username: "alice"})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
	})
}

func TestJWTServiceAdapter(t *testing.T) {
	svc := NewJWTService(testSigningKey, 0)
	adapter := NewJWTServiceAdapter(svc)

	token, err := svc.GenerateToken("alice")
	require.NoError(t, err)

	claims, err := adapter.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	_, err = adapter.ValidateToken("bogus")
	assert.Error(t, err)
}
