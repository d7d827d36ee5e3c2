package auth

import (
	"testing"
	"time"

	"github.com/acme/dashboard/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-sessions-only",
		Expiration: expiration,
		Issuer:     "dashboard-backend",
	})
}

func TestJWTService_SessionTokenRoundTrip(t *testing.T) {
	s := newTestJWTService(time.Hour)

	token, expiresAt, err := s.GenerateSessionToken("user-1", "user@nextmail.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := s.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@nextmail.com", claims.Email)
	assert.Equal(t, "dashboard-backend", claims.Issuer)
}

func TestJWTService_ValidateSessionToken(t *testing.T) {
	t.Run("rejects garbage", func(t *testing.T) {
		s := newTestJWTService(time.Hour)

		_, err := s.ValidateSessionToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		s := newTestJWTService(time.Hour)
		other := NewJWTService(config.JWTConfig{
			Secret:     "a-completely-different-secret-key",
			Expiration: time.Hour,
			Issuer:     "dashboard-backend",
		})

		token, _, err := other.GenerateSessionToken("user-1", "user@nextmail.com")
		require.NoError(t, err)

		_, err = s.ValidateSessionToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		s := newTestJWTService(-time.Minute)

		token, _, err := s.GenerateSessionToken("user-1", "user@nextmail.com")
		require.NoError(t, err)

		_, err = s.ValidateSessionToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
