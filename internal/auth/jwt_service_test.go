package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_AccessToken(t *testing.T) {
	service := NewJWTService("test-secret")

	t.Run("roundtrip preserves claims", func(t *testing.T) {
		token, err := service.GenerateAccessToken(42, "test@example.com", true)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "test@example.com", claims.Email)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("expiry is one hour", func(t *testing.T) {
		token, err := service.GenerateAccessToken(1, "test@example.com", false)
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(AccessTokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token, err := service.GenerateAccessToken(1, "test@example.com", false)
		assert.NoError(t, err)

		other := NewJWTService("other-secret")
		claims, err := other.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestJWTService_RefreshToken(t *testing.T) {
	service := NewJWTService("test-secret")

	tokenID, token, err := service.GenerateRefreshToken(42, "test@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)
	assert.NotEmpty(t, token)

	extracted, err := service.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	// Refresh tokens never carry the admin flag.
	assert.False(t, claims.IsAdmin)
}

func TestJWTService_ExtractTokenID_NoJTI(t *testing.T) {
	service := NewJWTService("test-secret")

	// Access tokens have no JTI.
	token, err := service.GenerateAccessToken(1, "test@example.com", false)
	assert.NoError(t, err)

	id, err := service.ExtractTokenID(token)
	assert.Error(t, err)
	assert.Empty(t, id)
}
