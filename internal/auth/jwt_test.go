package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthenticator() *JWTAuthenticator {
	return NewJWTAuthenticator(
		"access-secret", "refresh-secret",
		time.Hour, 24*time.Hour,
		"lokal", "lokal",
	)
}

func TestGenerateAndValidateTokens(t *testing.T) {
	a := newTestAuthenticator()

	access, refresh, err := a.GenerateTokens(42)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	accessToken, err := a.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.True(t, accessToken.Valid)

	claims, ok := accessToken.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "lokal", claims["iss"])

	refreshToken, err := a.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshToken.Valid)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	a := newTestAuthenticator()

	access, refresh, err := a.GenerateTokens(42)
	require.NoError(t, err)

	_, err = a.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = a.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	a := NewJWTAuthenticator(
		"access-secret", "refresh-secret",
		-time.Minute, -time.Minute,
		"lokal", "lokal",
	)

	access, _, err := a.GenerateTokens(42)
	require.NoError(t, err)

	_, err = a.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestTamperedSecretRejected(t *testing.T) {
	a := newTestAuthenticator()
	other := NewJWTAuthenticator(
		"different-secret", "different-refresh",
		time.Hour, time.Hour,
		"lokal", "lokal",
	)

	access, _, err := a.GenerateTokens(42)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(access)
	assert.Error(t, err)
}
