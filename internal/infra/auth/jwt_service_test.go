package auth

import (
	"testing"
	"time"

	"giftshop/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func TestJWTService_IssueAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	))
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"customer", "admin"}

	pair, err := jwtService.IssueTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	// Same secret for both so only the type claim tells them apart.
	jwtService, err := NewJWTService(newTestConfig("shared_secret", "shared_secret"))
	require.NoError(t, err)

	pair, err := jwtService.IssueTokens(uuid.New(), []string{"customer"})
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorContains(t, err, "unexpected token type")

	_, err = jwtService.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorContains(t, err, "unexpected token type")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer_access", "issuer_refresh"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("other_access", "other_refresh"))
	require.NoError(t, err)

	pair, err := issuer.IssueTokens(uuid.New(), nil)
	require.NoError(t, err)

	claims, err := verifier.ValidateAccessToken(pair.AccessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("access", "refresh"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig("access", "refresh")
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: -time.Minute}

	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)

	// A non-positive TTL falls back to the default, so the token stays valid.
	pair, err := tokens.IssueTokens(uuid.New(), nil)
	require.NoError(t, err)
	_, err = tokens.ValidateAccessToken(pair.AccessToken)
	assert.NoError(t, err)

	// Issue from an hour ago so the 15 minute access token is already expired.
	svc := tokens.(*jwtService)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }
	stale, err := tokens.IssueTokens(uuid.New(), nil)
	require.NoError(t, err)
	_, err = tokens.ValidateAccessToken(stale.AccessToken)
	assert.ErrorContains(t, err, "token is expired")
	_, err = tokens.ValidateRefreshToken(stale.RefreshToken)
	assert.NoError(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_IssueTokens_ExpiryFollowsConfig(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cfg := newTestConfig("access", "refresh")
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 5 * time.Minute, RefreshTokenTTL: 48 * time.Hour}
	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)
	tokens.(*jwtService).now = func() time.Time { return fixed }

	pair, err := tokens.IssueTokens(uuid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(5*time.Minute), pair.AccessExpiresAt)
	assert.Equal(t, fixed.Add(48*time.Hour), pair.RefreshExpiresAt)

	defaults, err := NewJWTService(newTestConfig("access", "refresh"))
	require.NoError(t, err)
	defaults.(*jwtService).now = func() time.Time { return fixed }

	pair, err = defaults.IssueTokens(uuid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(defaultRefreshTTL), pair.RefreshExpiresAt)
}
