package auth

import (
	"testing"
	"time"

	"kampuskart/config"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtSvc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtSvc.GenerateTokens(userID, "buyer", "pending")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtSvc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "buyer", accessClaims.Role)
	assert.Equal(t, "pending", accessClaims.SellerStatus)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtSvc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Role)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtSvc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := jwtSvc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	other := newTestJWTConfig()
	other.SecretKey.Access = "another_access_secret_key_entirely"
	verifier, err := NewJWTService(other)
	require.NoError(t, err)

	accessToken, _, err := issuer.GenerateTokens(uuid.New(), "admin", "")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(accessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	jwtSvc := svc.(*jwtService)
	issuedAt := time.Now().Add(-time.Hour)
	jwtSvc.now = func() time.Time { return issuedAt }

	accessToken, _, err := jwtSvc.GenerateTokens(uuid.New(), "buyer", "")
	require.NoError(t, err)

	jwtSvc.now = time.Now
	_, err = jwtSvc.ValidateToken(accessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtSvc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtSvc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_TTLFromConfig(t *testing.T) {
	cfg := newTestJWTConfig()
	assertDuration := func(want time.Duration) {
		svc, err := NewJWTService(cfg)
		require.NoError(t, err)
		assert.Equal(t, want, svc.GetAccessTokenDuration())
	}

	assertDuration(15 * time.Minute)

	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}
	assertDuration(time.Hour)
}
