package auth

import (
	"testing"
	"time"

	"grocer/config"
	"grocer/internal/domain/entity"
	domainerrors "grocer/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		TokenSecret: "test_signing_secret_key_very_long_for_testing",
		TokenTTL:    ttl,
	}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(24 * time.Hour))
	require.NoError(t, err)
	require.NotNil(t, svc)

	userID := uuid.New()
	email := "a@x.com"

	token, err := svc.Issue(userID, email, entity.RoleCustomer)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, email, claims.Email)
	assert.Equal(t, entity.RoleCustomer, claims.Role)

	// Expiry is issuance + 24h.
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Negative TTL would be corrected to the default, so issue through a
	// service with a short TTL and wait it out.
	svc, err := NewJWTService(newTestConfig(time.Millisecond))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New(), "a@x.com", entity.RoleAdmin)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(24 * time.Hour))
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig(24 * time.Hour))
	require.NoError(t, err)

	otherCfg := newTestConfig(24 * time.Hour)
	otherCfg.Auth.TokenSecret = "a_completely_different_signing_secret_key"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New(), "a@x.com", entity.RoleCustomer)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{}}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}
