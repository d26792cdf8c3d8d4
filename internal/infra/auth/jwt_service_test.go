package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/config"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{Secret: secret, TokenTTL: ttl}}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_SignAndParse(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Sign("a@x.com", userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)

	// Expiry sits one TTL after issuance.
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestJWTService_ParseRejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-a", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-b", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Sign("a@x.com", uuid.New())
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestJWTService_ParseRejectsExpired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", -time.Minute))
	require.NoError(t, err)

	token, err := svc.Sign("a@x.com", uuid.New())
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.Error(t, err)
}

func TestJWTService_ParseRejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.Parse("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_TTL(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret", 30*time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, svc.TTL())
}
