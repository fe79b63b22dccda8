package auth

import (
	"testing"

	"gemmarket_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("super_password123")
	require.NoError(t, err)
	assert.NotEqual(t, "super_password123", hash)

	assert.True(t, CheckPasswordHash("super_password123", hash))
	assert.False(t, CheckPasswordHash("wrong_password", hash))
	assert.False(t, CheckPasswordHash("super_password123", "not-a-hash"))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword("1234567"))
	assert.Error(t, ValidatePassword(""))
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken("user-123", []string{"customer", "dealer"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, []string{"customer", "dealer"}, claims.Roles)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestParseToken_RejectsTampered(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken("user-123", nil)
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)

	_, err = ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestClaimsHasRole(t *testing.T) {
	t.Parallel()

	claims := &Claims{Roles: []string{"admin", "appraiser"}}

	assert.True(t, claims.HasRole("admin"))
	assert.False(t, claims.HasRole("customer"))

	var empty Claims
	assert.False(t, empty.HasRole("admin"))
}

func TestGenerateRandomToken(t *testing.T) {
	t.Parallel()

	a := GenerateRandomToken()
	b := GenerateRandomToken()

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
