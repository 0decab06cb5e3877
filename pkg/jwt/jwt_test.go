package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	tm := NewTokenManager("test-secret", "greetings-api", 24)

	token, err := tm.GenerateToken("a0b1", "admin@example.com", "Site Admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "a0b1", claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "Site Admin", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "greetings-api", claims.Issuer)
	assert.Equal(t, "a0b1", claims.Subject)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", "greetings-api", 24)
	other := NewTokenManager("other-secret", "greetings-api", 24)

	token, err := other.GenerateToken("a0b1", "admin@example.com", "Site Admin", "admin")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	expired := NewTokenManager("test-secret", "greetings-api", -1)

	token, err := expired.GenerateToken("a0b1", "admin@example.com", "Site Admin", "admin")
	require.NoError(t, err)

	tm := NewTokenManager("test-secret", "greetings-api", 24)
	claims, err := tm.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", "greetings-api", 24)

	claims, err := tm.ValidateToken("not.a.token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}
