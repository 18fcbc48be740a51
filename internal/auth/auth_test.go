package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.Generate("user-1", "a@example.com")
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestGenerate_PayloadClaims(t *testing.T) {
	token, err := NewTokenManager("secret", time.Hour).Generate("user-1", "a@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "user-1", payload["userId"])
	assert.Equal(t, "a@example.com", payload["email"])
	assert.NotContains(t, payload, "uid")
}

func TestValidate_Expired(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := m.Generate("user-1", "a@example.com")
	require.NoError(t, err)

	_, err = m.Validate(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("one", time.Hour).Generate("user-1", "a@example.com")
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := NewTokenManager("secret", time.Hour).Validate("not-a-token")
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))

	_, err = HashPassword(strings.Repeat("a", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
