package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "campushelper/internal/errors"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 15*time.Minute)

	token, err := svc.Generate("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenService_ZeroTTLExpiresImmediately(t *testing.T) {
	svc := NewTokenService("test-secret", 0)

	token, err := svc.Generate("alice")
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("test-secret", 15*time.Minute)

	token, err := svc.Generate("alice")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip one byte of the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Parse(tampered)
	assert.ErrorIs(t, err, apperrors.ErrTokenMalformed)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", 15*time.Minute)
	verifier := NewTokenService("secret-b", 15*time.Minute)

	token, err := issuer.Generate("alice")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenMalformed)
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("test-secret", 15*time.Minute)

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Parse(tokenString)
		assert.ErrorIs(t, err, apperrors.ErrTokenMalformed, "token=%q", tokenString)
	}
}
