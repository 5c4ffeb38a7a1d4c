package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken(42, "user", testSecret, 7*24*time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.PrincipalID)
	assert.Equal(t, "user", claims.Role)
}

func TestExpiredTokenRejectedEvenWithCorrectSignature(t *testing.T) {
	// signed with the right secret but already past expiry
	token, err := GenerateToken(42, "user", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := GenerateToken(42, "restaurant", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "another-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := ParseToken(tok, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken, tok)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken(42, "user", testSecret, time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseToken(tampered, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
