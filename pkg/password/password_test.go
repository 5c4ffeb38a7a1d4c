package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashNeverStoresPlaintext(t *testing.T) {
	hash, err := Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.NotEmpty(t, hash)
}

func TestVerifyRoundtrip(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, Verify("correct horse battery staple", hash))
	assert.False(t, Verify("correct horse battery stable", hash))
	assert.False(t, Verify("", hash))
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := Hash("same password")
	require.NoError(t, err)
	h2, err := Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, Verify("same password", h1))
	assert.True(t, Verify("same password", h2))
}

func TestVerifyRejectsGarbageHash(t *testing.T) {
	assert.False(t, Verify("anything", "not-a-bcrypt-hash"))
}
