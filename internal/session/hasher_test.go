package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	digest, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", digest)
	assert.NotEmpty(t, digest)
}

func TestVerifyPassword(t *testing.T) {
	digest, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("hunter2", digest))
	assert.False(t, VerifyPassword("wrong", digest))
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	// A corrupt digest is a mismatch, never a panic or error.
	assert.False(t, VerifyPassword("hunter2", "not-a-bcrypt-digest"))
	assert.False(t, VerifyPassword("hunter2", ""))
}
