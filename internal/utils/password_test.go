package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash, "hash must not equal the plaintext")

	assert.True(t, VerifyPassword("secret123", hash))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("wrong", hash))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("secret123", "not-a-bcrypt-hash"))
}
