package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	t.Parallel()
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, hasher.Compare(hash, "correct horse battery staple"))
	assert.Error(t, hasher.Compare(hash, "wrong password"))
}

func TestBcryptHasherProducesUniqueSalts(t *testing.T) {
	t.Parallel()
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("samepassword123")
	require.NoError(t, err)
	second, err := hasher.Hash("samepassword123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "bcrypt must salt each hash")
}
