package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher()

	digest, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "correct horse battery staple", digest)

	assert.True(t, hasher.Verify("correct horse battery staple", digest))
	assert.False(t, hasher.Verify("wrong password", digest))
	assert.False(t, hasher.Verify("correct horse battery staple", "not-a-digest"))
}
