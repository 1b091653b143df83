package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordVerifies(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestCheckPasswordHashEmptyHash(t *testing.T) {
	// OAuth-provisioned accounts carry no password hash.
	assert.False(t, CheckPasswordHash("anything", ""))
	assert.False(t, CheckPasswordHash("", ""))
}
