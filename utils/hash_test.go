package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("rahasia1")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia1", hash)

	assert.True(t, CheckPasswordHash("rahasia1", hash))
	assert.False(t, CheckPasswordHash("rahasia2", hash))
	assert.False(t, CheckPasswordHash("rahasia1", "not-a-hash"))
}
