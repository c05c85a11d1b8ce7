package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPasswordHash("hunter2hunter2", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestCheckPasswordHashRejectsGarbage(t *testing.T) {
	assert.False(t, CheckPasswordHash("whatever", "not-a-bcrypt-hash"))
}
