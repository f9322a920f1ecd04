package auth

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("harvest-2025")
	require.NoError(t, err)
	assert.NotEqual(t, "harvest-2025", hash)

	assert.True(t, h.Compare(hash, "harvest-2025"))
	assert.False(t, h.Compare(hash, "harvest-2024"))
	assert.False(t, h.Compare("", "harvest-2025"), "empty hash never matches")

	again, err := h.Hash("harvest-2025")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func TestPasswordHasher_EmptyPassword(t *testing.T) {
	_, err := NewPasswordHasher(bcrypt.MinCost).Hash("")
	assert.Error(t, err)
}

func TestNewPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewPasswordHasher(99)
	assert.Equal(t, DefaultBcryptCost, h.cost)
}

func TestGenerateNumericCode(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateNumericCode()
		require.NoError(t, err)
		require.Len(t, code, CodeLength)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
