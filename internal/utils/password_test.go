package utils_test

import (
	"strings"
	"testing"

	"github.com/activitydash/activity_dashboard_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ProducesBcryptHash(t *testing.T) {
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))
	assert.NotEqual(t, "password123", hash)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("password123", hash))
	assert.False(t, utils.CheckPasswordHash("password124", hash))
	assert.False(t, utils.CheckPasswordHash("password123", "not-a-hash"))
}
