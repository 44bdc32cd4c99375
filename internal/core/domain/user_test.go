package domain_test

import (
	"testing"

	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
	"github.com/activitydash/activity_dashboard_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCredential_BcryptMarker(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	cred := domain.ParseCredential(hash)
	assert.Equal(t, domain.CredentialHashed, cred.Kind)
	assert.Equal(t, hash, cred.Value)
}

func TestParseCredential_LegacyPlaintext(t *testing.T) {
	cred := domain.ParseCredential("admin123")
	assert.Equal(t, domain.CredentialPlaintext, cred.Kind)
	assert.Equal(t, "admin123", cred.Value)
}

func TestCredentialVerify_Hashed(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	cred := domain.ParseCredential(hash)
	assert.True(t, cred.Verify("secret123"))
	assert.False(t, cred.Verify("wrong"))
	// The raw hash string is not a valid password for itself.
	assert.False(t, cred.Verify(hash))
}

func TestCredentialVerify_Plaintext(t *testing.T) {
	cred := domain.ParseCredential("employee123")
	assert.True(t, cred.Verify("employee123"))
	assert.False(t, cred.Verify("employee124"))
	assert.False(t, cred.Verify(""))
}
