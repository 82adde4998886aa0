package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"filippo.io/age"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestIdentity generates an age keypair and writes the identity to a
// temp file, returning the recipient key and the identity file path.
func newTestIdentity(t *testing.T) (string, string) {
	t.Helper()

	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "identity.txt")
	require.NoError(t, os.WriteFile(path, []byte(identity.String()+"\n"), 0o600))

	return identity.Recipient().String(), path
}

func TestAgeSealer_RoundTrip(t *testing.T) {
	recipient, identityPath := newTestIdentity(t)
	sealer, err := NewAgeSealer(recipient, identityPath)
	require.NoError(t, err)

	plaintext := []byte("correct horse battery staple")

	sealed, err := sealer.Seal(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, sealed)

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestAgeSealer_InvalidRecipient(t *testing.T) {
	_, err := NewAgeSealer("not-an-age-key", "unused")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestAgeSealer_ForgetReloadsIdentity(t *testing.T) {
	recipient, identityPath := newTestIdentity(t)
	sealer, err := NewAgeSealer(recipient, identityPath)
	require.NoError(t, err)

	sealed, err := sealer.Seal([]byte("v"))
	require.NoError(t, err)

	_, err = sealer.Open(sealed)
	require.NoError(t, err)

	sealer.Forget()

	// The identity cache is gone; Open must reload it from disk.
	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), opened)
}

func TestAgeSealer_ForgetThenMissingIdentityFile(t *testing.T) {
	recipient, identityPath := newTestIdentity(t)
	sealer, err := NewAgeSealer(recipient, identityPath)
	require.NoError(t, err)

	sealed, err := sealer.Seal([]byte("v"))
	require.NoError(t, err)

	sealer.Forget()
	require.NoError(t, os.Remove(identityPath))

	_, err = sealer.Open(sealed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestAgeSealer_WrongIdentity(t *testing.T) {
	recipient, _ := newTestIdentity(t)
	_, otherIdentityPath := newTestIdentity(t)

	sealer, err := NewAgeSealer(recipient, otherIdentityPath)
	require.NoError(t, err)

	sealed, err := sealer.Seal([]byte("v"))
	require.NoError(t, err)

	_, err = sealer.Open(sealed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestAgeSealer_CorruptCiphertext(t *testing.T) {
	recipient, identityPath := newTestIdentity(t)
	sealer, err := NewAgeSealer(recipient, identityPath)
	require.NoError(t, err)

	_, err = sealer.Open([]byte("definitely not an age blob"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecrypt)
}
