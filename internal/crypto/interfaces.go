// Package crypto provides the sealing capability that protects everything
// vault-clip persists. All on-disk state (the cached index, per-item blobs,
// and the session token) passes through [Sealer] so that plaintext never
// touches the filesystem.
//
// The default implementation ([NewAgeSealer]) wraps filippo.io/age: blobs
// are sealed to a single X25519 recipient and opened with identities loaded
// from the user's identity file. The parsed identities are cached in memory
// between Open calls; [KeyAgent.Forget] evicts that cache.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer seals plaintext for local persistence and opens previously sealed
// blobs. Implementations must never write key material or plaintext to disk.
type Sealer interface {
	// Seal encrypts plaintext to the configured recipient and returns the
	// ciphertext blob as it should be written to disk.
	Seal(plaintext []byte) ([]byte, error)

	// Open decrypts a blob previously produced by Seal. Failures (corrupt
	// blob, wrong key, unreadable identity) wrap [ErrDecrypt].
	Open(ciphertext []byte) ([]byte, error)
}

// KeyAgent controls cached decryption key material held in memory.
type KeyAgent interface {
	// Forget evicts any cached decryption keys. The next Open reloads them
	// from the identity file.
	Forget()
}
