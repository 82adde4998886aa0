// Package store persists sealed blobs under the local cache directory.
// Plaintext never reaches the filesystem: every Put passes through
// [crypto.Sealer] before any bytes are written, and writes are atomic
// (temp file + rename) so a crash mid-write can never leave a truncated
// readable blob. Overwriting an existing blob keeps the previous
// generation as a single .bak backup.
package store

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_store_mock.go -package=mock

// BlobStore is the sealed-blob-on-disk cache used for the session token,
// the vault index, and per-item records. Keys are flat names; each maps to
// one file in the cache directory.
type BlobStore interface {
	// Put seals plaintext and writes it atomically under key. If a blob
	// already exists at key, it is first copied to a .bak backup
	// (single-generation history).
	Put(key string, plaintext []byte) error

	// Get reads the blob at key and opens it. Returns [ErrBlobMissing]
	// when no blob exists, or an error wrapping [crypto.ErrDecrypt] when
	// the blob cannot be opened.
	Get(key string) ([]byte, error)

	// Backup opens the single-generation .bak backup for key. Returns
	// [ErrBlobMissing] when no backup exists.
	Backup(key string) ([]byte, error)

	// Stat returns the blob's modification time, or [ErrBlobMissing].
	Stat(key string) (time.Time, error)

	// Touch refreshes the blob's modification time to now, or returns
	// [ErrBlobMissing].
	Touch(key string) error

	// Delete removes the blob at key. Deleting an absent blob is not an
	// error.
	Delete(key string) error
}
