// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-clip/internal/crypto"
	"github.com/MKhiriev/go-vault-clip/internal/logger"
)

const blobSuffix = ".age"

// fileStore is the default implementation of [BlobStore]. One sealed file
// per key, mode 0600, inside a 0700 cache directory.
type fileStore struct {
	dir    string
	sealer crypto.Sealer
	logger *logger.Logger
}

// NewFileStore constructs a [BlobStore] rooted at dir, creating the
// directory (mode 0700) if it does not exist.
func NewFileStore(dir string, sealer crypto.Sealer, log *logger.Logger) (BlobStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create cache directory %s: %w", dir, err)
	}

	return &fileStore{dir: dir, sealer: sealer, logger: log}, nil
}

// Put implements [BlobStore]. The sealed blob is written to a uniquely
// named temp file in the same directory and renamed into place, so readers
// observe either the previous generation or the complete new one.
func (f *fileStore) Put(key string, plaintext []byte) error {
	sealed, err := f.sealer.Seal(plaintext)
	if err != nil {
		return fmt.Errorf("seal blob %q: %w", key, err)
	}

	path := f.path(key)
	tmp := path + "." + uuid.NewString() + ".tmp"

	if err = os.WriteFile(tmp, sealed, 0o600); err != nil {
		return fmt.Errorf("write temp blob for %q: %w", key, err)
	}

	if _, err = os.Stat(path); err == nil {
		if err = copyFile(path, path+".bak"); err != nil {
			_ = os.Remove(tmp)
			return fmt.Errorf("backup previous blob %q: %w", key, err)
		}
	}

	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace blob %q: %w", key, err)
	}

	f.logger.Debug().Str("key", key).Int("bytes", len(sealed)).Msg("sealed blob written")
	return nil
}

// Get implements [BlobStore].
func (f *fileStore) Get(key string) ([]byte, error) {
	return f.open(key, f.path(key))
}

// Backup implements [BlobStore].
func (f *fileStore) Backup(key string) ([]byte, error) {
	return f.open(key, f.path(key)+".bak")
}

// Stat implements [BlobStore].
func (f *fileStore) Stat(key string) (time.Time, error) {
	info, err := os.Stat(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, fmt.Errorf("%w: %q", ErrBlobMissing, key)
		}
		return time.Time{}, fmt.Errorf("stat blob %q: %w", key, err)
	}
	return info.ModTime(), nil
}

// Touch implements [BlobStore].
func (f *fileStore) Touch(key string) error {
	now := time.Now()
	if err := os.Chtimes(f.path(key), now, now); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %q", ErrBlobMissing, key)
		}
		return fmt.Errorf("touch blob %q: %w", key, err)
	}
	return nil
}

// Delete implements [BlobStore].
func (f *fileStore) Delete(key string) error {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}
	return nil
}

func (f *fileStore) path(key string) string {
	return filepath.Join(f.dir, key+blobSuffix)
}

func (f *fileStore) open(key, path string) ([]byte, error) {
	sealed, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrBlobMissing, key)
		}
		return nil, fmt.Errorf("read blob %q: %w", key, err)
	}

	plaintext, err := f.sealer.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("open blob %s: %w", path, err)
	}

	return plaintext, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
