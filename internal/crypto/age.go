// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"filippo.io/age"
)

// AgeSealer implements [Sealer] and [KeyAgent] on top of filippo.io/age.
// Sealing needs only the recipient public key; opening lazily loads the
// identities from identityPath on first use and keeps them cached until
// Forget is called.
type AgeSealer struct {
	recipient    *age.X25519Recipient
	identityPath string

	mu         sync.Mutex
	identities []age.Identity
}

// NewAgeSealer constructs an [AgeSealer] for the given age1... recipient
// public key and identity file path. The identity file is not read here —
// a sealer used only for sealing never needs it.
func NewAgeSealer(recipientKey, identityPath string) (*AgeSealer, error) {
	recipient, err := age.ParseX25519Recipient(recipientKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecipient, err)
	}

	return &AgeSealer{recipient: recipient, identityPath: identityPath}, nil
}

// Seal implements [Sealer]. The returned blob is the raw age ciphertext.
func (s *AgeSealer) Seal(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := age.Encrypt(&buf, s.recipient)
	if err != nil {
		return nil, fmt.Errorf("create age encryptor: %w", err)
	}
	if _, err = w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("write plaintext to age encryptor: %w", err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("finalize age encryption: %w", err)
	}

	return buf.Bytes(), nil
}

// Open implements [Sealer]. All failure modes, including an unreadable
// identity file, wrap [ErrDecrypt] so callers can classify them uniformly.
func (s *AgeSealer) Open(ciphertext []byte) ([]byte, error) {
	identities, err := s.loadIdentities()
	if err != nil {
		return nil, err
	}

	r, err := age.Decrypt(bytes.NewReader(ciphertext), identities...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read decrypted stream: %v", ErrDecrypt, err)
	}

	return plaintext, nil
}

// Forget implements [KeyAgent]. It drops the cached identities; the next
// Open reloads them from the identity file.
func (s *AgeSealer) Forget() {
	s.mu.Lock()
	s.identities = nil
	s.mu.Unlock()
}

func (s *AgeSealer) loadIdentities() ([]age.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identities != nil {
		return s.identities, nil
	}

	raw, err := os.ReadFile(s.identityPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read identity file %s: %v", ErrDecrypt, s.identityPath, err)
	}

	identities, err := age.ParseIdentities(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: parse identity file %s: %v", ErrDecrypt, s.identityPath, err)
	}

	s.identities = identities
	return identities, nil
}
