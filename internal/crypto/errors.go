package crypto

import "errors"

var (
	// ErrDecrypt indicates that a sealed blob could not be opened: the
	// ciphertext is corrupt, was sealed to a different recipient, or the
	// identity file is missing or unreadable.
	ErrDecrypt = errors.New("unable to open sealed blob")

	// ErrInvalidRecipient indicates that the configured recipient key is
	// not a valid age X25519 public key.
	ErrInvalidRecipient = errors.New("invalid recipient key")
)
