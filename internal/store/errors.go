package store

import "errors"

var (
	// ErrBlobMissing indicates that no blob (or backup) exists for the
	// requested key.
	ErrBlobMissing = errors.New("blob not found")
)
