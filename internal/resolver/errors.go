package resolver

import "errors"

var (
	// ErrTitleNotFound indicates the requested title does not exist in the
	// vault index.
	ErrTitleNotFound = errors.New("no item with that title")
)
