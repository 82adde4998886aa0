package template

import "errors"

var (
	// ErrFieldNotFound indicates the requested field does not exist in the
	// item record.
	ErrFieldNotFound = errors.New("no such field")

	// ErrUnsupportedTemplate indicates the item's template kind is not
	// recognized by this build. Surfaced distinctly so new kinds can be
	// added without silent misbehavior.
	ErrUnsupportedTemplate = errors.New("unsupported template kind")
)
