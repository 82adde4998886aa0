package provider

import "errors"

var (
	// ErrAuthFailed indicates the provider rejected the sign-in or the
	// session token (HTTP 401/403).
	ErrAuthFailed = errors.New("vault sign-in rejected")

	// ErrNotFound indicates the requested item does not exist on the
	// provider side (HTTP 404).
	ErrNotFound = errors.New("item not found on provider")

	// ErrBadRequest indicates the provider rejected the request shape
	// (HTTP 400).
	ErrBadRequest = errors.New("provider rejected request")

	// ErrUnavailable indicates a network failure or a provider-side error
	// (HTTP 5xx, transport errors).
	ErrUnavailable = errors.New("provider unavailable")
)
