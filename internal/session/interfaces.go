// Package session manages the authenticated provider session: obtaining a
// token, reusing it across invocations through the sealed session blob,
// and forgetting it on demand.
//
// The persisted session is valid for a sliding 29-minute window tracked by
// the sealed blob's modification time: every successful reuse refreshes the
// mtime, so the window slides instead of expiring a fixed time after
// creation. Expiry is lazy — checked at read time, never actively swept.
package session

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_manager_mock.go -package=mock

// Manager obtains and reuses an authenticated session token.
type Manager interface {
	// EnsureSession returns a valid session token, signing in through the
	// provider only when the in-process token and the persisted session
	// are both unusable, or when forceRefresh is set. A failed sign-in is
	// fatal for the invocation: the error is returned immediately and no
	// partial session state is persisted.
	EnsureSession(ctx context.Context, forceRefresh bool) (string, error)

	// Forget deletes the persisted session unconditionally and directs
	// the key agent to evict cached decryption keys. It does not talk to
	// the remote provider. Deleting an absent session is not an error.
	Forget() error
}
