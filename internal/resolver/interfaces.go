// Package resolver maintains the cached title→identifier index and the
// per-item sealed blobs, fetching from the provider on miss or on an
// explicit refresh.
//
// The index and item caches are deliberately separate: listing titles never
// pulls full secret records, and the refresh flag applies selectively per
// call site (index-only, item-only, or both).
package resolver

import (
	"context"

	"github.com/MKhiriev/go-vault-clip/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_mock.go -package=mock

// Resolver resolves item titles against the cached vault index and manages
// the per-item blob cache.
type Resolver interface {
	// Titles returns all item titles in provider listing order, fetching
	// the index first when it is missing or refresh is set.
	Titles(ctx context.Context, refresh bool) ([]string, error)

	// ResolveTitle resolves a title to its index entry. When duplicate
	// titles exist, the first match in provider listing order wins.
	// Returns an error wrapping [ErrTitleNotFound] for an absent title.
	ResolveTitle(ctx context.Context, title string, refresh bool) (models.IndexEntry, error)

	// EnsureItemCached guarantees a sealed blob exists for the item,
	// fetching the full record from the provider when it is missing or
	// refresh is set. Idempotent: an already-cached, non-refreshing call
	// is a no-op.
	EnsureItemCached(ctx context.Context, identifier string, refresh bool) error

	// CachedItem decrypts and returns the cached record for identifier.
	CachedItem(ctx context.Context, identifier string) (models.ItemRecord, error)
}
