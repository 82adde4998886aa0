// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-clip/internal/logger"
	"github.com/MKhiriev/go-vault-clip/internal/provider"
	"github.com/MKhiriev/go-vault-clip/internal/session"
	"github.com/MKhiriev/go-vault-clip/internal/store"
	"github.com/MKhiriev/go-vault-clip/models"
)

const indexKey = "index"

func itemKey(identifier string) string {
	return "item-" + identifier
}

type resolver struct {
	store    store.BlobStore
	provider provider.Client
	session  session.Manager
	logger   *logger.Logger
}

// New constructs the default [Resolver] on top of the sealed blob store
// and the provider client. The session manager supplies tokens for index
// and item fetches.
func New(blobStore store.BlobStore, providerClient provider.Client, sessionManager session.Manager, log *logger.Logger) Resolver {
	return &resolver{
		store:    blobStore,
		provider: providerClient,
		session:  sessionManager,
		logger:   log,
	}
}

// Titles implements [Resolver].
func (r *resolver) Titles(ctx context.Context, refresh bool) ([]string, error) {
	idx, err := r.ensureIndex(ctx, refresh)
	if err != nil {
		return nil, err
	}
	return idx.Titles(), nil
}

// ResolveTitle implements [Resolver].
func (r *resolver) ResolveTitle(ctx context.Context, title string, refresh bool) (models.IndexEntry, error) {
	idx, err := r.ensureIndex(ctx, refresh)
	if err != nil {
		return models.IndexEntry{}, err
	}

	entry, ok := idx.FindTitle(title)
	if !ok {
		return models.IndexEntry{}, fmt.Errorf("%w: %q", ErrTitleNotFound, title)
	}

	return entry, nil
}

// EnsureItemCached implements [Resolver].
func (r *resolver) EnsureItemCached(ctx context.Context, identifier string, refresh bool) error {
	if !refresh {
		if _, err := r.store.Stat(itemKey(identifier)); err == nil {
			return nil
		} else if !errors.Is(err, store.ErrBlobMissing) {
			return err
		}
	}

	token, err := r.session.EnsureSession(ctx, false)
	if err != nil {
		return err
	}

	record, err := r.provider.GetItem(ctx, token, identifier)
	if err != nil {
		return fmt.Errorf("fetch item %s: %w", identifier, err)
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode item %s: %w", identifier, err)
	}
	if err = r.store.Put(itemKey(identifier), raw); err != nil {
		return fmt.Errorf("cache item %s: %w", identifier, err)
	}

	r.logger.Debug().Str("identifier", identifier).Msg("item record cached")
	return nil
}

// CachedItem implements [Resolver].
func (r *resolver) CachedItem(ctx context.Context, identifier string) (models.ItemRecord, error) {
	raw, err := r.store.Get(itemKey(identifier))
	if err != nil {
		return models.ItemRecord{}, err
	}

	var record models.ItemRecord
	if err = json.Unmarshal(raw, &record); err != nil {
		return models.ItemRecord{}, fmt.Errorf("decode cached item %s: %w", identifier, err)
	}

	return record, nil
}

// ensureIndex returns the cached index, fetching the full listing from the
// provider when the index is missing or refresh is set. The previous
// sealed index survives as a single-generation backup through the store's
// backup-on-put.
func (r *resolver) ensureIndex(ctx context.Context, refresh bool) (*models.Index, error) {
	if !refresh {
		raw, err := r.store.Get(indexKey)
		switch {
		case err == nil:
			var idx models.Index
			if err = json.Unmarshal(raw, &idx); err != nil {
				return nil, fmt.Errorf("decode cached index: %w", err)
			}
			return &idx, nil
		case errors.Is(err, store.ErrBlobMissing):
			// fall through to fetch
		default:
			return nil, err
		}
	}

	token, err := r.session.EnsureSession(ctx, false)
	if err != nil {
		return nil, err
	}

	entries, err := r.provider.ListItems(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch vault listing: %w", err)
	}

	idx := &models.Index{Entries: entries, FetchedAt: time.Now().UTC()}
	raw, err := json.Marshal(idx)
	if err != nil {
		return nil, fmt.Errorf("encode index: %w", err)
	}
	if err = r.store.Put(indexKey, raw); err != nil {
		return nil, fmt.Errorf("cache index: %w", err)
	}

	r.logger.Debug().Int("entries", len(entries)).Msg("index refreshed")
	return idx, nil
}
