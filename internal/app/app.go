// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app orchestrates one vault-clip invocation: session, index and
// item resolution, field extraction, and delivery, in that fixed order.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-vault-clip/internal/clip"
	"github.com/MKhiriev/go-vault-clip/internal/config"
	"github.com/MKhiriev/go-vault-clip/internal/logger"
	"github.com/MKhiriev/go-vault-clip/internal/provider"
	"github.com/MKhiriev/go-vault-clip/internal/resolver"
	"github.com/MKhiriev/go-vault-clip/internal/session"
	"github.com/MKhiriev/go-vault-clip/internal/template"
	"github.com/MKhiriev/go-vault-clip/models"
)

// Reserved field names that bypass template field extraction.
const (
	// FieldTotp selects the live one-time-code path. It never reads the
	// item cache: codes are time-sensitive and must not be served stale.
	FieldTotp = "totp"

	// FieldUUID delivers the item's raw identifier.
	FieldUUID = "uuid"
)

// App wires the vault-clip components behind the command surface.
type App struct {
	session  session.Manager
	resolver resolver.Resolver
	provider provider.Client
	broker   *clip.Broker
	logger   *logger.Logger
	out      io.Writer
}

// New constructs an App. out receives printed secrets, title listings, and
// field-label listings (normally os.Stdout).
func New(
	sessionManager session.Manager,
	itemResolver resolver.Resolver,
	providerClient provider.Client,
	broker *clip.Broker,
	log *logger.Logger,
	out io.Writer,
) *App {
	return &App{
		session:  sessionManager,
		resolver: itemResolver,
		provider: providerClient,
		broker:   broker,
		logger:   log,
		out:      out,
	}
}

// Run executes one invocation described by opts. The returned delivered
// flag is true when a value was placed on the clipboard and a restore task
// is armed — the caller must then keep the process alive via the broker's
// Wait. Any error aborts the invocation before the delivery stage.
func (a *App) Run(ctx context.Context, opts config.Options) (delivered bool, err error) {
	if opts.Forget {
		return false, a.session.Forget()
	}

	// Session first: every later stage depends on it, and the refresh
	// flag re-authenticates before any fetch.
	if _, err = a.session.EnsureSession(ctx, opts.Refresh); err != nil {
		return false, err
	}

	if opts.Title == "" {
		return false, a.listTitles(ctx, opts.Refresh)
	}

	entry, err := a.resolver.ResolveTitle(ctx, opts.Title, opts.Refresh)
	if err != nil {
		return false, err
	}

	var value string
	switch {
	case opts.ListFields:
		return false, a.listFields(ctx, entry, opts.Refresh)
	case opts.Field == FieldUUID:
		value = entry.Identifier
	case opts.Field == FieldTotp:
		if value, err = a.liveTotp(ctx, entry.Identifier); err != nil {
			return false, err
		}
	default:
		if value, err = a.extractField(ctx, entry, opts.Field, opts.Refresh); err != nil {
			return false, err
		}
	}

	if err = a.broker.Deliver(value, opts.Print, a.out); err != nil {
		return false, err
	}

	a.logger.Info().Str("title", opts.Title).Bool("print", opts.Print).Msg("value delivered")
	return !opts.Print, nil
}

func (a *App) listTitles(ctx context.Context, refresh bool) error {
	titles, err := a.resolver.Titles(ctx, refresh)
	if err != nil {
		return err
	}
	for _, title := range titles {
		if _, err = fmt.Fprintln(a.out, title); err != nil {
			return fmt.Errorf("write title listing: %w", err)
		}
	}
	return nil
}

func (a *App) listFields(ctx context.Context, entry models.IndexEntry, refresh bool) error {
	if err := a.resolver.EnsureItemCached(ctx, entry.Identifier, refresh); err != nil {
		return err
	}

	record, err := a.resolver.CachedItem(ctx, entry.Identifier)
	if err != nil {
		return err
	}

	extractor, err := template.ForKind(record.Kind)
	if err != nil {
		return err
	}

	for _, label := range extractor.Labels(record) {
		if _, err = fmt.Fprintln(a.out, label); err != nil {
			return fmt.Errorf("write field listing: %w", err)
		}
	}
	return nil
}

func (a *App) liveTotp(ctx context.Context, identifier string) (string, error) {
	token, err := a.session.EnsureSession(ctx, false)
	if err != nil {
		return "", err
	}
	return a.provider.GetTotp(ctx, token, identifier)
}

func (a *App) extractField(ctx context.Context, entry models.IndexEntry, field string, refresh bool) (string, error) {
	if err := a.resolver.EnsureItemCached(ctx, entry.Identifier, refresh); err != nil {
		return "", err
	}

	record, err := a.resolver.CachedItem(ctx, entry.Identifier)
	if err != nil {
		return "", err
	}

	extractor, err := template.ForKind(record.Kind)
	if err != nil {
		return "", err
	}

	if field == "" {
		return extractor.Password(record)
	}
	return extractor.Field(record, field)
}
