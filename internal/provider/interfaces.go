// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider provides the transport-layer abstraction for
// communicating with the remote vault.
//
// The primary abstraction is [Client], which decouples the session and
// resolution layers from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewRESTClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrAuthFailed] for 401, [ErrNotFound] for 404).
package provider

import (
	"context"

	"github.com/MKhiriev/go-vault-clip/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_client_mock.go -package=mock

// SignInRequest carries the credentials for a fresh provider sign-in. OTP
// is the optional second factor and may be empty when the account has none.
type SignInRequest struct {
	Domain         string `json:"domain"`
	Email          string `json:"email"`
	SecretKey      string `json:"secretKey"`
	MasterPassword string `json:"masterPassword"`
	OTP            string `json:"otp,omitempty"`
}

// Client defines transport-agnostic communication with the remote vault.
// Implementations are responsible for serialisation, bearer-token header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type Client interface {
	// SignIn authenticates against the vault and returns a fresh session
	// token. A rejected sign-in (bad credentials, wrong second factor)
	// returns an error wrapping [ErrAuthFailed]; no retry is attempted.
	SignIn(ctx context.Context, req SignInRequest) (string, error)

	// ListItems fetches the lightweight listing of all vault items:
	// identifier, title, and template kind, in the provider's order. Full
	// item records are not downloaded.
	ListItems(ctx context.Context, token string) ([]models.IndexEntry, error)

	// GetItem fetches the full record of one item by identifier.
	GetItem(ctx context.Context, token, identifier string) (models.ItemRecord, error)

	// GetTotp fetches a live time-based one-time code for the item. Codes
	// are time-sensitive and must never be cached by the caller.
	GetTotp(ctx context.Context, token, identifier string) (string, error)
}
