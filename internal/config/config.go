// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied when neither environment, flags, nor the JSON file set a
// value.
const (
	// DefaultClipTimeout is how long a delivered secret stays on the
	// clipboard before the guarded restore fires.
	DefaultClipTimeout = 30 * time.Second

	// DefaultRequestTimeout bounds every outbound provider request.
	DefaultRequestTimeout = 30 * time.Second
)

// StructuredConfig is the top-level configuration container for vault-clip.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault holds the remote vault account and endpoint settings.
	Vault Vault `envPrefix:"VAULTCLIP_VAULT_"`

	// Crypto holds the sealing keys and the user-provisioned sealed
	// credential blobs.
	Crypto Crypto `envPrefix:"VAULTCLIP_CRYPTO_"`

	// Cache holds the local sealed-blob cache settings.
	Cache Cache `envPrefix:"VAULTCLIP_CACHE_"`

	// Clip holds clipboard delivery settings.
	Clip Clip `envPrefix:"VAULTCLIP_CLIP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the VAULTCLIP_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"VAULTCLIP_CONFIG"`
}

// Vault identifies the remote vault account and API endpoint.
type Vault struct {
	// Domain is the vault account domain (e.g. "team.vault.example.com").
	// Env: VAULTCLIP_VAULT_DOMAIN
	Domain string `env:"DOMAIN"`

	// Email is the account email used for sign-in.
	// Env: VAULTCLIP_VAULT_EMAIL
	Email string `env:"EMAIL"`

	// APIAddress is the base URL of the vault provider API.
	// Env: VAULTCLIP_VAULT_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// provider request (e.g. "30s", "1m").
	// Env: VAULTCLIP_VAULT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Crypto holds the local sealing identity and the user-provisioned sealed
// credential blobs consumed during sign-in.
type Crypto struct {
	// Recipient is the age X25519 public key (age1...) everything
	// persisted by vault-clip is sealed to.
	// Env: VAULTCLIP_CRYPTO_RECIPIENT
	Recipient string `env:"RECIPIENT"`

	// IdentityFile is the path to the age identity file used to open
	// sealed blobs.
	// Env: VAULTCLIP_CRYPTO_IDENTITY_FILE
	IdentityFile string `env:"IDENTITY_FILE"`

	// SecretKeyFile is the path to the sealed account secret key blob.
	// Write-once, user-provisioned; vault-clip only ever reads it.
	// Env: VAULTCLIP_CRYPTO_SECRET_KEY_FILE
	SecretKeyFile string `env:"SECRET_KEY_FILE"`

	// MasterPasswordFile is the path to the sealed master password blob.
	// Write-once, user-provisioned; vault-clip only ever reads it.
	// Env: VAULTCLIP_CRYPTO_MASTER_PASSWORD_FILE
	MasterPasswordFile string `env:"MASTER_PASSWORD_FILE"`
}

// Cache holds settings for the local sealed-blob cache.
type Cache struct {
	// Dir is the directory holding the sealed session, index, and item
	// blobs, plus the log and clipboard pid files.
	// Env: VAULTCLIP_CACHE_DIR
	Dir string `env:"DIR"`
}

// Clip holds clipboard delivery settings.
type Clip struct {
	// Timeout is how long a delivered secret stays on the clipboard before
	// the guarded restore fires (e.g. "30s").
	// Env: VAULTCLIP_CLIP_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Options carries the per-invocation command modifiers parsed from the
// command line. Unlike [StructuredConfig], these are never merged from the
// environment or the JSON file.
type Options struct {
	// Refresh forces a cache bypass at both index and item granularity and
	// re-authenticates the session.
	Refresh bool

	// Print delivers the secret on stdout instead of the clipboard.
	Print bool

	// ListFields lists the available field labels of the item instead of
	// delivering a value.
	ListFields bool

	// Forget drops the persisted session and evicts cached decryption
	// keys, then exits.
	Forget bool

	// Title is the first positional argument: the item title to resolve.
	// Empty means "list all titles".
	Title string

	// Field is the second positional argument: the field to deliver.
	// The reserved names "totp" and "uuid" select the one-time-code and
	// raw-identifier paths.
	Field string
}

// GetConfig loads, merges, and validates the vault-clip configuration from
// all available sources. Earlier sources win for fields they set, so the
// JSON file acts as the base and flags or environment variables override it:
//  1. Environment variables (after an optional .env load)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2, with a default under
//     the user config directory)
//
// If no JSON config file exists at the resolved default path, a template is
// written there and an error wrapping [ErrMissingConfig] is returned so the
// user knows what to fill in.
//
// Returns the fully populated config, the per-invocation [Options], or an
// error if any source fails to load or the final config fails validation.
func GetConfig(args []string) (*StructuredConfig, *Options, error) {
	builder := newConfigBuilder().
		withDotenv().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := builder.build()
	if err != nil {
		return nil, nil, err
	}

	cfg.applyDefaults()
	if err = cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, builder.options, nil
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Vault.RequestTimeout <= 0 {
		cfg.Vault.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Clip.Timeout <= 0 {
		cfg.Clip.Timeout = DefaultClipTimeout
	}
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = defaultCacheDir()
	}
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "vaultclip")
}

// DefaultConfigPath returns the default JSON config file location under the
// user config directory.
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config directory: %w", err)
	}
	return filepath.Join(base, "vaultclip", "config.json"), nil
}
