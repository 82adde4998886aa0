// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the vault-clip configuration and the per-invocation
// command options.
//
// Configuration is assembled by merging three sources in priority order
// (last non-zero value wins): environment variables (after an optional
// .env load), command-line flags, and an optional JSON file. On first run
// with no config file, a template is scaffolded at the default location
// under the user config directory and the process exits with an
// instruction to fill it in.
//
// The merged result is an explicit immutable [StructuredConfig] value
// constructed once at startup and passed into every component; there are
// no ambient configuration globals.
package config
