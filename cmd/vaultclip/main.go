// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/MKhiriev/go-vault-clip/internal/app"
	"github.com/MKhiriev/go-vault-clip/internal/clip"
	"github.com/MKhiriev/go-vault-clip/internal/config"
	"github.com/MKhiriev/go-vault-clip/internal/crypto"
	"github.com/MKhiriev/go-vault-clip/internal/logger"
	"github.com/MKhiriev/go-vault-clip/internal/provider"
	"github.com/MKhiriev/go-vault-clip/internal/resolver"
	"github.com/MKhiriev/go-vault-clip/internal/session"
	"github.com/MKhiriev/go-vault-clip/internal/store"
	"github.com/MKhiriev/go-vault-clip/internal/template"
)

// Process exit codes, one per error class so shell callers can branch on
// the failure kind.
const (
	exitOK          = 0
	exitConfig      = 1
	exitAuth        = 2
	exitDecrypt     = 3
	exitProvider    = 4
	exitNotFound    = 5
	exitUnspecified = 10
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, opts, err := config.GetConfig(os.Args[1:])
	if err != nil {
		diagnose(err)
		return exitCode(err)
	}

	log := logger.NewLogger("vaultclip", filepath.Join(cfg.Cache.Dir, "vaultclip.log"))
	log.Debug().Str("version", buildVersion).Str("date", buildDate).Str("commit", buildCommit).Msg("starting")

	sealer, err := crypto.NewAgeSealer(cfg.Crypto.Recipient, cfg.Crypto.IdentityFile)
	if err != nil {
		diagnose(fmt.Errorf("%w: %v", config.ErrInvalidCryptoConfigs, err))
		return exitConfig
	}

	blobStore, err := store.NewFileStore(cfg.Cache.Dir, sealer, log)
	if err != nil {
		diagnose(err)
		return exitConfig
	}

	providerClient, err := provider.NewRESTClient(cfg.Vault, log)
	if err != nil {
		diagnose(fmt.Errorf("%w: %v", config.ErrInvalidVaultConfigs, err))
		return exitConfig
	}

	sessionManager := session.NewManager(blobStore, providerClient, sealer, sealer, cfg.Vault, cfg.Crypto, promptOTP, log)
	itemResolver := resolver.New(blobStore, providerClient, sessionManager, log)
	broker := clip.NewBroker(clip.SystemClipboard(), cfg.Clip.Timeout, filepath.Join(cfg.Cache.Dir, "clip.pid"), log)
	application := app.New(sessionManager, itemResolver, providerClient, broker, log, os.Stdout)

	// A later invocation (or the user) can tear down the pending restore
	// with SIGTERM; the guard in the broker makes that safe.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, os.Interrupt)
	go func() {
		<-sigCh
		broker.Stop()
	}()

	sp := newSpinner()
	sp.Start()
	delivered, err := application.Run(context.Background(), *opts)
	sp.Stop()

	if err != nil {
		log.Error().Err(err).Msg("invocation failed")
		diagnose(err)
		return exitCode(err)
	}

	if delivered {
		// Keep the process alive until the guarded restore has run or a
		// newer invocation preempts it.
		broker.Wait()
	}

	return exitOK
}

func newSpinner() *spinner.Spinner {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = " talking to vault..."
	return sp
}

// promptOTP reads a second-factor code from the terminal. Sign-in happens
// rarely (once per session window), so an interactive prompt here is
// acceptable; a non-interactive invocation gets an empty code and the
// provider decides whether that is fatal.
func promptOTP() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}

	fmt.Fprint(os.Stderr, "two-factor code (enter to skip): ")
	reader := bufio.NewReader(os.Stdin)
	code, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read second-factor code: %w", err)
	}
	fmt.Fprintln(os.Stderr)

	return strings.TrimSpace(code), nil
}

func diagnose(err error) {
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "vaultclip: ")
	fmt.Fprintln(os.Stderr, err.Error())

	if errors.Is(err, config.ErrMissingConfig) {
		color.New(color.FgYellow).Fprintln(os.Stderr, "hint: provision the sealed secret key and master password blobs alongside the config file")
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, config.ErrMissingConfig),
		errors.Is(err, config.ErrInvalidVaultConfigs),
		errors.Is(err, config.ErrInvalidCryptoConfigs):
		return exitConfig
	case errors.Is(err, provider.ErrAuthFailed):
		return exitAuth
	case errors.Is(err, crypto.ErrDecrypt):
		return exitDecrypt
	case errors.Is(err, provider.ErrUnavailable), errors.Is(err, provider.ErrBadRequest):
		return exitProvider
	case errors.Is(err, resolver.ErrTitleNotFound),
		errors.Is(err, template.ErrFieldNotFound),
		errors.Is(err, template.ErrUnsupportedTemplate),
		errors.Is(err, provider.ErrNotFound),
		errors.Is(err, store.ErrBlobMissing):
		return exitNotFound
	default:
		return exitUnspecified
	}
}
