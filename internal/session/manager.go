// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-vault-clip/internal/config"
	"github.com/MKhiriev/go-vault-clip/internal/crypto"
	"github.com/MKhiriev/go-vault-clip/internal/logger"
	"github.com/MKhiriev/go-vault-clip/internal/provider"
	"github.com/MKhiriev/go-vault-clip/internal/store"
	"github.com/MKhiriev/go-vault-clip/models"
)

// SessionTTL is the sliding staleness window for a persisted session.
// Provider tokens live 30 minutes; one minute of slack keeps a token that
// passed the local check from expiring mid-request.
const SessionTTL = 29 * time.Minute

const sessionKey = "session"

// OTPPrompt asks the user for a second-factor code during sign-in. A nil
// prompt means the account has no second factor configured.
type OTPPrompt func() (string, error)

type manager struct {
	store     store.BlobStore
	provider  provider.Client
	sealer    crypto.Sealer
	agent     crypto.KeyAgent
	vaultCfg  config.Vault
	cryptoCfg config.Crypto
	otpPrompt OTPPrompt
	logger    *logger.Logger

	ttl   time.Duration
	now   func() time.Time
	token string
}

// NewManager constructs the default [Manager]. The sealer opens the
// user-provisioned credential blobs during sign-in; the agent is told to
// drop cached keys on Forget. otpPrompt may be nil.
func NewManager(
	blobStore store.BlobStore,
	providerClient provider.Client,
	sealer crypto.Sealer,
	agent crypto.KeyAgent,
	vaultCfg config.Vault,
	cryptoCfg config.Crypto,
	otpPrompt OTPPrompt,
	log *logger.Logger,
) Manager {
	return &manager{
		store:     blobStore,
		provider:  providerClient,
		sealer:    sealer,
		agent:     agent,
		vaultCfg:  vaultCfg,
		cryptoCfg: cryptoCfg,
		otpPrompt: otpPrompt,
		logger:    log,
		ttl:       SessionTTL,
		now:       time.Now,
	}
}

// EnsureSession implements [Manager].
func (m *manager) EnsureSession(ctx context.Context, forceRefresh bool) (string, error) {
	if m.token != "" && !forceRefresh {
		return m.token, nil
	}

	if !forceRefresh {
		if token, ok := m.reusePersisted(); ok {
			m.token = token
			return token, nil
		}
	}

	token, err := m.signIn(ctx)
	if err != nil {
		return "", err
	}

	sess := models.Session{Token: token, LastRefreshedAt: m.now()}
	raw, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	if err = m.store.Put(sessionKey, raw); err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}

	m.token = token
	return token, nil
}

// reusePersisted tries to reuse the sealed session blob. Any defect —
// absent, stale, unreadable, or empty — reports false so the caller signs
// in; a persisted session is never a hard failure.
func (m *manager) reusePersisted() (string, bool) {
	mtime, err := m.store.Stat(sessionKey)
	if err != nil {
		return "", false
	}
	if m.now().Sub(mtime) >= m.ttl {
		m.logger.Debug().Time("last_refreshed", mtime).Msg("persisted session is stale")
		return "", false
	}

	raw, err := m.store.Get(sessionKey)
	if err != nil {
		m.logger.Warn().Err(err).Msg("persisted session unreadable, signing in again")
		return "", false
	}

	var sess models.Session
	if err = json.Unmarshal(raw, &sess); err != nil || sess.Token == "" {
		m.logger.Warn().Msg("persisted session malformed, signing in again")
		return "", false
	}

	// Sliding window: every successful reuse restarts the TTL.
	if err = m.store.Touch(sessionKey); err != nil {
		m.logger.Warn().Err(err).Msg("refresh session mtime")
	}

	return sess.Token, true
}

func (m *manager) signIn(ctx context.Context) (string, error) {
	secretKey, err := m.openProvisioned(m.cryptoCfg.SecretKeyFile)
	if err != nil {
		return "", fmt.Errorf("account secret key: %w", err)
	}

	masterPassword, err := m.openProvisioned(m.cryptoCfg.MasterPasswordFile)
	if err != nil {
		return "", fmt.Errorf("master password: %w", err)
	}

	otp := ""
	if m.otpPrompt != nil {
		if otp, err = m.otpPrompt(); err != nil {
			return "", fmt.Errorf("read second factor: %w", err)
		}
	}

	token, err := m.provider.SignIn(ctx, provider.SignInRequest{
		Domain:         m.vaultCfg.Domain,
		Email:          m.vaultCfg.Email,
		SecretKey:      secretKey,
		MasterPassword: masterPassword,
		OTP:            otp,
	})
	if err != nil {
		return "", err
	}

	m.logger.Info().Msg("established fresh vault session")
	return token, nil
}

// openProvisioned reads and opens one of the write-once sealed credential
// blobs. A missing file is a configuration defect, not a decrypt failure.
func (m *manager) openProvisioned(path string) (string, error) {
	sealed, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: sealed blob %s does not exist", config.ErrMissingConfig, path)
		}
		return "", fmt.Errorf("read sealed blob %s: %w", path, err)
	}

	plaintext, err := m.sealer.Open(sealed)
	if err != nil {
		return "", fmt.Errorf("open sealed blob %s: %w", path, err)
	}

	return strings.TrimRight(string(plaintext), "\n"), nil
}

// Forget implements [Manager].
func (m *manager) Forget() error {
	m.token = ""

	if err := m.store.Delete(sessionKey); err != nil && !errors.Is(err, store.ErrBlobMissing) {
		return fmt.Errorf("delete persisted session: %w", err)
	}

	m.agent.Forget()
	m.logger.Info().Msg("session forgotten, cached keys evicted")
	return nil
}
