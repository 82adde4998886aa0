// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required before any component is constructed.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the sentinel values in errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	switch {
	case cfg.Vault.Domain == "":
		return fmt.Errorf("%w: vault domain is empty", ErrInvalidVaultConfigs)
	case cfg.Vault.Email == "":
		return fmt.Errorf("%w: account email is empty", ErrInvalidVaultConfigs)
	case cfg.Vault.APIAddress == "":
		return fmt.Errorf("%w: API address is empty", ErrInvalidVaultConfigs)
	}

	switch {
	case cfg.Crypto.Recipient == "":
		return fmt.Errorf("%w: recipient key is empty", ErrInvalidCryptoConfigs)
	case cfg.Crypto.IdentityFile == "":
		return fmt.Errorf("%w: identity file path is empty", ErrInvalidCryptoConfigs)
	case cfg.Crypto.SecretKeyFile == "":
		return fmt.Errorf("%w: sealed secret key path is empty", ErrInvalidCryptoConfigs)
	case cfg.Crypto.MasterPasswordFile == "":
		return fmt.Errorf("%w: sealed master password path is empty", ErrInvalidCryptoConfigs)
	}

	return nil
}
