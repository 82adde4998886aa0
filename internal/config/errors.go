package config

import "errors"

var (
	// ErrMissingConfig indicates that no configuration file exists yet. A
	// template is written to the default location when this is returned,
	// so the accompanying message tells the user what to fill in.
	ErrMissingConfig = errors.New("missing configuration")

	// ErrInvalidVaultConfigs indicates invalid vault account settings
	// (for example, missing domain, email, or API address).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")

	// ErrInvalidCryptoConfigs indicates invalid sealing settings (for
	// example, missing recipient key or identity file path).
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
)
