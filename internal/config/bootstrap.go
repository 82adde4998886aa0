package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// writeTemplate scaffolds a first-run config file at path with placeholder
// values and returns an error wrapping [ErrMissingConfig] that tells the
// user to fill it in. The file is written 0600 because it names the sealed
// credential blob locations.
func writeTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tpl := StructuredJSONConfig{}
	tpl.Vault.Domain = "team.vault.example.com"
	tpl.Vault.Email = "you@example.com"
	tpl.Vault.APIAddress = "https://team.vault.example.com"
	tpl.Vault.RequestTimeout = Duration(DefaultRequestTimeout)
	tpl.Crypto.Recipient = "age1..."
	tpl.Crypto.IdentityFile = "~/.config/vaultclip/identity.txt"
	tpl.Crypto.SecretKeyFile = "~/.config/vaultclip/secret-key.age"
	tpl.Crypto.MasterPasswordFile = "~/.config/vaultclip/master-password.age"
	tpl.Clip.Timeout = Duration(DefaultClipTimeout)

	raw, err := json.MarshalIndent(&tpl, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config template: %w", err)
	}

	if err = os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write config template: %w", err)
	}

	return fmt.Errorf("%w: wrote a template to %s, fill it in and re-run", ErrMissingConfig, path)
}
