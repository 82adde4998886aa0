package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] wrapper for timeout fields.
type StructuredJSONConfig struct {
	Vault struct {
		Domain         string   `json:"domain"`
		Email          string   `json:"email"`
		APIAddress     string   `json:"api_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"vault,omitempty"`

	Crypto struct {
		Recipient          string `json:"recipient"`
		IdentityFile       string `json:"identity_file"`
		SecretKeyFile      string `json:"secret_key_file"`
		MasterPasswordFile string `json:"master_password_file"`
	} `json:"crypto,omitempty"`

	Cache struct {
		Dir string `json:"dir"`
	} `json:"cache,omitempty"`

	Clip struct {
		Timeout Duration `json:"timeout"`
	} `json:"clip,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Vault: Vault{
			Domain:         jsonCfg.Vault.Domain,
			Email:          jsonCfg.Vault.Email,
			APIAddress:     jsonCfg.Vault.APIAddress,
			RequestTimeout: time.Duration(jsonCfg.Vault.RequestTimeout),
		},
		Crypto: Crypto{
			Recipient:          jsonCfg.Crypto.Recipient,
			IdentityFile:       jsonCfg.Crypto.IdentityFile,
			SecretKeyFile:      jsonCfg.Crypto.SecretKeyFile,
			MasterPasswordFile: jsonCfg.Crypto.MasterPasswordFile,
		},
		Cache: Cache{
			Dir: jsonCfg.Cache.Dir,
		},
		Clip: Clip{
			Timeout: time.Duration(jsonCfg.Clip.Timeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
