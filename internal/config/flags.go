package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags and positional arguments from
// args (normally os.Args[1:]). It uses a private FlagSet so tests can call
// it repeatedly with different argument lists.
//
// Flags:
//
//	-c/-config json config file path
//	-api-address vault provider API base URL
//	-cache-dir sealed blob cache directory
//	-clip-timeout clipboard restore delay (e.g. "30s")
//	-r refresh: bypass the cached index and item blobs
//	-p print the secret to stdout instead of the clipboard
//	-l list the available field labels for the item
//	-forget drop the persisted session and cached decryption keys
//
// Positional arguments: [title] [field].
func ParseFlags(args []string) (*StructuredConfig, *Options, error) {
	fs := flag.NewFlagSet("vaultclip", flag.ContinueOnError)

	var jsonConfigPath string
	var apiAddress string
	var cacheDir string
	var clipTimeout time.Duration
	opts := &Options{}

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&apiAddress, "api-address", "", "Vault provider API base URL")
	fs.StringVar(&cacheDir, "cache-dir", "", "Sealed blob cache directory")
	fs.DurationVar(&clipTimeout, "clip-timeout", 0, "Clipboard restore delay (e.g. 30s)")
	fs.BoolVar(&opts.Refresh, "r", false, "Refresh the cached index and item")
	fs.BoolVar(&opts.Print, "p", false, "Print the secret to stdout")
	fs.BoolVar(&opts.ListFields, "l", false, "List the item's field labels")
	fs.BoolVar(&opts.Forget, "forget", false, "Drop the persisted session and cached keys")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	rest := fs.Args()
	if len(rest) > 0 {
		opts.Title = rest[0]
	}
	if len(rest) > 1 {
		opts.Field = rest[1]
	}

	cfg := &StructuredConfig{
		Vault: Vault{
			APIAddress: apiAddress,
		},
		Cache: Cache{
			Dir: cacheDir,
		},
		Clip: Clip{
			Timeout: clipTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, opts, nil
}
