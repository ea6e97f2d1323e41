// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	// The file may be CUE or TOML, chosen by extension.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
}

// Provider loads bridge configuration from explicit options, so callers can
// point loading at a specific file or directory without touching the
// package-level overrides the CLI flags set.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
	// LoadResolved additionally reports the path of the file the
	// configuration came from, empty when built-in defaults were used.
	LoadResolved(ctx context.Context, opts LoadOptions) (*Config, string, error)
}

type fileProvider struct{}

// NewProvider creates a configuration provider backed by the filesystem.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadResolved reads configuration and reports its source file.
func (p *fileProvider) LoadResolved(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	return loadWithOptions(ctx, opts)
}
