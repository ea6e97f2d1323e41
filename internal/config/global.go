// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// configDirOverride allows tests to override the config directory.
// This is necessary because os.UserHomeDir() doesn't reliably respect
// the HOME environment variable on all platforms (e.g., macOS in CI).
var configDirOverride string

// configFilePathOverride forces loading from a specific config file.
// Set via the --config CLI flag.
var configFilePathOverride string

// Reset clears overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigFilePathOverride forces Load to read the given config file.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// Load reads configuration honoring package-level overrides. It returns the
// effective configuration and the path of the file it was loaded from, empty
// when defaults were used.
func Load(ctx context.Context) (*Config, string, error) {
	return loadWithOptions(ctx, LoadOptions{ConfigFilePath: configFilePathOverride})
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
