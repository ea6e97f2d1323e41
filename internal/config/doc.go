// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the primary
// file format and TOML as a fallback.
//
// Configuration is loaded from ~/.config/agentbridge/config.cue (or XDG equivalent on
// Linux, ~/Library/Application Support/agentbridge/config.cue on macOS,
// %APPDATA%\agentbridge\config.cue on Windows), falling back to config.toml in the same
// directory. The package provides type-safe configuration access covering assistant
// binary resolution, path translation, and UI settings.
//
// CUE files are validated against a schema (config_schema.cue) to ensure type safety
// and provide clear error messages for invalid configurations.
package config
