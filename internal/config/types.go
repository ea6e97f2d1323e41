// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"agentbridge/pkg/types"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// DefaultAssistantBinary is the bare name looked up when no override is
	// configured.
	DefaultAssistantBinary types.BinaryName = "claude"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidBinaryFilePath is returned when a BinaryFilePath value is whitespace-only.
	ErrInvalidBinaryFilePath = errors.New("invalid binary file path")
	// ErrInvalidAssistantConfig is the sentinel error wrapped by InvalidAssistantConfigError.
	ErrInvalidAssistantConfig = errors.New("invalid assistant config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// BinaryFilePath represents a filesystem path to the assistant executable.
	// The zero value ("") is valid and means "resolve the binary by name".
	// Non-zero values must not be whitespace-only.
	BinaryFilePath string

	// InvalidBinaryFilePathError is returned when a BinaryFilePath value is
	// non-empty but whitespace-only.
	InvalidBinaryFilePathError struct {
		Value BinaryFilePath
	}

	// InvalidAssistantConfigError is returned when an AssistantConfig has
	// invalid fields. It wraps ErrInvalidAssistantConfig for errors.Is()
	// compatibility and collects field-level validation errors.
	InvalidAssistantConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Assistant configures how the assistant binary is located and invoked.
		Assistant AssistantConfig `json:"assistant" mapstructure:"assistant"`
		// Paths configures path translation behavior.
		Paths PathsConfig `json:"paths" mapstructure:"paths"`
		// UI configures the command-line surface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// AssistantConfig configures the external assistant CLI.
	AssistantConfig struct {
		// Binary is the bare executable name resolved on PATH.
		Binary types.BinaryName `json:"binary" mapstructure:"binary"`
		// BinaryPath overrides resolution with an explicit path when set.
		BinaryPath BinaryFilePath `json:"binary_path" mapstructure:"binary_path"`
		// ExtraArgs are appended to every invocation.
		ExtraArgs []string `json:"extra_args" mapstructure:"extra_args"`
	}

	// PathsConfig configures path translation. It is re-read on every
	// normalization call; the flag may change between invocations.
	PathsConfig struct {
		// WSLTranslationEnabled rewrites Windows drive-letter paths to the
		// /mnt/<drive> convention for local sessions executing under WSL.
		WSLTranslationEnabled bool `json:"wsl_translation_enabled" mapstructure:"wsl_translation_enabled"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables verbose diagnostic output.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// ColorScheme selects the terminal color scheme.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Assistant: AssistantConfig{
			Binary: DefaultAssistantBinary,
		},
		Paths: PathsConfig{
			WSLTranslationEnabled: false,
		},
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// IsValid returns whether the ColorScheme is one of the recognized values.
func (s ColorScheme) IsValid() (bool, []error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	}
	return false, []error{&InvalidColorSchemeError{Value: s}}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be %q, %q, or %q)",
		e.Value, ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the BinaryFilePath is valid. The zero value is
// valid; non-zero values must not be whitespace-only.
func (p BinaryFilePath) IsValid() (bool, []error) {
	if p != "" && strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidBinaryFilePathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidBinaryFilePathError) Error() string {
	return fmt.Sprintf("invalid binary file path %q: must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidBinaryFilePath for errors.Is() compatibility.
func (e *InvalidBinaryFilePathError) Unwrap() error { return ErrInvalidBinaryFilePath }

// IsValid returns whether the AssistantConfig is valid, collecting
// field-level validation errors.
func (c AssistantConfig) IsValid() (bool, []error) {
	var fieldErrors []error

	if ok, errs := c.Binary.IsValid(); !ok {
		fieldErrors = append(fieldErrors, errs...)
	}
	if ok, errs := c.BinaryPath.IsValid(); !ok {
		fieldErrors = append(fieldErrors, errs...)
	}

	if len(fieldErrors) > 0 {
		return false, []error{&InvalidAssistantConfigError{FieldErrors: fieldErrors}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidAssistantConfigError) Error() string {
	return fmt.Sprintf("invalid assistant config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidAssistantConfig for errors.Is() compatibility.
func (e *InvalidAssistantConfigError) Unwrap() error { return ErrInvalidAssistantConfig }

// IsValid returns whether the Config is valid, collecting validation errors
// from all sub-components.
func (c *Config) IsValid() (bool, []error) {
	var fieldErrors []error

	if ok, errs := c.Assistant.IsValid(); !ok {
		fieldErrors = append(fieldErrors, errs...)
	}
	if ok, errs := c.UI.ColorScheme.IsValid(); !ok {
		fieldErrors = append(fieldErrors, errs...)
	}

	if len(fieldErrors) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: fieldErrors}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
