// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Assistant.Binary != DefaultAssistantBinary {
		t.Errorf("expected default binary %q, got %q", DefaultAssistantBinary, cfg.Assistant.Binary)
	}
	if cfg.Assistant.BinaryPath != "" {
		t.Errorf("expected empty binary path, got %q", cfg.Assistant.BinaryPath)
	}
	if len(cfg.Assistant.ExtraArgs) != 0 {
		t.Errorf("expected no extra args, got %v", cfg.Assistant.ExtraArgs)
	}
	if cfg.Paths.WSLTranslationEnabled {
		t.Error("expected WSL translation disabled by default")
	}
	if cfg.UI.Verbose {
		t.Error("expected verbose disabled by default")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected color scheme auto, got %q", cfg.UI.ColorScheme)
	}

	if ok, errs := cfg.IsValid(); !ok {
		t.Errorf("expected default config to be valid, got %v", errs)
	}
}

func TestColorSchemeIsValid(t *testing.T) {
	tests := []struct {
		name   string
		scheme ColorScheme
		want   bool
	}{
		{"auto", ColorSchemeAuto, true},
		{"dark", ColorSchemeDark, true},
		{"light", ColorSchemeLight, true},
		{"empty", ColorScheme(""), false},
		{"unknown", ColorScheme("neon"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, errs := tt.scheme.IsValid()
			if ok != tt.want {
				t.Errorf("IsValid() = %v, want %v", ok, tt.want)
			}
			if !tt.want {
				if len(errs) == 0 {
					t.Fatal("expected validation errors")
				}
				if !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("expected ErrInvalidColorScheme, got %v", errs[0])
				}
			}
		})
	}
}

func TestBinaryFilePathIsValid(t *testing.T) {
	tests := []struct {
		name string
		path BinaryFilePath
		want bool
	}{
		{"zero value means auto-detect", "", true},
		{"absolute path", "/usr/local/bin/claude", true},
		{"relative path", "bin/claude", true},
		{"whitespace only", "   ", false},
		{"tab only", "\t", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, errs := tt.path.IsValid()
			if ok != tt.want {
				t.Errorf("IsValid() = %v, want %v", ok, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidBinaryFilePath) {
				t.Errorf("expected ErrInvalidBinaryFilePath, got %v", errs[0])
			}
		})
	}
}

func TestConfigIsValidCollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Assistant.Binary = "has/slash"
	cfg.UI.ColorScheme = "neon"

	ok, errs := cfg.IsValid()
	if ok {
		t.Fatal("expected invalid config")
	}
	if len(errs) != 1 {
		t.Fatalf("expected single wrapping error, got %d", len(errs))
	}

	var invalid *InvalidConfigError
	if !errors.As(errs[0], &invalid) {
		t.Fatalf("expected InvalidConfigError, got %T", errs[0])
	}
	if len(invalid.FieldErrors) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(invalid.FieldErrors))
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Error("expected ErrInvalidConfig in chain")
	}
}
