// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"testing"

	"agentbridge/internal/config"
)

func TestSetConfigValue_RoundTrip(t *testing.T) {
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)

	if err := setConfigValue(context.Background(), "assistant.binary", "my-assistant"); err != nil {
		t.Fatalf("setConfigValue() returned error: %v", err)
	}
	if err := setConfigValue(context.Background(), "paths.wsl_translation_enabled", "true"); err != nil {
		t.Fatalf("setConfigValue() returned error: %v", err)
	}

	cfg, _, err := config.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() after set returned error: %v", err)
	}
	if cfg.Assistant.Binary != "my-assistant" {
		t.Errorf("binary = %q, want my-assistant", cfg.Assistant.Binary)
	}
	if !cfg.Paths.WSLTranslationEnabled {
		t.Error("expected WSL translation enabled after set")
	}
}

func TestSetConfigValue_RejectsUnknownKey(t *testing.T) {
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)

	if err := setConfigValue(context.Background(), "assistant.model", "fast"); err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
}

func TestSetConfigValue_ValidatesBeforeSaving(t *testing.T) {
	dir := t.TempDir()
	config.SetConfigDirOverride(dir)
	t.Cleanup(config.Reset)

	err := setConfigValue(context.Background(), "ui.color_scheme", "neon")
	if err == nil {
		t.Fatal("expected validation error for bad color scheme, got nil")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig in chain, got %v", err)
	}

	// The bad value must not have been written.
	cfg, _, loadErr := config.Load(context.Background())
	if loadErr != nil {
		t.Fatalf("Load() returned error: %v", loadErr)
	}
	if cfg.UI.ColorScheme != config.ColorSchemeAuto {
		t.Errorf("color scheme = %q, want default auto", cfg.UI.ColorScheme)
	}

	if parseErr := setConfigValue(context.Background(), "ui.verbose", "not-a-bool"); parseErr == nil {
		t.Fatal("expected parse error for non-boolean value, got nil")
	}
}
