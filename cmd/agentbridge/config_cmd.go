// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"agentbridge/internal/config"
	"agentbridge/internal/issue"
	"agentbridge/pkg/types"

	"github.com/spf13/cobra"
)

// configCmd is the `agentbridge config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage agentbridge configuration",
	Long: `Manage agentbridge configuration.

Configuration is stored in:
  - Linux: ~/.config/agentbridge/config.cue
  - macOS: ~/Library/Application Support/agentbridge/config.cue
  - Windows: %APPDATA%\agentbridge\config.cue

A config.toml in the same directory is used as a fallback when no
config.cue exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(cmd.Context(), args[0], args[1])
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Print(config.GenerateCUE(cfg))
			return nil
		},
	})
}

func showConfig(ctx context.Context) error {
	cfg, cfgPath, err := config.Load(ctx)
	if err != nil {
		renderServiceError(os.Stderr, newServiceError(err, issue.ConfigLoadFailedId, ""), config.ColorSchemeAuto)
		return err
	}

	fmt.Println(TitleStyle.Render("Configuration"))
	if cfgPath != "" {
		fmt.Printf("  %s %s\n", SubtitleStyle.Render("source:"), cfgPath)
	} else {
		fmt.Printf("  %s %s\n", SubtitleStyle.Render("source:"), "built-in defaults")
	}
	fmt.Println()
	fmt.Printf("  %s %s\n", SubtitleStyle.Render("assistant.binary:"), cfg.Assistant.Binary)
	fmt.Printf("  %s %s\n", SubtitleStyle.Render("assistant.binary_path:"), orUnset(string(cfg.Assistant.BinaryPath)))
	fmt.Printf("  %s %v\n", SubtitleStyle.Render("assistant.extra_args:"), cfg.Assistant.ExtraArgs)
	fmt.Printf("  %s %v\n", SubtitleStyle.Render("paths.wsl_translation_enabled:"), cfg.Paths.WSLTranslationEnabled)
	fmt.Printf("  %s %v\n", SubtitleStyle.Render("ui.verbose:"), cfg.UI.Verbose)
	fmt.Printf("  %s %s\n", SubtitleStyle.Render("ui.color_scheme:"), cfg.UI.ColorScheme)

	return nil
}

func initConfigFile() error {
	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	fmt.Printf("%s configuration file at %s\n", SuccessStyle.Render("Created"), CmdStyle.Render(cfgPath))
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Println(filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

// setConfigValue updates a single configuration key and writes the result
// back to the config file. The updated config is validated before saving so
// a bad value never lands on disk.
func setConfigValue(ctx context.Context, key, value string) error {
	cfg, _, err := config.Load(ctx)
	if err != nil {
		return err
	}

	switch key {
	case "assistant.binary":
		cfg.Assistant.Binary = types.BinaryName(value)
	case "assistant.binary_path":
		cfg.Assistant.BinaryPath = config.BinaryFilePath(value)
	case "paths.wsl_translation_enabled":
		b, parseErr := strconv.ParseBool(value)
		if parseErr != nil {
			return fmt.Errorf("invalid boolean %q for %s: %w", value, key, parseErr)
		}
		cfg.Paths.WSLTranslationEnabled = b
	case "ui.verbose":
		b, parseErr := strconv.ParseBool(value)
		if parseErr != nil {
			return fmt.Errorf("invalid boolean %q for %s: %w", value, key, parseErr)
		}
		cfg.UI.Verbose = b
	case "ui.color_scheme":
		cfg.UI.ColorScheme = config.ColorScheme(value)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if ok, errs := cfg.IsValid(); !ok {
		return errs[0]
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("%s %s = %s\n", SuccessStyle.Render("Set"), CmdStyle.Render(key), value)
	return nil
}

func orUnset(v string) string {
	if v == "" {
		return "(unset)"
	}
	return v
}
