// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"agentbridge/internal/config"
	"agentbridge/internal/launcher"
	"agentbridge/internal/pathmap"
	"agentbridge/internal/session"
	"agentbridge/pkg/types"

	"github.com/spf13/cobra"
)

// envCmd prints what the bridge detected about the current session: the
// classified execution environment and where the assistant binary resolves
// to. Useful when diagnosing "assistant not found" reports.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the detected execution environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showEnvironment(cmd)
	},
}

func showEnvironment(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	meta := session.DetectHostMeta()
	ectx := session.Classify(meta)

	fmt.Fprintln(out, TitleStyle.Render("Execution Environment"))
	fmt.Fprintf(out, "  %s %s\n", SubtitleStyle.Render("platform:"), ectx.HostPlatform())
	fmt.Fprintf(out, "  %s %v\n", SubtitleStyle.Render("remote:"), ectx.IsRemote())
	if ectx.IsRemote() {
		fmt.Fprintf(out, "  %s %s\n", SubtitleStyle.Render("remote kind:"), ectx.RemoteKind())
		fmt.Fprintf(out, "  %s %s\n", SubtitleStyle.Render("authority:"), meta.RemoteAuthority)
	}

	cfg, cfgPath, err := config.Load(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, TitleStyle.Render("Assistant"))
	fmt.Fprintf(out, "  %s %s\n", SubtitleStyle.Render("configured binary:"), cfg.Assistant.Binary)
	if cfg.Assistant.BinaryPath != "" {
		fmt.Fprintf(out, "  %s %s\n", SubtitleStyle.Render("configured path:"), cfg.Assistant.BinaryPath)
	}

	l := launcher.New()
	resolved, err := l.Resolve(cfg.Assistant.Binary, types.FilesystemPath(cfg.Assistant.BinaryPath), ectx)
	if err != nil {
		fmt.Fprintf(out, "  %s %s\n", ErrorStyle.Render("resolved:"), "not found")
	} else {
		fmt.Fprintf(out, "  %s %s\n", SuccessStyle.Render("resolved:"), resolved)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, TitleStyle.Render("Paths"))
	fmt.Fprintf(out, "  %s %v\n", SubtitleStyle.Render("wsl translation:"), cfg.Paths.WSLTranslationEnabled)
	if cwd, cwdErr := os.Getwd(); cwdErr == nil {
		norm := pathmap.Normalize(
			types.FilesystemPath(cwd),
			ectx,
			pathmap.TranslationConfig{WSLEnabled: cfg.Paths.WSLTranslationEnabled},
		)
		fmt.Fprintf(out, "  %s %s\n", SubtitleStyle.Render("working dir:"), norm)
	}
	if cfgPath != "" {
		fmt.Fprintf(out, "  %s %s\n", SubtitleStyle.Render("config file:"), cfgPath)
	}

	return nil
}
