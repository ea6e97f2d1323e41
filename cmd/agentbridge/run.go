// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"agentbridge/internal/config"
	"agentbridge/internal/issue"
	"agentbridge/internal/launcher"
	"agentbridge/internal/pathmap"
	"agentbridge/internal/session"
	"agentbridge/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// workdirFlag overrides the assistant's working directory.
	workdirFlag string
	// binaryFlag overrides the assistant binary path from config.
	binaryFlag string

	runCmd = &cobra.Command{
		Use:   "run [-- assistant-args...]",
		Short: "Launch the assistant CLI in the detected execution environment",
		Long: `Launch the assistant CLI in the detected execution environment.

The environment is classified once at launch time: a session is either
local or remote (SSH workspace, attached container, or WSL). The working
directory is translated for the active environment before the assistant
starts, and launch failures report whether the binary must be installed
on the remote machine.

Arguments after '--' are passed to the assistant verbatim, appended to
any extra_args from the configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssistant(cmd.Context(), args)
		},
	}
)

func init() {
	runCmd.Flags().StringVarP(&workdirFlag, "workdir", "w", "", "working directory for the assistant (defaults to the current directory)")
	runCmd.Flags().StringVar(&binaryFlag, "binary", "", "explicit path to the assistant binary (overrides config)")
}

// runAssistant is the end-to-end launch flow: classify the environment,
// load config, translate the working directory, resolve the binary, start
// the process, and propagate its exit code.
func runAssistant(ctx context.Context, passthroughArgs []string) error {
	// Classified once per launch; the result is immutable for the attempt.
	ectx := session.Classify(session.DetectHostMeta())

	cfg, _, err := config.Load(ctx)
	if err != nil {
		svcErr := newServiceError(err, issue.ConfigLoadFailedId, styledErrorMessage(err))
		renderServiceError(os.Stderr, svcErr, config.ColorSchemeAuto)
		return svcErr
	}
	scheme := cfg.UI.ColorScheme

	if verbose {
		fmt.Fprintf(os.Stderr, "%s %s\n", VerboseStyle.Render("environment:"), ectx.String())
	}

	l := launcher.New(launcher.WithLogger(newRunLogger()))

	override := types.FilesystemPath(binaryFlag)
	if override == "" {
		override = types.FilesystemPath(cfg.Assistant.BinaryPath)
	}

	binPath, err := l.Resolve(cfg.Assistant.Binary, override, ectx)
	if err != nil {
		return wrapRunError(err, ectx, scheme)
	}

	workdir := workdirFlag
	if workdir == "" {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			workdir = cwd
		}
	}
	normWorkdir := pathmap.Normalize(
		types.FilesystemPath(workdir),
		ectx,
		pathmap.TranslationConfig{WSLEnabled: cfg.Paths.WSLTranslationEnabled},
	)

	args := make([]string, 0, len(cfg.Assistant.ExtraArgs)+len(passthroughArgs))
	args = append(args, cfg.Assistant.ExtraArgs...)
	args = append(args, passthroughArgs...)

	req := launcher.Request{
		Binary:  binPath,
		Args:    args,
		WorkDir: normWorkdir,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	if interactive {
		return runInteractive(ctx, l, req, ectx, scheme)
	}

	inv, err := l.Invoke(ctx, req, ectx)
	if err != nil {
		return wrapRunError(err, ectx, scheme)
	}

	code, err := inv.Wait()
	if err != nil {
		return wrapRunError(err, ectx, scheme)
	}
	if !code.IsSuccess() {
		return newExitError(code, inv.ID())
	}
	return nil
}

// runInteractive launches the assistant on a pseudo-terminal and bridges it
// to the bridge's own terminal, mirroring window size changes into the PTY.
func runInteractive(ctx context.Context, l *launcher.Launcher, req launcher.Request, ectx session.ExecutionContext, scheme config.ColorScheme) error {
	si, err := l.StartInteractive(ctx, req, ectx)
	if err != nil {
		return wrapRunError(err, ectx, scheme)
	}
	defer func() { _ = si.Close() }()

	stopResize := watchWindowSize(si)
	defer stopResize()

	// The stdin copy blocks on the terminal read until the process exits
	// and the CLI exits with it; there is nothing to unblock it sooner.
	go func() { _, _ = io.Copy(si.TTY(), os.Stdin) }()
	go func() { _, _ = io.Copy(os.Stdout, si.TTY()) }()

	code, err := si.Wait()
	if err != nil {
		return wrapRunError(err, ectx, scheme)
	}
	if !code.IsSuccess() {
		return newExitError(code, si.ID())
	}
	return nil
}

// wrapRunError classifies a launch failure, renders its issue help text, and
// returns a ServiceError for the CLI layer.
func wrapRunError(err error, ectx session.ExecutionContext, scheme config.ColorScheme) error {
	svcErr := newLaunchServiceError(err, ectx)
	renderServiceError(os.Stderr, svcErr, scheme)
	return svcErr
}

// styledErrorMessage renders a plain error line in the shared error style.
func styledErrorMessage(err error) string {
	return fmt.Sprintf("\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
}

// newRunLogger returns the launch diagnostics logger: debug-level on stderr
// when verbose, silent otherwise.
func newRunLogger() *log.Logger {
	if !verbose {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "agentbridge",
	})
}
