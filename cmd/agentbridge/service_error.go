// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"agentbridge/internal/config"
	"agentbridge/internal/issue"
	"agentbridge/internal/session"
)

// ServiceError is the CLI-facing form of a failed launch or config load: the
// underlying error plus the issue catalog entry chosen for it and an already
// styled one-line message. The catalog entry carries the longer help text
// (install pointers, remote-session guidance) rendered on stderr before the
// error itself propagates out through fang.
// Always create via newServiceError to enforce the Err-must-be-non-nil invariant.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
	// StyledMessage is the optional pre-rendered styled error text.
	StyledMessage string
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
// All construction sites must use this instead of struct literals.
func newServiceError(err error, issueID issue.Id, styledMessage string) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{
		Err:           err,
		IssueID:       issueID,
		StyledMessage: styledMessage,
	}
}

// newLaunchServiceError builds the ServiceError for a failed assistant
// launch. The issue id is picked from the launch error taxonomy and the
// classified execution context, so a missing binary in a remote session gets
// the install-on-the-remote-machine help text instead of the local one.
func newLaunchServiceError(err error, ectx session.ExecutionContext) *ServiceError {
	issueID, styledMsg := classifyRunError(err, ectx, verbose)
	return newServiceError(err, issueID, styledMsg)
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// renderServiceError renders a ServiceError in the CLI layer: the styled
// message first, then the issue help text in the glamour style selected by
// the user's color scheme.
func renderServiceError(stderr io.Writer, svcErr *ServiceError, scheme config.ColorScheme) {
	if svcErr == nil {
		return
	}

	if svcErr.StyledMessage != "" {
		fmt.Fprint(stderr, svcErr.StyledMessage)
	}

	if svcErr.IssueID == 0 {
		return
	}

	if catalogEntry := issue.Get(svcErr.IssueID); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render(glamourStyle(scheme))
		if renderErr != nil {
			slog.Warn("failed to render issue catalog entry", "issueID", svcErr.IssueID, "error", renderErr)
		} else {
			fmt.Fprint(stderr, rendered)
		}
	}
}

// glamourStyle maps the configured color scheme to a glamour style name.
// ColorSchemeAuto defers to glamour's terminal background detection.
func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeLight:
		return "light"
	case config.ColorSchemeDark:
		return "dark"
	default:
		return "auto"
	}
}
