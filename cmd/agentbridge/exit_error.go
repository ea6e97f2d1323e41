// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"agentbridge/pkg/types"
)

// ExitError carries the assistant's own exit status out of RunE handlers.
// Execute unwraps it and calls os.Exit with the child's code, so the editor
// integration that shelled out to the bridge observes the assistant's real
// status instead of a generic failure. A non-zero assistant exit is a result,
// not a bridge error, which is why no Err is attached on that path.
type ExitError struct {
	// Code is the assistant's exit status.
	Code types.ExitCode
	// InvocationID correlates the exit with the launch diagnostics logged
	// under the same id.
	InvocationID string
	// Err is an optional underlying error for non-exit failures.
	Err error
}

// newExitError builds the ExitError for a finished assistant invocation.
func newExitError(code types.ExitCode, invocationID string) *ExitError {
	return &ExitError{Code: code, InvocationID: invocationID}
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.InvocationID != "" {
		return fmt.Sprintf("assistant exited with status %s (invocation %s)", e.Code, e.InvocationID)
	}
	return fmt.Sprintf("assistant exited with status %s", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
