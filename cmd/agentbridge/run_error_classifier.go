// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"agentbridge/internal/issue"
	"agentbridge/internal/launcher"
	"agentbridge/internal/session"
)

// classifyRunError maps launch failures to issue catalog IDs and returns a
// styled message for CLI rendering. Not-found failures pick the local or
// remote help text based on the classified execution context.
func classifyRunError(err error, ectx session.ExecutionContext, verbose bool) (issueID issue.Id, styledMsg string) {
	issueID = issue.LaunchFailedId

	var launchErr *launcher.LaunchError
	switch {
	case errors.As(err, &launchErr) && launchErr.Kind == launcher.FailureBinaryNotFound:
		if ectx.IsRemote() {
			issueID = issue.AssistantNotFoundRemoteId
		} else {
			issueID = issue.AssistantNotFoundId
		}
	case errors.Is(err, launcher.ErrInteractiveUnsupported):
		issueID = issue.InteractiveUnsupportedId
	default:
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && pathErr.Op == "chdir" {
			issueID = issue.WorkdirInvalidId
		}
	}

	return issueID, fmt.Sprintf("\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
}
