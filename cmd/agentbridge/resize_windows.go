// SPDX-License-Identifier: MPL-2.0

//go:build windows

package cmd

import "agentbridge/internal/launcher"

// watchWindowSize is a no-op on Windows: StartInteractive already reports
// ErrInteractiveUnsupported before a PTY exists.
func watchWindowSize(_ *launcher.InteractiveInvocation) func() {
	return func() {}
}
