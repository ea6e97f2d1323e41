// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/creack/pty"

	"agentbridge/internal/launcher"
)

// watchWindowSize applies the terminal's current size to the assistant's PTY
// and keeps it in sync on SIGWINCH. The returned stop function detaches the
// signal handler.
func watchWindowSize(si *launcher.InteractiveInvocation) func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)

	go func() {
		for range ch {
			applyWindowSize(si)
		}
	}()
	applyWindowSize(si)

	return func() {
		signal.Stop(ch)
		close(ch)
	}
}

// applyWindowSize copies the controlling terminal's dimensions to the PTY.
// Resize failures are ignored; the assistant keeps its previous size.
func applyWindowSize(si *launcher.InteractiveInvocation) {
	if rows, cols, err := pty.Getsize(os.Stdin); err == nil {
		si.Resize(cols, rows)
	}
}
