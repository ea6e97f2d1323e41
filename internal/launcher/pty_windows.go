// SPDX-License-Identifier: MPL-2.0

//go:build windows

package launcher

import (
	"os"
	"os/exec"
)

// startPty is unavailable on Windows; callers fall back to pipe streaming.
func startPty(_ *exec.Cmd) (*os.File, error) {
	return nil, ErrInteractiveUnsupported
}

func setWinsize(_ *os.File, _, _ int) {}
