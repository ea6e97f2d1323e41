// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"agentbridge/internal/session"
	"agentbridge/pkg/types"
)

// ErrInteractiveUnsupported is returned by StartInteractive on platforms
// without PTY support.
var ErrInteractiveUnsupported = errors.New("interactive mode not supported on this platform")

// InteractiveInvocation is the handle to an assistant process attached to a
// pseudo-terminal. The TTY file carries both directions of the terminal
// stream; the caller owns copying to and from it and closing it.
type InteractiveInvocation struct {
	id        string
	proc      *os.Process
	tty       *os.File
	startedAt time.Time
}

// StartInteractive launches the assistant attached to a PTY so its own
// terminal UI works when the bridge is run from an editor terminal. The
// request's Stdin/Stdout/Stderr fields are ignored; the TTY replaces them.
// Classification of start failures matches Invoke.
func (l *Launcher) StartInteractive(ctx context.Context, req Request, ectx session.ExecutionContext) (*InteractiveInvocation, error) {
	if ok, errs := req.Binary.IsValid(); !ok {
		return nil, fmt.Errorf("invoke assistant: %w", errs[0])
	}

	req.Stdin, req.Stdout, req.Stderr = nil, nil, nil
	cmd := l.buildCmd(ctx, req)

	id := uuid.NewString()
	l.logger.Debug("starting assistant on pty",
		"invocation", id,
		"binary", req.Binary,
		"workdir", req.WorkDir,
		"context", ectx.String(),
	)

	tty, err := startPty(cmd)
	if err != nil {
		if errors.Is(err, ErrInteractiveUnsupported) {
			return nil, err
		}
		return nil, classifyStartFailure(err, string(req.Binary), ectx)
	}

	return &InteractiveInvocation{
		id:        id,
		proc:      cmd.Process,
		tty:       tty,
		startedAt: time.Now(),
	}, nil
}

// ID returns the unique identifier of this invocation.
func (s *InteractiveInvocation) ID() string { return s.id }

// TTY returns the controlling terminal file for the assistant process.
func (s *InteractiveInvocation) TTY() *os.File { return s.tty }

// Resize propagates a terminal size change to the PTY.
func (s *InteractiveInvocation) Resize(width, height int) {
	setWinsize(s.tty, width, height)
}

// Wait blocks until the assistant exits and returns its exit code.
func (s *InteractiveInvocation) Wait() (types.ExitCode, error) {
	state, err := s.proc.Wait()
	if err != nil {
		return types.ExitCode(1), fmt.Errorf("waiting for assistant: %w", err)
	}
	return types.ExitCode(state.ExitCode()), nil
}

// Close releases the PTY. Call after the assistant has exited.
func (s *InteractiveInvocation) Close() error {
	return s.tty.Close()
}
