// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"agentbridge/internal/pathmap"
	"agentbridge/internal/session"
	"agentbridge/pkg/types"
)

type (
	// Launcher starts the external assistant binary in the execution context
	// the host editor placed this process in. It adapts messaging and path
	// semantics around process creation; it never re-implements remoting.
	// A Launcher is stateless between calls and safe for concurrent use.
	Launcher struct {
		logger   *log.Logger
		lookPath func(string) (string, error)
	}

	// Option configures a Launcher.
	Option func(*Launcher)

	// Request describes a single launch attempt. Each invocation is a
	// stateless request/response pair; a failed outcome is terminal for the
	// call and must be explicitly re-triggered by the caller.
	Request struct {
		// Binary is the executable to launch: a resolved absolute path from
		// Resolve, or a bare name to be looked up by the OS at start time.
		Binary types.FilesystemPath
		// Args are passed to the binary verbatim.
		Args []string
		// WorkDir is the child's working directory, already normalized for
		// the active execution context. Empty inherits the bridge's cwd.
		WorkDir pathmap.NormalizedPath
		// ExtraEnv is merged over the inherited environment.
		ExtraEnv map[string]string
		// Stdin, Stdout, Stderr attach the child's standard streams. Any nil
		// output stream is exposed as a pipe on the returned Invocation
		// instead, for the caller to consume.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// Invocation is the handle to a successfully started assistant process.
	// The handle is an independent, caller-managed resource: the caller
	// streams its output, decides about cancellation, and awaits completion.
	// Concurrent invocations never share state.
	Invocation struct {
		id        string
		cmd       *exec.Cmd
		stdout    io.ReadCloser
		stderr    io.ReadCloser
		startedAt time.Time
	}
)

// New creates a Launcher. Without options it resolves binaries through the
// system PATH and logs nowhere.
func New(opts ...Option) *Launcher {
	l := &Launcher{
		logger:   log.New(io.Discard),
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithLogger sets the logger used for launch diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// WithLookPath overrides PATH lookup. Intended for tests.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(l *Launcher) {
		l.lookPath = fn
	}
}

// Invoke launches the assistant as a child process with the request's
// working directory, suspending only until the process has either started or
// failed to start. On a start failure it returns a *LaunchError classified
// per the taxonomy; it never retries and defines no timeout. Cancellation of
// a running invocation is the caller's responsibility via the returned
// handle (or the passed context, which kills the child when canceled).
func (l *Launcher) Invoke(ctx context.Context, req Request, ectx session.ExecutionContext) (*Invocation, error) {
	if ok, errs := req.Binary.IsValid(); !ok {
		return nil, fmt.Errorf("invoke assistant: %w", errs[0])
	}

	inv := &Invocation{id: uuid.NewString()}
	cmd := l.buildCmd(ctx, req)

	if req.Stdout != nil {
		cmd.Stdout = req.Stdout
	} else {
		pipe, err := cmd.StdoutPipe()
		if err != nil {
			return nil, fmt.Errorf("invoke assistant: attach stdout pipe: %w", err)
		}
		inv.stdout = pipe
	}

	if req.Stderr != nil {
		cmd.Stderr = req.Stderr
	} else {
		pipe, err := cmd.StderrPipe()
		if err != nil {
			// Release the stdout pipe created above; the process never starts.
			if inv.stdout != nil {
				_ = inv.stdout.Close()
			}
			return nil, fmt.Errorf("invoke assistant: attach stderr pipe: %w", err)
		}
		inv.stderr = pipe
	}

	l.logger.Debug("starting assistant",
		"invocation", inv.id,
		"binary", req.Binary,
		"workdir", req.WorkDir,
		"context", ectx.String(),
	)

	if err := cmd.Start(); err != nil {
		launchErr := classifyStartFailure(err, string(req.Binary), ectx)
		l.logger.Debug("assistant start failed",
			"invocation", inv.id,
			"kind", launchErr.Kind.String(),
			"cause", err,
		)
		return nil, launchErr
	}

	inv.cmd = cmd
	inv.startedAt = time.Now()
	l.logger.Debug("assistant started", "invocation", inv.id, "pid", cmd.Process.Pid)

	return inv, nil
}

// buildCmd assembles the exec.Cmd shared by pipe and PTY launches.
func (l *Launcher) buildCmd(ctx context.Context, req Request) *exec.Cmd {
	cmd := exec.CommandContext(ctx, string(req.Binary), req.Args...)

	if req.WorkDir != "" {
		cmd.Dir = req.WorkDir.String()
	}

	cmd.Env = append(FilterBridgeEnvVars(os.Environ()), EnvToSlice(req.ExtraEnv)...)

	if req.Stdin != nil {
		cmd.Stdin = req.Stdin
	}

	return cmd
}

// ID returns the unique identifier of this invocation, for log correlation.
func (inv *Invocation) ID() string { return inv.id }

// PID returns the operating system process id of the child.
func (inv *Invocation) PID() int { return inv.cmd.Process.Pid }

// StartedAt returns the time the child process started.
func (inv *Invocation) StartedAt() time.Time { return inv.startedAt }

// Stdout returns the child's stdout pipe, or nil when the request supplied
// its own writer. The caller owns draining it.
func (inv *Invocation) Stdout() io.ReadCloser { return inv.stdout }

// Stderr returns the child's stderr pipe, or nil when the request supplied
// its own writer.
func (inv *Invocation) Stderr() io.ReadCloser { return inv.stderr }

// Wait blocks until the child exits and returns its exit code. A non-zero
// child exit is not an error here: the code is the result. The returned
// error is reserved for failures of the wait itself.
func (inv *Invocation) Wait() (types.ExitCode, error) {
	if err := inv.cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return types.ExitCode(exitErr.ExitCode()), nil
		}
		return types.ExitCode(1), fmt.Errorf("waiting for assistant: %w", err)
	}
	return types.ExitCode(0), nil
}

// Signal delivers a signal to the child process.
func (inv *Invocation) Signal(sig os.Signal) error {
	return inv.cmd.Process.Signal(sig)
}

// Terminate kills the child process. The caller should still Wait to reap it.
func (inv *Invocation) Terminate() error {
	return inv.cmd.Process.Kill()
}
