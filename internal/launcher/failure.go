// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"

	"agentbridge/internal/session"
)

const (
	// FailureBinaryNotFound indicates the assistant executable could not be
	// located or launched in the active execution context.
	FailureBinaryNotFound FailureKind = iota + 1
	// FailureInvocationFailed indicates the process could not be started for
	// any other reason (permissions, invalid working directory, ...).
	FailureInvocationFailed
)

type (
	// FailureKind identifies a member of the launch error taxonomy.
	FailureKind int

	// LaunchError is the structured, terminal outcome of a failed launch
	// attempt. Message is user-facing and already context-aware (remote
	// sessions get remote installation guidance); Cause preserves the raw
	// system error for errors.Is/As chains. A LaunchError is never retried
	// by the dispatcher; re-triggering is the caller's decision.
	LaunchError struct {
		Kind    FailureKind
		Message string
		Cause   error
	}

	// startFailure is the normalized descriptor of a raw process-start
	// failure. Wrapping the system error here first keeps platform-specific
	// error text out of the taxonomy decision: classification inspects the
	// flags, never the message.
	startFailure struct {
		notFound   bool
		permission bool
		raw        string
	}
)

// String returns the snake_case identifier of the FailureKind.
func (k FailureKind) String() string {
	switch k {
	case FailureBinaryNotFound:
		return "binary_not_found"
	case FailureInvocationFailed:
		return "invocation_failed"
	}
	return fmt.Sprintf("unknown_failure_kind_%d", int(k))
}

// Error implements the error interface.
func (e *LaunchError) Error() string { return e.Message }

// Unwrap returns the underlying system error for errors.Is/As chains.
func (e *LaunchError) Unwrap() error { return e.Cause }

// describeStartFailure wraps a raw start error in a startFailure descriptor.
// A missing executable surfaces either as exec.ErrNotFound (PATH lookup) or
// as an fs.ErrNotExist path error naming the binary itself; an fs.ErrNotExist
// naming another path (e.g. a chdir failure for the working directory) is not
// a missing binary.
func describeStartFailure(err error, binary string) startFailure {
	sf := startFailure{raw: err.Error()}

	if errors.Is(err, exec.ErrNotFound) {
		sf.notFound = true
		return sf
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		if errors.Is(pathErr.Err, fs.ErrNotExist) && pathErr.Path == binary {
			sf.notFound = true
		}
	}
	if errors.Is(err, fs.ErrPermission) {
		sf.permission = true
	}

	return sf
}

// classifyStartFailure maps a raw start error to the launch error taxonomy
// with a context-aware user-facing message.
func classifyStartFailure(err error, binary string, ectx session.ExecutionContext) *LaunchError {
	sf := describeStartFailure(err, binary)

	if sf.notFound {
		return notFoundError(binary, ectx, err)
	}

	return &LaunchError{
		Kind:    FailureInvocationFailed,
		Message: fmt.Sprintf("could not start %q: %s", binary, sf.raw),
		Cause:   err,
	}
}

// notFoundError builds the BinaryNotFound outcome. The message states where
// the binary must be installed: in a remote session that is the remote
// machine, never the local client.
func notFoundError(binary string, ectx session.ExecutionContext, cause error) *LaunchError {
	var msg string
	if ectx.IsRemote() {
		msg = fmt.Sprintf(
			"assistant binary %q was not found in the remote workspace (%s): install it on the remote machine; a copy on your local client is not used in a remote session",
			binary, ectx.RemoteKind())
	} else {
		msg = fmt.Sprintf(
			"assistant binary %q was not found: install the assistant CLI and make sure it is on your PATH",
			binary)
	}
	return &LaunchError{
		Kind:    FailureBinaryNotFound,
		Message: msg,
		Cause:   cause,
	}
}
