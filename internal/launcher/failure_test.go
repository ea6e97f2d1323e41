// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"io/fs"
	"os/exec"
	"strings"
	"syscall"
	"testing"

	"agentbridge/internal/session"
	"agentbridge/pkg/platform"
)

func localSession() session.ExecutionContext {
	return session.Classify(session.HostMeta{GOOS: platform.Linux})
}

func remoteSession() session.ExecutionContext {
	return session.Classify(session.HostMeta{RemoteAuthority: "ssh-remote+devhost", GOOS: platform.Linux})
}

func TestDescribeStartFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		binary       string
		wantNotFound bool
	}{
		{
			name:         "path lookup miss",
			err:          &exec.Error{Name: "claude", Err: exec.ErrNotFound},
			binary:       "claude",
			wantNotFound: true,
		},
		{
			name:         "fork exec on missing binary path",
			err:          &fs.PathError{Op: "fork/exec", Path: "/opt/assistant/claude", Err: syscall.ENOENT},
			binary:       "/opt/assistant/claude",
			wantNotFound: true,
		},
		{
			name:         "chdir failure names the workdir, not the binary",
			err:          &fs.PathError{Op: "chdir", Path: "/no/such/dir", Err: syscall.ENOENT},
			binary:       "/usr/bin/claude",
			wantNotFound: false,
		},
		{
			name:         "permission denied",
			err:          &fs.PathError{Op: "fork/exec", Path: "/usr/bin/claude", Err: syscall.EACCES},
			binary:       "/usr/bin/claude",
			wantNotFound: false,
		},
		{
			name:         "unrelated error",
			err:          errors.New("resource temporarily unavailable"),
			binary:       "claude",
			wantNotFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sf := describeStartFailure(tt.err, tt.binary)
			if sf.notFound != tt.wantNotFound {
				t.Errorf("describeStartFailure(%v).notFound = %v, want %v", tt.err, sf.notFound, tt.wantNotFound)
			}
			if sf.raw != tt.err.Error() {
				t.Errorf("raw = %q, want the verbatim error text %q", sf.raw, tt.err.Error())
			}
		})
	}
}

func TestClassifyStartFailure_NotFoundMessages(t *testing.T) {
	t.Parallel()

	cause := &exec.Error{Name: "claude", Err: exec.ErrNotFound}

	local := classifyStartFailure(cause, "claude", localSession())
	if local.Kind != FailureBinaryNotFound {
		t.Fatalf("local kind = %v, want FailureBinaryNotFound", local.Kind)
	}
	if strings.Contains(local.Message, "remote") {
		t.Errorf("local message should not carry the remote hint: %q", local.Message)
	}

	remote := classifyStartFailure(cause, "claude", remoteSession())
	if remote.Kind != FailureBinaryNotFound {
		t.Fatalf("remote kind = %v, want FailureBinaryNotFound", remote.Kind)
	}
	if !strings.Contains(remote.Message, "remote machine") {
		t.Errorf("remote message missing remote installation hint: %q", remote.Message)
	}
	if !strings.Contains(remote.Message, "ssh-remote") {
		t.Errorf("remote message missing the remote kind: %q", remote.Message)
	}
	if !errors.Is(remote, exec.ErrNotFound) {
		t.Error("LaunchError does not unwrap to its cause")
	}
}

func TestClassifyStartFailure_OtherFailuresKeepDiagnostic(t *testing.T) {
	t.Parallel()

	cause := &fs.PathError{Op: "chdir", Path: "/no/such/dir", Err: syscall.ENOENT}
	got := classifyStartFailure(cause, "/usr/bin/claude", localSession())

	if got.Kind != FailureInvocationFailed {
		t.Fatalf("kind = %v, want FailureInvocationFailed", got.Kind)
	}
	if !strings.Contains(got.Message, cause.Error()) {
		t.Errorf("message %q does not append the underlying diagnostic %q", got.Message, cause.Error())
	}
}

func TestFailureKind_String(t *testing.T) {
	t.Parallel()

	if got := FailureBinaryNotFound.String(); got != "binary_not_found" {
		t.Errorf("FailureBinaryNotFound.String() = %q", got)
	}
	if got := FailureInvocationFailed.String(); got != "invocation_failed" {
		t.Errorf("FailureInvocationFailed.String() = %q", got)
	}
}
