// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"agentbridge/pkg/types"
)

// writeFakeBinary creates an executable file and returns its path.
func writeFakeBinary(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("writing fake binary: %v", err)
	}
	return path
}

func TestResolve_OverrideWins(t *testing.T) {
	t.Parallel()

	fake := writeFakeBinary(t, t.TempDir(), "assistant")

	l := New(WithLookPath(func(string) (string, error) {
		t.Error("lookPath should not be consulted when an override is set")
		return "", exec.ErrNotFound
	}))

	got, err := l.Resolve("assistant", types.FilesystemPath(fake), localSession())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != types.FilesystemPath(fake) {
		t.Errorf("Resolve() = %q, want %q", got, fake)
	}
}

func TestResolve_OverrideIsCleaned(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fake := writeFakeBinary(t, dir, "assistant")

	messy := types.FilesystemPath(filepath.Join(dir, ".") + string(filepath.Separator) + string(filepath.Separator) + "assistant")
	got, err := New().Resolve("assistant", messy, localSession())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != types.FilesystemPath(fake) {
		t.Errorf("Resolve() = %q, want cleaned %q", got, fake)
	}
}

func TestResolve_MissingOverrideIsNotFound(t *testing.T) {
	t.Parallel()

	l := New()
	_, err := l.Resolve("assistant", types.FilesystemPath("/no/such/assistant"), localSession())

	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("Resolve() error = %v, want *LaunchError", err)
	}
	if launchErr.Kind != FailureBinaryNotFound {
		t.Errorf("kind = %v, want FailureBinaryNotFound", launchErr.Kind)
	}
}

func TestResolve_PathLookup(t *testing.T) {
	t.Parallel()

	l := New(WithLookPath(func(name string) (string, error) {
		if name != "assistant" {
			t.Errorf("lookPath called with %q", name)
		}
		return "/usr/local/bin/assistant", nil
	}))

	got, err := l.Resolve("assistant", "", localSession())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != types.FilesystemPath("/usr/local/bin/assistant") {
		t.Errorf("Resolve() = %q", got)
	}
}

func TestResolve_MissEverywhereIsRemoteAware(t *testing.T) {
	t.Parallel()

	miss := func(string) (string, error) { return "", exec.ErrNotFound }

	_, localErr := New(WithLookPath(miss)).Resolve("agentbridge-test-no-such-binary", "", localSession())
	var launchErr *LaunchError
	if !errors.As(localErr, &launchErr) {
		t.Fatalf("local Resolve() error = %v, want *LaunchError", localErr)
	}
	if strings.Contains(launchErr.Message, "remote") {
		t.Errorf("local message should not mention the remote host: %q", launchErr.Message)
	}

	_, remoteErr := New(WithLookPath(miss)).Resolve("agentbridge-test-no-such-binary", "", remoteSession())
	if !errors.As(remoteErr, &launchErr) {
		t.Fatalf("remote Resolve() error = %v, want *LaunchError", remoteErr)
	}
	if !strings.Contains(launchErr.Message, "remote machine") {
		t.Errorf("remote message missing installation hint: %q", launchErr.Message)
	}
}

func TestResolve_InvalidBareName(t *testing.T) {
	t.Parallel()

	l := New()
	if _, err := l.Resolve("", "", localSession()); !errors.Is(err, types.ErrInvalidBinaryName) {
		t.Errorf("Resolve(\"\") error = %v, want ErrInvalidBinaryName", err)
	}
}
