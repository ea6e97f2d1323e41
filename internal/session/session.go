// SPDX-License-Identifier: MPL-2.0

package session

import (
	"errors"
	"fmt"
	"os"
	gort "runtime"
	"strings"

	"agentbridge/pkg/platform"
)

const (
	// PlatformWindows indicates child processes will run under a Windows shell.
	PlatformWindows HostPlatform = "windows"
	// PlatformPOSIX indicates child processes will run under a POSIX shell.
	PlatformPOSIX HostPlatform = "posix"

	// RemoteKindSSH identifies a session whose workspace process runs over SSH.
	RemoteKindSSH RemoteKind = "ssh-remote"
	// RemoteKindContainer identifies a session attached to a container workspace.
	RemoteKindContainer RemoteKind = "attached-container"
	// RemoteKindWSL identifies a session whose workspace process runs inside WSL.
	RemoteKindWSL RemoteKind = "wsl"

	// RemoteAuthorityEnvVar is set by the host editor integration when the
	// extension host runs in a remote workspace. Its value is an opaque
	// authority string, optionally "<kind>+<detail>".
	RemoteAuthorityEnvVar = "AGENTBRIDGE_REMOTE_AUTHORITY"
)

// ErrInvalidHostPlatform is the sentinel error wrapped by InvalidHostPlatformError.
var ErrInvalidHostPlatform = errors.New("invalid host platform")

type (
	// HostPlatform is the platform family of the process that spawns child
	// commands. Only the windows/posix distinction matters to path semantics,
	// so darwin, linux and the BSDs all classify as posix.
	HostPlatform string

	// InvalidHostPlatformError is returned when a HostPlatform value is not
	// recognized. It wraps ErrInvalidHostPlatform for errors.Is() compatibility.
	InvalidHostPlatformError struct {
		Value HostPlatform
	}

	// RemoteKind is the opaque identifier of the remote backend
	// (e.g., "ssh-remote", "attached-container"). The zero value means local.
	RemoteKind string

	// HostMeta is the raw session metadata supplied by the host editor:
	// the remote authority (empty when the extension host is local) and the
	// GOOS of the process that will spawn child commands. It is a plain value
	// so tests can construct arbitrary sessions.
	HostMeta struct {
		// RemoteAuthority is the opaque remote identifier, "" when local.
		RemoteAuthority string
		// GOOS is the operating system identifier of the spawning process.
		GOOS string
	}

	// ExecutionContext describes where child processes actually run. It is
	// computed once per session by Classify and treated as immutable: fields
	// are unexported and exposed through accessors only. A session change is
	// handled by classifying again, never by mutating an existing value, so
	// concurrent reads need no synchronization.
	ExecutionContext struct {
		isRemote     bool
		remoteKind   RemoteKind
		hostPlatform HostPlatform
	}
)

// DetectHostMeta reads the host-provided session state for the current
// process. The explicit RemoteAuthorityEnvVar wins; when the host does not
// set it, conventional session markers are probed so the bridge still
// classifies correctly under plain SSH, containers, and WSL.
func DetectHostMeta() HostMeta {
	return HostMeta{
		RemoteAuthority: detectRemoteAuthority(),
		GOOS:            gort.GOOS,
	}
}

func detectRemoteAuthority() string {
	if authority := os.Getenv(RemoteAuthorityEnvVar); authority != "" {
		return authority
	}
	if os.Getenv("SSH_CONNECTION") != "" || os.Getenv("SSH_CLIENT") != "" {
		return string(RemoteKindSSH)
	}
	if os.Getenv("REMOTE_CONTAINERS") != "" || fileExists("/.dockerenv") {
		return string(RemoteKindContainer)
	}
	if os.Getenv("WSL_DISTRO_NAME") != "" {
		return string(RemoteKindWSL) + "+" + os.Getenv("WSL_DISTRO_NAME")
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Classify maps host session metadata to an ExecutionContext. It is pure and
// total: the same HostMeta always yields the same context, and an absent
// remote authority deterministically yields a local classification.
func Classify(meta HostMeta) ExecutionContext {
	ectx := ExecutionContext{
		hostPlatform: platformFor(meta.GOOS),
	}

	if meta.RemoteAuthority != "" {
		ectx.isRemote = true
		ectx.remoteKind = kindFromAuthority(meta.RemoteAuthority)
	}

	return ectx
}

// platformFor collapses a GOOS identifier to the windows/posix family.
func platformFor(goos string) HostPlatform {
	if platform.IsWindows(goos) {
		return PlatformWindows
	}
	return PlatformPOSIX
}

// kindFromAuthority extracts the backend kind from an authority string.
// Authorities follow the "<kind>+<detail>" convention; an authority without
// a detail segment is already the kind.
func kindFromAuthority(authority string) RemoteKind {
	kind, _, _ := strings.Cut(authority, "+")
	return RemoteKind(kind)
}

// IsRemote reports whether child processes run on a different machine (or
// isolated filesystem namespace) than the client UI.
func (c ExecutionContext) IsRemote() bool { return c.isRemote }

// RemoteKind returns the remote backend identifier, "" for local sessions.
func (c ExecutionContext) RemoteKind() RemoteKind { return c.remoteKind }

// HostPlatform returns the platform family of the spawning process.
func (c ExecutionContext) HostPlatform() HostPlatform { return c.hostPlatform }

// String returns a short human-readable description for diagnostics.
func (c ExecutionContext) String() string {
	if c.isRemote {
		return fmt.Sprintf("remote (%s, %s)", c.remoteKind, c.hostPlatform)
	}
	return fmt.Sprintf("local (%s)", c.hostPlatform)
}

// IsValid returns whether the HostPlatform is one of the recognized values.
func (p HostPlatform) IsValid() (bool, []error) {
	switch p {
	case PlatformWindows, PlatformPOSIX:
		return true, nil
	}
	return false, []error{&InvalidHostPlatformError{Value: p}}
}

// Error implements the error interface.
func (e *InvalidHostPlatformError) Error() string {
	return fmt.Sprintf("invalid host platform %q (must be %q or %q)", e.Value, PlatformWindows, PlatformPOSIX)
}

// Unwrap returns ErrInvalidHostPlatform for errors.Is() compatibility.
func (e *InvalidHostPlatformError) Unwrap() error { return ErrInvalidHostPlatform }
