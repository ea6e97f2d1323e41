// SPDX-License-Identifier: MPL-2.0

package pathmap

import (
	"strings"

	"agentbridge/internal/session"
	"agentbridge/pkg/types"
)

// wslMountRoot is the mount-point convention WSL uses for Windows drives.
const wslMountRoot = "/mnt/"

type (
	// NormalizedPath is a path string guaranteed valid for the shell that
	// will execute the assistant in the current execution context. It uses
	// the separator and root convention of the target context and carries no
	// further invariants.
	NormalizedPath string

	// TranslationConfig is the per-call snapshot of the user configuration
	// consumed by Normalize. Callers re-read it from the configuration layer
	// on every call; it is never cached here, since the user may toggle the
	// flag between invocations.
	TranslationConfig struct {
		// WSLEnabled enables rewriting Windows drive-letter paths to the
		// /mnt/<drive> convention for sessions that execute under WSL.
		WSLEnabled bool
	}
)

// String returns the string representation of the NormalizedPath.
func (p NormalizedPath) String() string { return string(p) }

// Normalize produces the path representation valid for the context where the
// assistant will actually execute, in priority order:
//
//  1. Remote sessions return the path unchanged. The remote workspace process
//     already reports paths in its own native POSIX form; a local-side
//     rewrite would corrupt an already-correct path. This deliberately
//     overrides the WSL rule, including for remote hosts that are themselves
//     WSL environments.
//  2. Otherwise, when WSL translation is enabled and the path starts with a
//     drive-letter prefix ("C:"), the prefix is rewritten to the WSL mount
//     convention: "/mnt/" plus the lowercased drive letter, with all
//     backslashes replaced by forward slashes. Only the drive segment is
//     lowercased; the remainder keeps its case.
//  3. Everything else passes through unchanged.
//
// Normalize is total: unmatched inputs fall through to identity, and mixed
// separators outside the WSL branch are left as-is. This is deliberately not
// a general path-canonicalization utility.
func Normalize(p types.FilesystemPath, ectx session.ExecutionContext, cfg TranslationConfig) NormalizedPath {
	if ectx.IsRemote() {
		return NormalizedPath(p)
	}

	if cfg.WSLEnabled {
		if drive, rest, ok := splitDrivePrefix(string(p)); ok {
			return NormalizedPath(wslMountRoot + strings.ToLower(drive) + strings.ReplaceAll(rest, `\`, "/"))
		}
	}

	return NormalizedPath(p)
}

// splitDrivePrefix splits a "X:..." path into its drive letter and remainder.
// Only a single ASCII letter followed by a colon counts as a drive prefix.
func splitDrivePrefix(p string) (drive, rest string, ok bool) {
	if len(p) < 2 || p[1] != ':' {
		return "", "", false
	}
	c := p[0]
	if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
		return "", "", false
	}
	return p[:1], p[2:], true
}
