// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath functions that
// accept and return types.FilesystemPath, so path operations stay typed-in
// and typed-out across package boundaries.
package fspath

import (
	"path/filepath"

	"agentbridge/pkg/types"
)

// JoinStr wraps filepath.Join, accepting a typed base path and raw string
// segments. Use this when joining a validated path with literal constants
// (e.g., "config.cue") or OS-provided file names (e.g., from os.ReadDir).
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Clean wraps filepath.Clean for FilesystemPath.
func Clean(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Clean(string(p)))
}
