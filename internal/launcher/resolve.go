// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"os"
	gort "runtime"

	"agentbridge/internal/session"
	"agentbridge/pkg/fspath"
	"agentbridge/pkg/platform"
	"agentbridge/pkg/types"
)

// Resolve locates the assistant executable in the active execution context.
// Resolution order: the explicit override path from configuration, then the
// PATH of this process, then a short list of conventional install
// directories. The host editor guarantees this process already runs where
// the binary must run, so in a remote session the lookup naturally inspects
// the remote filesystem.
//
// A miss returns a *LaunchError of kind FailureBinaryNotFound whose message
// is remote-aware.
func (l *Launcher) Resolve(bin types.BinaryName, override types.FilesystemPath, ectx session.ExecutionContext) (types.FilesystemPath, error) {
	if override != "" {
		override = fspath.Clean(override)
		if isExecutableFile(string(override)) {
			l.logger.Debug("assistant resolved via configured path", "path", override)
			return override, nil
		}
		l.logger.Debug("configured assistant path is not usable", "path", override)
		return "", notFoundError(string(override), ectx, nil)
	}

	if ok, errs := bin.IsValid(); !ok {
		return "", errs[0]
	}

	if found, err := l.lookPath(string(bin)); err == nil {
		l.logger.Debug("assistant resolved via PATH", "path", found)
		return types.FilesystemPath(found), nil
	}

	for _, dir := range fallbackInstallDirs() {
		candidate := fspath.JoinStr(dir, string(bin))
		if isExecutableFile(string(candidate)) {
			l.logger.Debug("assistant resolved via fallback directory", "path", candidate)
			return candidate, nil
		}
	}

	return "", notFoundError(string(bin), ectx, nil)
}

// fallbackInstallDirs lists conventional install locations checked after
// PATH, covering installers that do not edit the login PATH (npm prefix,
// per-user bin directories, Homebrew on arm64 macOS).
func fallbackInstallDirs() []types.FilesystemPath {
	if platform.IsWindows(gort.GOOS) {
		return nil
	}

	var dirs []types.FilesystemPath
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			fspath.JoinStr(types.FilesystemPath(home), ".local", "bin"),
			fspath.JoinStr(types.FilesystemPath(home), ".npm-global", "bin"),
		)
	}
	dirs = append(dirs,
		types.FilesystemPath("/usr/local/bin"),
		types.FilesystemPath("/opt/homebrew/bin"),
	)
	return dirs
}

// isExecutableFile reports whether path names an existing regular file with
// at least one execute bit set. On Windows the execute bit is meaningless,
// so existence of a regular file is enough.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if platform.IsWindows(gort.GOOS) {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
