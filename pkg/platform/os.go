// SPDX-License-Identifier: MPL-2.0

package platform

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// IsWindows reports whether goos names the Windows platform family.
// Everything else is treated as POSIX for path and permission semantics.
func IsWindows(goos string) bool {
	return goos == Windows
}
