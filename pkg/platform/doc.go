// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform naming constants used wherever
// agentbridge switches behavior on runtime.GOOS.
package platform
