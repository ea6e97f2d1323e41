// SPDX-License-Identifier: MPL-2.0

// Package types defines the typed primitives shared across agentbridge
// packages: FilesystemPath, BinaryName, and ExitCode. Each type carries an
// IsValid method plus a sentinel error and a typed error with Unwrap, so
// callers can validate at boundaries and use errors.Is for detection.
package types
