// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBinaryName is the sentinel error wrapped by InvalidBinaryNameError.
var ErrInvalidBinaryName = errors.New("invalid binary name")

type (
	// BinaryName represents the bare name of an executable as looked up on
	// PATH (e.g., "claude"). A valid name must be non-empty, not
	// whitespace-only, and must not contain path separators; a caller that
	// already holds a full path should use FilesystemPath instead.
	BinaryName string

	// InvalidBinaryNameError is returned when a BinaryName value is empty,
	// whitespace-only, or contains a path separator.
	InvalidBinaryNameError struct {
		Value BinaryName
	}
)

// String returns the string representation of the BinaryName.
func (n BinaryName) String() string { return string(n) }

// IsValid returns whether the BinaryName is valid.
func (n BinaryName) IsValid() (bool, []error) {
	trimmed := strings.TrimSpace(string(n))
	if trimmed == "" || strings.ContainsAny(trimmed, `/\`) {
		return false, []error{&InvalidBinaryNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidBinaryNameError.
func (e *InvalidBinaryNameError) Error() string {
	return fmt.Sprintf("invalid binary name %q: must be non-empty and contain no path separators", e.Value)
}

// Unwrap returns ErrInvalidBinaryName for errors.Is() compatibility.
func (e *InvalidBinaryNameError) Unwrap() error { return ErrInvalidBinaryName }
