// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides helpers for working with CUE configuration input:
// size guarding and user-facing error formatting with JSON-path prefixes.
package cueutil
