// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error infrastructure for agentbridge:
// ActionableError with operation/resource/suggestion context, a fluent
// ErrorContext builder, and a catalog of markdown help entries rendered with
// glamour and keyed by issue Id. The CLI layer maps launch and configuration
// failures to catalog ids; the core packages only produce structured errors.
package issue
