// SPDX-License-Identifier: MPL-2.0

// Package launcher resolves and starts the external assistant binary in the
// execution context the host editor placed this process in, and maps process
// start failures onto a two-member taxonomy (binary not found, invocation
// failed) with context-aware messages. Raw system errors are first wrapped in
// a normalized descriptor so classification never depends on platform error
// text. Each invocation is an independent request/response pair; the returned
// handle is the caller's to stream from, cancel, and await.
package launcher
