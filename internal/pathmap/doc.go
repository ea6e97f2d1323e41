// SPDX-License-Identifier: MPL-2.0

// Package pathmap translates filesystem paths between the representation a
// caller holds and the representation valid where the assistant executes.
// The only rewrite it performs is the Windows drive-letter to WSL mount-point
// translation for local sessions; remote sessions always pass through.
package pathmap
