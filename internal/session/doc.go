// SPDX-License-Identifier: MPL-2.0

// Package session classifies where an editor session actually executes child
// processes: locally or in a remote workspace (SSH, container, WSL), and on
// which platform family. The classification is computed once per session from
// host-provided metadata and passed explicitly into every downstream call;
// nothing in this package reads ambient state after DetectHostMeta.
package session
