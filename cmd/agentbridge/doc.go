// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for agentbridge.
//
// This package implements the Cobra command hierarchy for the agentbridge
// CLI: the root command, the run command that launches the assistant, and
// diagnostic subcommands for inspecting the execution environment and the
// effective configuration.
package cmd
