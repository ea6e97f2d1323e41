// SPDX-License-Identifier: MPL-2.0

package launcher

import "strings"

// bridgeEnvPrefix marks environment variables internal to agentbridge.
const bridgeEnvPrefix = "AGENTBRIDGE_"

// EnvToSlice converts a map of environment variables to a slice.
func EnvToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	return result
}

// FilterBridgeEnvVars removes agentbridge-internal variables from the given
// environment slice, so session plumbing like the remote authority marker
// does not leak into the assistant process.
func FilterBridgeEnvVars(environ []string) []string {
	result := make([]string, 0, len(environ))
	for _, e := range environ {
		name, _, found := strings.Cut(e, "=")
		if found && strings.HasPrefix(name, bridgeEnvPrefix) {
			continue
		}
		result = append(result, e)
	}
	return result
}
