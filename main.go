// SPDX-License-Identifier: MPL-2.0

package main

import cmd "agentbridge/cmd/agentbridge"

func main() {
	cmd.Execute()
}
