// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/toolshed-cli/toolshed/cmd/toolshed"

func main() {
	cmd.Execute()
}
