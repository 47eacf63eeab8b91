// SPDX-License-Identifier: MPL-2.0

package main

import cmd "caisson/cmd/caisson"

func main() {
	cmd.Execute()
}
