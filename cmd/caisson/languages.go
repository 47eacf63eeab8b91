// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"caisson/internal/ocrlang"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List OCR languages supported by the bundled image",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range ocrlang.Names() {
			code, _ := ocrlang.Code(name)
			cmd.Printf("%-40s %s\n", name, code)
		}
		return nil
	},
}
