// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the user guide",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return err
		}

		out, err := renderer.Render(guideMarkdown)
		if err != nil {
			return err
		}

		cmd.Print(out)
		return nil
	},
}
