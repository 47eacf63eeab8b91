// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"caisson/internal/banner"
	"caisson/internal/bundle"
	"caisson/internal/installer"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the engine and bundled image state",
	Long: `Reports which container engine is in use, the bundled image
expectation, and whether the store currently matches it. Read-only: the
image store is never mutated.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	res := bundle.OpenResources(cfg.ResourcesDir)
	cmd.Println(banner.Render(res.Version()))

	engine, err := newEngine()
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	version, err := engine.Version(cmd.Context())
	if err != nil {
		version = "unknown"
	}
	cmd.Printf("engine:     %s %s\n", engine.Name(), version)

	inst := installer.New(engine, res)
	class, expected, err := inst.Verify(cmd.Context())
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	cmd.Printf("tag:        %s\n", expected.Tag)
	cmd.Printf("expected:   %s\n", expected.Digest)

	switch class {
	case installer.Matching:
		cmd.Println("state:      " + SuccessStyle.Render("installed"))
	case installer.Missing:
		cmd.Println("state:      " + WarningStyle.Render("not installed"))
	case installer.Stale:
		cmd.Println("state:      " + WarningStyle.Render("stale (run 'caisson ensure')"))
	}
	return nil
}
