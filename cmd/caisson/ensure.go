// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"caisson/internal/bundle"
	"caisson/internal/container"
	"caisson/internal/installer"

	"github.com/spf13/cobra"
)

var ensureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Install the bundled container image if absent or outdated",
	Long: `Verifies the container engine's image store against the bundled
expectation and installs the bundled image when it is missing or stale.
The command is idempotent: when the expected image is already present it
performs a single identity check and exits.`,
	Args: cobra.NoArgs,
	RunE: runEnsure,
}

func runEnsure(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	res := bundle.OpenResources(cfg.ResourcesDir)
	inst := installer.New(engine, res, installer.WithChunkSize(cfg.ChunkSize))

	outcome, err := inst.EnsureInstalled(cmd.Context())
	if err != nil {
		return &ExitError{
			Code: 1,
			Err:  fmt.Errorf("could not install the required container image: %w", err),
		}
	}

	switch outcome {
	case installer.AlreadyInstalled:
		cmd.Println(SuccessStyle.Render("✓") + " container image already installed")
	case installer.Installed:
		cmd.Println(SuccessStyle.Render("✓") + " container image installed")
	}
	return nil
}

// newEngine resolves the container engine from configuration, falling back
// to platform auto-detection when no preference is configured.
func newEngine() (container.Engine, error) {
	var (
		engine container.Engine
		err    error
	)
	if cfg.Engine != "" {
		engine, err = container.NewEngine(container.EngineType(cfg.Engine))
	} else {
		engine, err = container.AutoDetectEngine()
	}
	if err != nil {
		var notAvail *container.EngineNotAvailableError
		if errors.As(err, &notAvail) {
			return nil, fmt.Errorf("%w\n\nInstall podman (Linux) or docker and make sure it is on your PATH", err)
		}
		return nil, err
	}
	return engine, nil
}
