// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"caisson/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the configuration loaded during initialization and consumed by
	// the subcommands. Constructed once; never mutated afterwards.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "caisson",
		Short: "Manages the bundled sandbox container image",
		Long: TitleStyle.Render("caisson") + SubtitleStyle.Render(" - bundled container image installer") + `

caisson keeps the container image shipped with the host application in
sync with the local container engine (Podman/Docker): it verifies the
installed image against the bundled expectation, streams the compressed
archive into the engine when the image is absent or outdated, and evicts
stale copies so the application tag is never ambiguous.

` + SubtitleStyle.Render("Examples:") + `
  caisson ensure            Install the bundled image if needed
  caisson status            Show engine and image state
  caisson languages         List supported OCR languages`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/caisson/config.toml)")

	rootCmd.AddCommand(ensureCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(docsCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads the configuration and wires up logging.
func initRootConfig() {
	loaded, err := config.LoadFrom(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
	} else {
		cfg = loaded
	}

	if cfg.Verbose {
		verbose = true
	}

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	slog.SetDefault(slog.New(handler))
}
