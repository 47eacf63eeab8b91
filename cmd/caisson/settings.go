// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"caisson/internal/config"
	"caisson/internal/ocrlang"
	"caisson/internal/settings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show persisted user preferences",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a persisted preference",
	Long: `Changes one preference and writes the settings file. Keys:

  ocr            enable text recognition on converted documents (true/false)
  ocr_language   OCR language display name (see 'caisson languages')
  update_checks  enable the bundled-image freshness check (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

// loadSettings reads the settings file from the platform config dir.
func loadSettings() (*settings.Settings, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return nil, err
	}
	return settings.Load(dir)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	cmd.Printf("ocr:            %t\n", s.OCR)
	cmd.Printf("ocr_language:   %s\n", s.OCRLanguage)
	cmd.Printf("update_checks:  %t\n", s.UpdateChecks)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	key, value := args[0], args[1]
	switch key {
	case "ocr":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for ocr: %w", value, err)
		}
		s.OCR = b

	case "ocr_language":
		if _, ok := ocrlang.Code(value); !ok {
			return fmt.Errorf("unknown OCR language %q (see 'caisson languages')", value)
		}
		s.OCRLanguage = value

	case "update_checks":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for update_checks: %w", value, err)
		}
		s.UpdateChecks = b

	default:
		return fmt.Errorf("unknown settings key %q", key)
	}

	if err := s.Save(); err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}
