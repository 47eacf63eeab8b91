// SPDX-License-Identifier: MPL-2.0

// Package settings persists user-adjustable preferences of the host
// application. Settings are loaded once at startup into an explicit struct
// that callers pass around; there is no package-level state.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the settings file name inside the application config dir.
const FileName = "settings.toml"

// Settings are the persisted user preferences. Unknown fields in the file
// are ignored so older binaries tolerate newer settings files.
type Settings struct {
	// OCR enables text recognition on converted documents.
	OCR bool `toml:"ocr"`
	// OCRLanguage is the display name of the OCR language (see ocrlang).
	OCRLanguage string `toml:"ocr_language"`
	// UpdateChecks enables the periodic bundled-image freshness check.
	UpdateChecks bool `toml:"update_checks"`

	path string
}

// Default returns the settings used when no file exists yet.
func Default(path string) *Settings {
	return &Settings{
		OCR:          true,
		OCRLanguage:  "English",
		UpdateChecks: true,
		path:         path,
	}
}

// Load reads settings from dir/settings.toml, falling back to defaults when
// the file does not exist. A malformed file is an error; silently resetting
// user preferences would be worse than failing.
func Load(dir string) (*Settings, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	s := Default(path)
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings back to their file, creating the directory if
// needed.
func (s *Settings) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}
	return nil
}
