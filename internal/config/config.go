// SPDX-License-Identifier: MPL-2.0

// Package config loads the caisson configuration. The result is an explicit
// Config struct constructed once at startup and passed into the components
// that need it; nothing in this package caches loaded state.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"caisson/internal/platform"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for config and settings paths.
	AppName = "caisson"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// Config is the application configuration.
type Config struct {
	// Engine is the preferred container engine ("podman", "docker", or ""
	// for the platform default).
	Engine string `mapstructure:"engine"`
	// ResourcesDir overrides the bundled-resources directory (dev installs,
	// tests). Empty means the platform default.
	ResourcesDir string `mapstructure:"resources_dir"`
	// ChunkSize is the archive streaming chunk size in bytes.
	ChunkSize int `mapstructure:"chunk_size"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Engine:       "",
		ResourcesDir: "",
		ChunkSize:    10240,
		Verbose:      false,
	}
}

// ConfigDir returns the caisson configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration from the config dir and CAISSON_* environment
// variables, applying defaults for anything unset. A missing config file is
// not an error; a malformed one is.
func Load() (Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from an explicit file path, or from the
// default location when path is empty.
func LoadFrom(path string) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("engine", defaults.Engine)
	v.SetDefault("resources_dir", defaults.ResourcesDir)
	v.SetDefault("chunk_size", defaults.ChunkSize)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix("CAISSON")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return Config{}, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
