// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Configuration loading and validation

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// DefaultFileName is the config file looked up when no --config flag is given.
	DefaultFileName = "config.ini"

	keyRepository = "core.repository"
	keyWorkspace  = "core.workspace"
)

// Config holds the two base directories every operation resolves against.
// It is read once at startup and passed down unchanged.
type Config struct {
	Path       string // config file actually used
	Repository string // base directory for project directories
	Workspace  string // base directory for workspace descriptor files
}

// Load reads the INI configuration file at path. An empty path triggers
// discovery: config.ini in the current directory, then next to the
// executable.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("ini")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if exe, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(exe))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := &Config{
		Path:       v.ConfigFileUsed(),
		Repository: v.GetString(keyRepository),
		Workspace:  v.GetString(keyWorkspace),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that both required keys were present and non-empty.
func (c *Config) Validate() error {
	if c.Repository == "" {
		return fmt.Errorf("missing required key %q in %s", keyRepository, c.Path)
	}
	if c.Workspace == "" {
		return fmt.Errorf("missing required key %q in %s", keyWorkspace, c.Path)
	}
	return nil
}

// ProjectDir returns the directory a project of the given name lives in.
func (c *Config) ProjectDir(name string) string {
	return filepath.Join(c.Repository, name)
}
