// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the courtgate application configuration. A missing
// config file yields defaults; a malformed one is an error surfaced at
// startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Default settings applied when flags are not set.
	Defaults struct {
		Format  string `yaml:"format"`
		Mode    string `yaml:"mode"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// PatternTable optionally points at a YAML rule file overriding the
	// built-in detection table.
	PatternTable string `yaml:"pattern_table"`

	// Court holds the default jurisdiction styling for rewrites.
	Court struct {
		Style      string `yaml:"style"`
		FilingType string `yaml:"filing_type"`
	} `yaml:"court"`
}

// LoadConfig loads configuration from the specified file path. An empty path
// returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	config.Defaults.Format = "text"
	config.Defaults.Mode = "public"

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}
	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations.
// Returns an empty string when none exists.
func FindConfigFile() string {
	candidates := []string{
		"courtgate.yaml",
		"courtgate.yml",
		".courtgate.yaml",
	}
	for _, c := range candidates {
		if fileExists(c) {
			return c
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		standard := filepath.Join(home, ".courtgate", "config.yaml")
		if fileExists(standard) {
			return standard
		}
	}
	return ""
}

// LoadOrDefault resolves and loads the configuration, falling back to
// defaults when the file is missing or unreadable.
func LoadOrDefault(configPath string) *Config {
	if configPath == "" {
		configPath = FindConfigFile()
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Callers should not crash on a missing/bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
