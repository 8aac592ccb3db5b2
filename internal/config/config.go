/*
 * config.go, part of mdconf.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package config loads the configuration of the groconf tool, from a YAML file
// and from GROCONF_ environment variables, and sets up its logging.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of the environment variables that override the configuration.
const EnvPrefix = "GROCONF_"

// Validator is an interface for configuration validation.
type Validator interface {
	Validate() error
}

// Config represents the application configuration.
type Config struct {
	Log              LogConfig     `yaml:"log" envPrefix:"LOG_"`
	Workers          int           `yaml:"workers" env:"WORKERS"`
	CompressionLevel int           `yaml:"compression_level" env:"COMPRESSION_LEVEL"`
	Profile          ProfileConfig `yaml:"profile" envPrefix:"PROFILE_"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Profile.Validate(); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Workers, validation.Required, validation.Min(1), validation.Max(1024)),
		validation.Field(&c.CompressionLevel, validation.Min(-2), validation.Max(22)),
	)
}

// LogConfig holds logging configuration. If File is empty, logs only go to stderr.
type LogConfig struct {
	Level slog.Level `yaml:"level" env:"LEVEL"`
	File  string     `yaml:"file" env:"FILE"`
}

// ProfileConfig holds the defaults for density profiles.
type ProfileConfig struct {
	Bins int    `yaml:"bins" env:"BINS"`
	Axis string `yaml:"axis" env:"AXIS"`
}

// Validate validates the profile configuration.
func (c *ProfileConfig) Validate() error {
	c.Axis = strings.ToLower(strings.TrimSpace(c.Axis))
	return validation.ValidateStruct(c,
		validation.Field(&c.Bins, validation.Required, validation.Min(1)),
		validation.Field(&c.Axis, validation.Required, validation.In("x", "y", "z")),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log:              LogConfig{Level: slog.LevelInfo},
		Workers:          4,
		CompressionLevel: 3,
		Profile: ProfileConfig{
			Bins: 50,
			Axis: "z",
		},
	}
}

// Load loads configuration from a YAML file with environment variable expansion.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	expandedData := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expandedData), target); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if validator, ok := any(target).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}

	return nil
}

// LoadWithDefaults loads configuration with fallback to a default file. If neither
// file exists, target is left as it is.
func LoadWithDefaults[T any](filename, defaultFile string, target *T) error {
	if filename != "" {
		if _, err := os.Stat(filename); !errors.Is(err, os.ErrNotExist) {
			return Load(filename, target)
		}
	}
	if defaultFile != "" {
		if _, err := os.Stat(defaultFile); !errors.Is(err, os.ErrNotExist) {
			return Load(defaultFile, target)
		}
	}
	return nil
}

// ParseEnv overrides the fields of target with the GROCONF_ environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Resolve returns the configuration built from the defaults, the file filename, if
// it exists, and the environment, in that order of increasing priority.
func Resolve(filename string) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := LoadWithDefaults(filename, "", cfg); err != nil {
		return nil, err
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
