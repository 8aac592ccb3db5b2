/*
 * config_test.go, part of mdconf.
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

package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "groconf.yaml")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := NewDefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	t.Setenv("GROCONF_TEST_LOG_DIR", "/tmp/groconf")
	name := writeConfig(t, `
log:
  level: debug
  file: ${GROCONF_TEST_LOG_DIR}/groconf.log
workers: 8
profile:
  bins: 20
  axis: " X "
`)
	cfg := NewDefaultConfig()
	if err := Load(name, cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != slog.LevelDebug || cfg.Log.File != "/tmp/groconf/groconf.log" {
		t.Errorf("log config = %+v", cfg.Log)
	}
	if cfg.Workers != 8 || cfg.CompressionLevel != 3 {
		t.Errorf("workers = %d, compression = %d", cfg.Workers, cfg.CompressionLevel)
	}
	if cfg.Profile.Bins != 20 || cfg.Profile.Axis != "x" {
		t.Errorf("profile = %+v", cfg.Profile)
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, content := range []string{
		"workers: 0\n",
		"profile:\n  axis: w\n",
		"compression_level: 30\n",
		"workers: [\n",
	} {
		cfg := NewDefaultConfig()
		if err := Load(writeConfig(t, content), cfg); err == nil {
			t.Errorf("config %q should fail", content)
		}
	}
}

func TestLoadWithDefaultsMissingFile(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"), "", cfg); err != nil {
		t.Fatalf("missing file should keep the defaults: %v", err)
	}
	if cfg.Workers != NewDefaultConfig().Workers {
		t.Errorf("workers = %d", cfg.Workers)
	}
	def := writeConfig(t, "workers: 2\n")
	if err := LoadWithDefaults("", def, cfg); err != nil || cfg.Workers != 2 {
		t.Errorf("default file should be loaded: %v, workers = %d", err, cfg.Workers)
	}
}

func TestResolveEnvOverride(t *testing.T) {
	name := writeConfig(t, "workers: 8\nprofile:\n  bins: 20\n")
	t.Setenv("GROCONF_WORKERS", "2")
	t.Setenv("GROCONF_PROFILE_AXIS", "y")
	t.Setenv("GROCONF_LOG_LEVEL", "warn")
	cfg, err := Resolve(name)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != 2 || cfg.Profile.Bins != 20 || cfg.Profile.Axis != "y" || cfg.Log.Level != slog.LevelWarn {
		t.Errorf("config = %+v", cfg)
	}
	t.Setenv("GROCONF_WORKERS", "many")
	if _, err := Resolve(name); err == nil {
		t.Error("bad environment value should fail")
	}
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("configuration read", "atoms", 7)
	if !strings.Contains(stderr.String(), "atoms=7") || !strings.Contains(stderr.String(), "app=groconf") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if !strings.Contains(file.String(), `"atoms":7`) || !strings.Contains(file.String(), `"app":"groconf"`) || strings.Contains(file.String(), "hidden") {
		t.Errorf("file = %q", file.String())
	}
}

func TestSetupLoggerFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "groconf.log")
	logger, cleanup := SetupLogger(name, slog.LevelInfo)
	logger.Info("hello")
	if err := cleanup(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil || !strings.Contains(string(data), `"msg":"hello"`) || !strings.Contains(string(data), `"app":"groconf"`) {
		t.Errorf("log file = %q, %v", data, err)
	}
}
