// Copyright (C) 2025 Dyne.org foundation
// designed, written and maintained by Denis Roio <jaromil@dyne.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	apperrors "syntaxshift/internal/errors"
	"syntaxshift/internal/ops"
	"syntaxshift/internal/theme"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file looked up inside the config directory.
const ConfigurationName = "config.yaml"

// Config represents the application configuration
type Config struct {
	Prompt            string       `json:"prompt" validate:"required"`
	HistoryFile       string       `json:"history_file,omitempty"`
	AllowedExtensions []string     `json:"allowed_extensions" validate:"required,min=1,unique,dive,startswith=.,min=2"`
	HelpFile          string       `json:"help_file,omitempty"`
	Color             string       `json:"color" validate:"oneof=auto always never"`
	ClearOnError      bool         `json:"clear_on_error"`
	Theme             *theme.Theme `json:"theme" validate:"required"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	var out Config
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// DefaultConfigData returns the bytes written by Initialize.
func DefaultConfigData() []byte {
	return append([]byte(nil), defaultConfigData...)
}

// Load reads config.yaml from dir on fs, applies env overrides, and
// validates the result. A missing file yields the defaults.
func Load(fs afero.Fs, dir string) (*Config, error) {
	if filepath.Base(dir) == ConfigurationName {
		dir = filepath.Dir(dir)
	}
	config := DefaultConfig()

	path := filepath.Join(dir, ConfigurationName)
	data, err := afero.ReadFile(fs, path)
	switch {
	case err == nil:
		if err := yaml.UnmarshalStrict(data, config); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeConfig, fmt.Sprintf("failed to parse %s", path), err)
		}
	case !os.IsNotExist(err):
		return nil, apperrors.Wrap(apperrors.CodeConfig, fmt.Sprintf("failed to read %s", path), err)
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeConfig, fmt.Sprintf("invalid configuration %s", path), err)
	}
	return config, nil
}

// Env overrides (apply regardless of whether config file exists)
func (c *Config) applyEnv() {
	if val := os.Getenv("SYNTAXSHIFT_PROMPT"); val != "" {
		c.Prompt = val
	}
	if val, ok := os.LookupEnv("SYNTAXSHIFT_HISTORY_FILE"); ok {
		c.HistoryFile = val
	}
	if os.Getenv("NO_COLOR") != "" {
		c.Color = theme.ModeNever
	}
}

// Validate the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	if err := validate.Struct(c); err != nil {
		return err
	}
	if err := theme.ValidateTheme(c.Theme); err != nil {
		return fmt.Errorf("theme.%w", err)
	}
	return nil
}

// Extensions returns the allow-list used by validation.
func (c *Config) Extensions() ops.Extensions {
	return ops.NewExtensions(c.AllowedExtensions)
}

// ValidationWarning represents a non-fatal configuration issue
type ValidationWarning struct {
	Field   string
	Message string
}

// Warnings reports settings that are accepted but probably unintended.
func (c *Config) Warnings(fs afero.Fs) []ValidationWarning {
	var warnings []ValidationWarning

	if c.HistoryFile == "" {
		warnings = append(warnings, ValidationWarning{
			Field:   "history_file",
			Message: "history_file is empty, command history will not be saved",
		})
	}

	if c.HelpFile != "" {
		if ok, _ := afero.Exists(fs, c.HelpFile); !ok {
			warnings = append(warnings, ValidationWarning{
				Field:   "help_file",
				Message: fmt.Sprintf("help file %q not found, using built-in help", c.HelpFile),
			})
		}
	}

	seen := make(map[string]bool, len(c.AllowedExtensions))
	for _, ext := range c.AllowedExtensions {
		lower := strings.ToLower(ext)
		if seen[lower] {
			warnings = append(warnings, ValidationWarning{
				Field:   "allowed_extensions",
				Message: fmt.Sprintf("extension %q is listed more than once ignoring case", ext),
			})
		}
		seen[lower] = true
	}

	return warnings
}

// Initialize writes the default configuration into dir. An existing file is
// never overwritten.
func Initialize(fs afero.Fs, dir string) (string, error) {
	path := filepath.Join(dir, ConfigurationName)
	if ok, err := afero.Exists(fs, path); err != nil {
		return "", apperrors.Wrap(apperrors.CodeConfig, fmt.Sprintf("failed to check %s", path), err)
	} else if ok {
		return "", apperrors.New(apperrors.CodeConfig, fmt.Sprintf("%s already exists", path))
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.Wrap(apperrors.CodeConfig, fmt.Sprintf("failed to create %s", dir), err)
	}
	if err := afero.WriteFile(fs, path, defaultConfigData, 0o644); err != nil {
		return "", apperrors.Wrap(apperrors.CodeConfig, fmt.Sprintf("failed to write %s", path), err)
	}
	return path, nil
}
