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
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "syntaxshift/internal/errors"
	"syntaxshift/internal/ops"
	"syntaxshift/internal/theme"
)

func writeTempConfig(t *testing.T, content string) (afero.Fs, string) {
	t.Helper()
	fs := afero.NewMemMapFs()
	dir := "/etc/syntaxshift"
	if err := afero.WriteFile(fs, filepath.Join(dir, ConfigurationName), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return fs, dir
}

func clearEnv(t *testing.T) {
	t.Setenv("SYNTAXSHIFT_PROMPT", "")
	t.Setenv("NO_COLOR", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "syntaxshift> ", cfg.Prompt)
	assert.Equal(t, ".syntaxshift_history", cfg.HistoryFile)
	assert.Equal(t, ops.DefaultExtensions, cfg.AllowedExtensions)
	assert.Equal(t, theme.ModeAuto, cfg.Color)
	assert.False(t, cfg.ClearOnError)
	assert.Equal(t, theme.DefaultTheme(), cfg.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigMissingFileReturnsDefault(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(afero.NewMemMapFs(), "/nowhere")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	clearEnv(t)
	fs, dir := writeTempConfig(t, "prompt: \"$ \"\nallowed_extensions: [.md, .txt]\ntheme:\n  error: yellow\n")

	cfg, err := Load(fs, dir)
	require.NoError(t, err)
	assert.Equal(t, "$ ", cfg.Prompt)
	assert.Equal(t, []string{".md", ".txt"}, cfg.AllowedExtensions)
	assert.Equal(t, "yellow", cfg.Theme.Error)
	assert.Equal(t, "magenta", cfg.Theme.Output, "unset theme fields keep defaults")
	assert.Equal(t, ".syntaxshift_history", cfg.HistoryFile)
	assert.True(t, cfg.Extensions().Allowed("README.MD"))
}

func TestLoadAcceptsConfigFilePath(t *testing.T) {
	clearEnv(t)
	fs, dir := writeTempConfig(t, "clear_on_error: true\n")
	cfg, err := Load(fs, filepath.Join(dir, ConfigurationName))
	require.NoError(t, err)
	assert.True(t, cfg.ClearOnError)
}

func TestEnvOverridesFile(t *testing.T) {
	fs, dir := writeTempConfig(t, "prompt: \"file> \"\nhistory_file: file_history\ncolor: always\n")
	t.Setenv("SYNTAXSHIFT_PROMPT", "env> ")
	t.Setenv("SYNTAXSHIFT_HISTORY_FILE", "")
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load(fs, dir)
	require.NoError(t, err)
	assert.Equal(t, "env> ", cfg.Prompt)
	assert.Equal(t, "", cfg.HistoryFile)
	assert.Equal(t, theme.ModeNever, cfg.Color)
}

func TestConfigValidationRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "unknown_field: 123\n"},
		{"invalid type", "clear_on_error: maybe\n"},
		{"extension without dot", "allowed_extensions: [txt]\n"},
		{"bare dot", "allowed_extensions: [\".\"]\n"},
		{"empty extension list", "allowed_extensions: []\n"},
		{"duplicate extension", "allowed_extensions: [.txt, .txt]\n"},
		{"color mode", "color: rainbow\n"},
		{"empty prompt", "prompt: \"\"\n"},
		{"theme color", "theme:\n  help: chartreuse\n"},
		{"malformed yaml", "prompt: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			fs, dir := writeTempConfig(t, tt.content)
			_, err := Load(fs, dir)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, apperrors.ErrConfig) {
				t.Fatalf("error = %v, want config error", err)
			}
		})
	}
}

func TestWarnings(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Warnings(fs))

	cfg.HistoryFile = ""
	cfg.HelpFile = "missing.yaml"
	cfg.AllowedExtensions = []string{".txt", ".TXT"}
	warnings := cfg.Warnings(fs)
	fields := make([]string, 0, len(warnings))
	for _, w := range warnings {
		fields = append(fields, w.Field)
	}
	assert.Equal(t, []string{"history_file", "help_file", "allowed_extensions"}, fields)
}

func TestInitialize(t *testing.T) {
	clearEnv(t)
	fs := afero.NewMemMapFs()

	path, err := Initialize(fs, "/home/user/.syntaxshift")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/user/.syntaxshift", ConfigurationName), path)

	cfg, err := Load(fs, "/home/user/.syntaxshift")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = Initialize(fs, "/home/user/.syntaxshift")
	assert.True(t, errors.Is(err, apperrors.ErrConfig), "second initialize must refuse to overwrite")
}
