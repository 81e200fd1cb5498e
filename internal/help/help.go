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

// Package help serves the usage text shown by the help command.
package help

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	apperrors "syntaxshift/internal/errors"
	"syntaxshift/internal/ops"
)

//go:embed help.yaml
var defaultContent []byte

// Store holds per-operation help. It is read-only after loading.
type Store struct {
	General map[string]string `yaml:"general"`
	Info    map[string]string `yaml:"info"`
}

// Parse decodes help content.
func Parse(data []byte) (*Store, error) {
	var s Store
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeConfig, "failed to parse help content", err)
	}
	return &s, nil
}

// Default returns the embedded help content.
func Default() (*Store, error) {
	return Parse(defaultContent)
}

// Load returns the embedded help, overridden entry by entry by the YAML file
// at path when path is not empty.
func Load(fs afero.Fs, path string) (*Store, error) {
	base, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return base, nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeConfig, fmt.Sprintf("failed to read help file %q", path), err)
	}
	override, err := Parse(data)
	if err != nil {
		return nil, err
	}
	base.merge(override)
	return base, nil
}

func (s *Store) merge(o *Store) {
	if s.General == nil {
		s.General = map[string]string{}
	}
	if s.Info == nil {
		s.Info = map[string]string{}
	}
	for k, v := range o.General {
		s.General[k] = v
	}
	for k, v := range o.Info {
		s.Info[k] = v
	}
}

// Lookup returns the detailed help for an operation.
func (s *Store) Lookup(op string) (string, bool) {
	text, ok := s.General[strings.ToLower(op)]
	if !ok || strings.TrimSpace(text) == "" {
		return "", false
	}
	return strings.TrimRight(text, "\n"), true
}

// Overview lists every operation with its one line summary.
func (s *Store) Overview() string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, op := range ops.Commands() {
		fmt.Fprintf(&b, "  %-7s %s\n", op.Name, s.Info[op.Name])
	}
	b.WriteString("Controls: e (exit), c (clear), open <path>, help <command>")
	return b.String()
}

// Render answers "help" when topic is empty and "help <topic>" otherwise.
func (s *Store) Render(topic string) string {
	if topic == "" {
		return s.Overview() + "\n"
	}
	if text, ok := s.Lookup(topic); ok {
		return text + "\n"
	}
	return fmt.Sprintf("No help found for %q\n", topic)
}
