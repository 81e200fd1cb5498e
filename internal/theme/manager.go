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

package theme

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Color modes accepted by NewManager.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// Manager handles theme validation, the color mode and NO_COLOR support.
type Manager struct {
	theme       *Theme
	colorScheme *ColorScheme
	noColor     bool
}

// NewManager validates theme and applies mode. In auto mode colors follow
// the terminal and are disabled when NO_COLOR is set.
func NewManager(theme *Theme, mode string) (*Manager, error) {
	if theme == nil {
		theme = DefaultTheme()
	}
	if err := ValidateTheme(theme); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	var noColor bool
	switch mode {
	case ModeNever:
		noColor = true
	case ModeAlways:
		color.NoColor = false
	case ModeAuto, "":
		noColor = os.Getenv("NO_COLOR") != ""
	default:
		return nil, fmt.Errorf("invalid color mode %q", mode)
	}

	colorScheme := theme.ToColorScheme()
	if noColor {
		colorScheme = DisabledColorScheme()
	}

	return &Manager{
		theme:       theme,
		colorScheme: colorScheme,
		noColor:     noColor,
	}, nil
}

// ColorScheme returns the current color scheme.
func (m *Manager) ColorScheme() *ColorScheme {
	return m.colorScheme
}

// Theme returns the current theme.
func (m *Manager) Theme() *Theme {
	return m.theme
}

// IsColorDisabled returns true if colors are disabled.
func (m *Manager) IsColorDisabled() bool {
	return m.noColor
}
