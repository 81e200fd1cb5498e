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
	"github.com/fatih/color"
)

// Theme names the console color of each kind of output.
type Theme struct {
	Error  string `json:"error"`
	Output string `json:"output"`
	Help   string `json:"help"`
	Info   string `json:"info"`
}

// ColorScheme provides color styles based on theme
type ColorScheme struct {
	Error  *color.Color
	Output *color.Color
	Help   *color.Color
	Info   *color.Color
}

// DefaultTheme returns a theme with default values
func DefaultTheme() *Theme {
	return &Theme{
		Error:  "red",
		Output: "magenta",
		Help:   "cyan",
		Info:   "blue",
	}
}

var colorNames = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// ToColorScheme converts theme to color styles. Errors are always bold.
func (t *Theme) ToColorScheme() *ColorScheme {
	return &ColorScheme{
		Error:  color.New(colorNames[t.Error], color.Bold),
		Output: color.New(colorNames[t.Output]),
		Help:   color.New(colorNames[t.Help]),
		Info:   color.New(colorNames[t.Info]),
	}
}

// DisabledColorScheme returns a color scheme with all colors disabled (for NO_COLOR).
func DisabledColorScheme() *ColorScheme {
	color.NoColor = true

	return &ColorScheme{
		Error:  color.New(),
		Output: color.New(),
		Help:   color.New(),
		Info:   color.New(),
	}
}
