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

package parse

import "strings"

// Control is a reserved interactive command handled outside dispatch.
type Control string

const (
	ControlNone  Control = ""
	ControlExit  Control = "e"
	ControlClear Control = "c"
	ControlOpen  Control = "open"
)

// Control reports the reserved control spelled by the line, if any. Controls
// are matched case-insensitively.
func (l Line) Control() Control {
	switch first := strings.ToLower(l.First()); {
	case first == string(ControlExit) && l.Len() == 1:
		return ControlExit
	case first == string(ControlClear) && l.Len() == 1:
		return ControlClear
	case first == string(ControlOpen):
		return ControlOpen
	}
	return ControlNone
}
