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

// Direction is the direction of a file redirection.
type Direction string

const (
	DirectionOutput Direction = RedirectOutMarker
	DirectionInput  Direction = RedirectInputMarker
)

// Redirection binds the preceding command's stream to a file.
type Redirection struct {
	Command   Line
	Direction Direction
	Target    string
	// Trailing holds tokens found after the target; a well formed line has none.
	Trailing []string
	// Markers counts every redirection marker in the line.
	Markers int
}

// SplitRedirect locates the first redirection marker. ok is false when the
// line contains none.
func (l Line) SplitRedirect() (r Redirection, ok bool) {
	r.Markers = l.Count(RedirectOutMarker) + l.Count(RedirectInputMarker)
	for i, tok := range l.tokens {
		if tok != RedirectOutMarker && tok != RedirectInputMarker {
			continue
		}
		r.Command = NewLine(l.tokens[:i]...)
		r.Direction = Direction(tok)
		rest := l.tokens[i+1:]
		if len(rest) > 0 {
			r.Target = rest[0]
			r.Trailing = append([]string(nil), rest[1:]...)
		}
		return r, true
	}
	return Redirection{}, false
}
