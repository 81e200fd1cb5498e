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

package platform

import (
	"fmt"

	apperrors "syntaxshift/internal/errors"
	"syntaxshift/internal/ops"
)

// Templates maps an operation and platform to the native argument prefix.
type Templates map[ops.Operation]map[Platform][]string

// DefaultTemplates is the built-in command table.
var DefaultTemplates = Templates{
	ops.Create: {
		Windows: {"cmd", "/c", "type", "nul", ">"},
		Linux:   {"touch"},
		Mac:     {"touch"},
	},
	ops.Delete: {
		Windows: {"cmd", "/c", "del"},
		Linux:   {"rm"},
		Mac:     {"rm"},
	},
	ops.Rename: {
		Windows: {"cmd", "/c", "ren"},
		Linux:   {"mv"},
		Mac:     {"mv"},
	},
	ops.Modify: {
		Windows: {"cmd", "/c", "icacls"},
		Linux:   {"chmod"},
		Mac:     {"chmod"},
	},
	ops.List: {
		Windows: {"powershell", "/c", "dir"},
		Linux:   {"ls", "-al"},
		Mac:     {"ls", "-al"},
	},
	ops.Make: {
		Windows: {"cmd", "/c", "mkdir"},
		Linux:   {"mkdir"},
		Mac:     {"mkdir"},
	},
	ops.Remove: {
		Windows: {"cmd", "/c", "rmdir"},
		Linux:   {"rm", "-r"},
		Mac:     {"rm", "-r"},
	},
	ops.Change: {
		Windows: {"cmd", "/c", "cd"},
		Linux:   {"sh", "-c", `cd -- "$1"`, "cd"},
		Mac:     {"sh", "-c", `cd -- "$1"`, "cd"},
	},
	ops.Pwd: {
		Windows: {"cmd", "/c", "cd"},
		Linux:   {"pwd"},
		Mac:     {"pwd"},
	},
}

// Validate checks that every command operation resolves on every platform.
func (t Templates) Validate() error {
	for _, op := range ops.Commands() {
		for _, p := range All() {
			if prefix, ok := t[op][p]; !ok || len(prefix) == 0 {
				return apperrors.New(apperrors.CodeConfig, fmt.Sprintf("no command template for %s on %s", op, p))
			}
		}
	}
	return nil
}

// Lookup returns a copy of the prefix for op on p.
func (t Templates) Lookup(op ops.Operation, p Platform) ([]string, bool) {
	prefix, ok := t[op][p]
	if !ok || len(prefix) == 0 {
		return nil, false
	}
	return append([]string(nil), prefix...), true
}

// Resolve returns a copy of the prefix for op on p. A missing entry is a
// configuration bug and panics; call Validate at startup to surface it early.
func (t Templates) Resolve(op ops.Operation, p Platform) []string {
	prefix, ok := t.Lookup(op, p)
	if !ok {
		panic(fmt.Sprintf("platform: no command template for %s on %s", op, p))
	}
	return prefix
}

var openers = map[Platform][]string{
	Windows: {"cmd", "/c", "start", ""},
	Linux:   {"xdg-open"},
	Mac:     {"open"},
}

// OpenerCommand returns the argv that opens path with the OS default handler.
func OpenerCommand(p Platform, path string) []string {
	prefix := append([]string(nil), openers[p]...)
	return append(prefix, path)
}

