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

package validate

import (
	apperrors "syntaxshift/internal/errors"
	"syntaxshift/internal/ops"
)

// Actions accepted by modify.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// PermissionFull grants or revokes every permission at once.
const PermissionFull = "f"

var permissionLetters = map[string]bool{"r": true, "w": true, "x": true}

// FileAccess validates list and modify.
type FileAccess struct {
	Rules
}

func (v *FileAccess) Validate(tokens []string) error {
	op, err := operation(firstToken(tokens))
	if err != nil {
		return err
	}
	switch op {
	case ops.List:
		return v.validateList(tokens)
	case ops.Modify:
		return v.validateModify(tokens)
	}
	return apperrors.Newf(apperrors.CodeInvalidCommand, tokens[:1], "%s is not a file access command", op)
}

func (v *FileAccess) validateList(tokens []string) error {
	if len(tokens) != 2 {
		return apperrors.Newf(apperrors.CodeInvalidCommand, tokens,
			"list expects exactly one path, got %s", argCount(tokens))
	}
	if !v.Probe.Exists(tokens[1]) {
		return apperrors.Newf(apperrors.CodeFileAccess, tokens[1:], "path %q does not exist", tokens[1])
	}
	return nil
}

func (v *FileAccess) validateModify(tokens []string) error {
	if len(tokens) < 4 {
		return apperrors.Newf(apperrors.CodeInvalidCommand, tokens,
			"modify expects: modify <path> add|remove <permission...>, got %s", argCount(tokens))
	}
	path, action, perms := tokens[1], tokens[2], tokens[3:]
	if !v.Probe.Exists(path) {
		return apperrors.Newf(apperrors.CodeFileAccess, []string{path}, "path %q does not exist", path)
	}
	if action != ActionAdd && action != ActionRemove {
		return apperrors.Newf(apperrors.CodeFileAccess, []string{action},
			"invalid action %q, expected %q or %q", action, ActionAdd, ActionRemove)
	}
	if bad, ok := CheckPermissions(perms); !ok {
		return apperrors.Newf(apperrors.CodeFileAccess, bad,
			"invalid permissions %s, expected 1 to 3 distinct of r, w, x or the single f", apperrors.QuoteTokens(bad))
	}
	return nil
}

// CheckPermissions accepts a distinct subset of {r,w,x} of size 1 to 3 or
// exactly [f]. On rejection it returns the offending tokens.
func CheckPermissions(perms []string) (bad []string, ok bool) {
	if len(perms) == 1 && perms[0] == PermissionFull {
		return nil, true
	}
	if len(perms) == 0 {
		return nil, false
	}
	seen := make(map[string]bool, len(perms))
	for _, p := range perms {
		if !permissionLetters[p] || seen[p] {
			bad = append(bad, p)
		}
		seen[p] = true
	}
	return bad, len(bad) == 0
}
