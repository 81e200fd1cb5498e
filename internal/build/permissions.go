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

package build

import (
	"strings"

	apperrors "syntaxshift/internal/errors"
	"syntaxshift/internal/validate"
)

// canonical permission order; set semantics otherwise.
var permissionOrder = []string{"r", "w", "x"}

// letters deduplicates perms into canonical order, expanding f to every letter.
func letters(perms []string) []string {
	seen := make(map[string]bool, len(perms))
	for _, p := range perms {
		if p == validate.PermissionFull {
			return append([]string(nil), permissionOrder...)
		}
		seen[p] = true
	}
	out := make([]string, 0, len(seen))
	for _, l := range permissionOrder {
		if seen[l] {
			out = append(out, l)
		}
	}
	return out
}

// POSIXMode renders the chmod symbolic mode for the user scope, e.g. u+rw.
func POSIXMode(action string, perms []string) (string, error) {
	var scope string
	switch action {
	case validate.ActionAdd:
		scope = "u+"
	case validate.ActionRemove:
		scope = "u-"
	default:
		return "", apperrors.Newf(apperrors.CodeFileAccess, []string{action}, "invalid action %q", action)
	}
	return scope + strings.Join(letters(perms), ""), nil
}

// WindowsGrant renders the icacls permission argument, e.g. alice:(R,W).
// Full access is the single letter F.
func WindowsGrant(user string, perms []string) string {
	var upper []string
	if len(perms) == 1 && perms[0] == validate.PermissionFull {
		upper = []string{"F"}
	} else {
		for _, l := range letters(perms) {
			upper = append(upper, strings.ToUpper(l))
		}
	}
	return user + ":(" + strings.Join(upper, ",") + ")"
}

func windowsFlag(action string) (string, error) {
	switch action {
	case validate.ActionAdd:
		return "/grant", nil
	case validate.ActionRemove:
		return "/remove", nil
	}
	return "", apperrors.Newf(apperrors.CodeFileAccess, []string{action}, "invalid action %q", action)
}
