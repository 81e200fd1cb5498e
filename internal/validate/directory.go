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

// DirectoryManagement validates make, remove, change and pwd.
type DirectoryManagement struct {
	Rules
}

func (v *DirectoryManagement) Validate(tokens []string) error {
	op, err := operation(firstToken(tokens))
	if err != nil {
		return err
	}
	if op.Group != ops.GroupDirectoryOperation {
		return apperrors.Newf(apperrors.CodeInvalidCommand, tokens[:1], "%s is not a directory command", op)
	}
	if op == ops.Pwd {
		if len(tokens) != 1 {
			return apperrors.Newf(apperrors.CodeDirectoryManagement, tokens[1:], "pwd takes no arguments, got %s", argCount(tokens))
		}
		return nil
	}
	if len(tokens) != 2 {
		return apperrors.Newf(apperrors.CodeDirectoryManagement, tokens,
			"%s expects exactly one path, got %s", op, argCount(tokens))
	}

	path := tokens[1]
	exists := v.Probe.Exists(path)
	want := op != ops.Make
	if exists != want {
		return apperrors.Newf(apperrors.CodeDirectoryManagement, []string{path},
			"cannot %s %q: path %s", op, path, existence(exists))
	}
	if op != ops.Make && !v.Probe.IsDir(path) {
		return apperrors.Newf(apperrors.CodeDirectoryManagement, []string{path},
			"cannot %s %q: not a directory", op, path)
	}
	return nil
}
