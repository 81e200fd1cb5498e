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

// FileOperation validates create, delete and rename.
type FileOperation struct {
	Rules
}

func (v *FileOperation) Validate(tokens []string) error {
	if err := v.Syntax(tokens); err != nil {
		return err
	}
	return v.Preconditions(tokens)
}

// Syntax checks arity and the extension without touching the filesystem.
func (v *FileOperation) Syntax(tokens []string) error {
	op, err := operation(firstToken(tokens))
	if err != nil {
		return err
	}
	if op.Group != ops.GroupFileOperation {
		return apperrors.Newf(apperrors.CodeInvalidCommand, tokens[:1], "%s is not a file operation", op)
	}
	if len(tokens) != 2 {
		return apperrors.Newf(apperrors.CodeFileOperation, tokens,
			"%s expects exactly one file name, got %s", op, argCount(tokens))
	}
	return v.CheckExtension(tokens[1])
}

// CheckExtension rejects names whose extension is not allow-listed.
func (v *FileOperation) CheckExtension(name string) error {
	if !v.Extensions.Allowed(name) {
		return apperrors.Newf(apperrors.CodeFileOperation, []string{name},
			"invalid or missing file extension %q, allowed: %s", name, v.Extensions)
	}
	return nil
}

// Preconditions checks existence: create needs an absent target, delete and
// rename need a present one.
func (v *FileOperation) Preconditions(tokens []string) error {
	op, err := operation(firstToken(tokens))
	if err != nil {
		return err
	}
	if len(tokens) < 2 {
		return apperrors.Newf(apperrors.CodeFileOperation, tokens, "%s expects a file name", op)
	}
	path := tokens[1]
	exists := v.Probe.Exists(path)
	switch op {
	case ops.Create:
		if exists {
			return apperrors.Newf(apperrors.CodeFileOperation, []string{path}, "cannot create %q: file already exists", path)
		}
	case ops.Delete, ops.Rename:
		if !exists {
			return apperrors.Newf(apperrors.CodeFileOperation, []string{path}, "cannot %s %q: file does not exist", op, path)
		}
	}
	return nil
}

// CheckDestination validates a rename destination: allow-listed extension and
// not yet present.
func (v *FileOperation) CheckDestination(name string) error {
	if err := v.CheckExtension(name); err != nil {
		return err
	}
	if v.Probe.Exists(name) {
		return apperrors.Newf(apperrors.CodeFileOperation, []string{name}, "cannot rename to %q: file already exists", name)
	}
	return nil
}

func firstToken(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}
