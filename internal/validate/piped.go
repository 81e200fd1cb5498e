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
	"syntaxshift/internal/parse"
)

// Piped validates "left | right". The right half may be a bare operation that
// consumes the stream; otherwise it is validated like a simple command.
type Piped struct {
	groups *Set
}

func (v *Piped) Validate(tokens []string) error {
	left, right, ok := parse.NewLine(tokens...).SplitPipe()
	if !ok {
		return apperrors.Newf(apperrors.CodeInvalidCommand, tokens, "expected a pipe")
	}
	if left.Len() == 0 || right.Len() == 0 {
		return apperrors.Newf(apperrors.CodeInvalidCommand, tokens, "a pipe needs a command on both sides")
	}
	lop, err := operation(left.First())
	if err != nil {
		return err
	}
	rop, err := operation(right.First())
	if err != nil {
		return err
	}
	if lop == rop {
		return apperrors.Newf(apperrors.CodeInvalidCommand, []string{lop.Name, rop.Name},
			"cannot pipe %s into itself", lop)
	}
	want, ok := ops.PipeSuccessor(lop)
	if !ok {
		return apperrors.Newf(apperrors.CodeInvalidCommand, []string{lop.Name}, "%s cannot be piped", lop)
	}
	if rop != want {
		return apperrors.Newf(apperrors.CodeInvalidCommand, []string{rop.Name},
			"%s can only be piped into %s, got %s", lop, want, rop)
	}

	if err := v.groups.validateSimple(left.Tokens()); err != nil {
		return err
	}
	if right.Len() == 1 {
		return nil
	}
	return v.groups.validateSimple(right.Tokens())
}
