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

// Help validates "help" and "help <operation>".
type Help struct{}

func (Help) Validate(tokens []string) error {
	if firstToken(tokens) != ops.Help.Name {
		return apperrors.Newf(apperrors.CodeInvalidCommand, tokens, "expected help command")
	}
	switch len(tokens) {
	case 1:
		return nil
	case 2:
		op, ok := ops.Lookup(tokens[1])
		if !ok || op == ops.Help {
			return apperrors.Newf(apperrors.CodeInvalidCommand, tokens[1:],
				"no help for %q, expected one of the operations", tokens[1])
		}
		return nil
	}
	return apperrors.Newf(apperrors.CodeInvalidCommand, tokens[1:],
		"help takes at most one operation, got %s", argCount(tokens))
}
