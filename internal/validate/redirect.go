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

// Redirect validates "command > file" and "command < file".
type Redirect struct {
	Rules
	groups *Set
}

func (v *Redirect) Validate(tokens []string) error {
	r, ok := parse.NewLine(tokens...).SplitRedirect()
	if !ok {
		return apperrors.Newf(apperrors.CodeRedirection, tokens, "no redirection marker found")
	}
	if r.Markers != 1 {
		return apperrors.Newf(apperrors.CodeRedirection, tokens,
			"exactly one of %q or %q is allowed, found %d", parse.RedirectInputMarker, parse.RedirectOutMarker, r.Markers)
	}
	if r.Command.Len() == 0 {
		return apperrors.Newf(apperrors.CodeRedirection, []string{string(r.Direction)},
			"redirection %q needs a command before it", r.Direction)
	}
	if r.Target == "" {
		return apperrors.Newf(apperrors.CodeRedirection, []string{string(r.Direction)},
			"redirection %q needs a file after it", r.Direction)
	}
	if len(r.Trailing) > 0 {
		return apperrors.Newf(apperrors.CodeRedirection, r.Trailing,
			"unexpected tokens after %q: %s", r.Target, apperrors.QuoteTokens(r.Trailing))
	}
	if !v.Extensions.Allowed(r.Target) {
		return apperrors.Newf(apperrors.CodeRedirection, []string{r.Target},
			"invalid file extension for redirection %q, allowed: %s", r.Target, v.Extensions)
	}
	if r.Direction == parse.DirectionInput && !v.Probe.Exists(r.Target) {
		return apperrors.Newf(apperrors.CodeRedirection, []string{r.Target},
			"cannot read from %q: file does not exist", r.Target)
	}

	op, err := operation(r.Command.First())
	if err != nil {
		return err
	}
	if op == ops.Help || (op == ops.Pwd && r.Direction == parse.DirectionInput) {
		return apperrors.Newf(apperrors.CodeRedirection, []string{op.Name},
			"%s does not support %q redirection", op, r.Direction)
	}
	if r.Direction == parse.DirectionInput && r.Command.Len() == 1 {
		return nil
	}
	return v.groups.validateSimple(r.Command.Tokens())
}
