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

package shell

import (
	apperrors "syntaxshift/internal/errors"
	"syntaxshift/internal/ops"
	"syntaxshift/internal/parse"
)

// Plan is a validated, fully built Command Line ready to dispatch.
type Plan struct {
	Mode parse.Mode
	Op   ops.Operation
	Argv []string

	// Right is the consumer of a pipe.
	Right []string

	Direction parse.Direction
	Target    string

	// Dir is the directory a change command moves to.
	Dir string
}

// Prepare validates line and builds its argument vectors. Rename prompts
// for its destination here, so nothing runs before every check passes.
func (in *Interpreter) Prepare(line parse.Line) (*Plan, error) {
	tokens := line.Tokens()
	if err := in.Validators.Validate(tokens); err != nil {
		return nil, err
	}
	op, _ := ops.Lookup(line.First())
	plan := &Plan{Mode: line.Mode(), Op: op}

	var err error
	switch plan.Mode {
	case parse.ModePiped:
		left, right, _ := line.SplitPipe()
		if plan.Argv, err = in.Builder.Build(left.Tokens()); err != nil {
			return nil, err
		}
		if plan.Right, err = in.Builder.Build(right.Tokens()); err != nil {
			return nil, err
		}
	case parse.ModeRedirected:
		r, _ := line.SplitRedirect()
		plan.Direction = r.Direction
		plan.Target = r.Target
		if plan.Argv, err = in.Builder.Build(r.Command.Tokens()); err != nil {
			return nil, err
		}
	default:
		if plan.Argv, err = in.Builder.Build(tokens); err != nil {
			return nil, err
		}
		if op == ops.Change {
			plan.Dir = tokens[1]
		}
	}
	return plan, nil
}

// Run dispatches a prepared plan and prints its output.
func (in *Interpreter) Run(p *Plan) error {
	log := in.Logger.Debug().Str("mode", p.Mode.String()).Strs("argv", p.Argv)
	if p.Right != nil {
		log = log.Strs("right", p.Right)
	}
	if p.Target != "" {
		log = log.Str("direction", string(p.Direction)).Str("target", p.Target)
	}
	log.Msg("Dispatching command")

	switch p.Mode {
	case parse.ModePiped:
		res, err := in.Dispatcher.RunPiped(p.Argv, p.Right)
		if err != nil {
			return err
		}
		in.show(p, res)
	case parse.ModeRedirected:
		if p.Direction == parse.DirectionOutput {
			_, err := in.Dispatcher.RunRedirectOut(p.Argv, p.Target)
			return err
		}
		res, err := in.Dispatcher.RunRedirectIn(p.Argv, p.Target)
		if err != nil {
			return err
		}
		in.show(p, res)
	default:
		res, err := in.Dispatcher.RunSingle(p.Argv)
		if err != nil {
			return err
		}
		if p.Dir != "" {
			if err := in.Chdir(p.Dir); err != nil {
				return apperrors.Wrap(apperrors.CodeDirectoryManagement, "changing directory", err)
			}
			in.Logger.Debug().Str("dir", p.Dir).Msg("Changed working directory")
		}
		in.show(p, res)
	}
	return nil
}
