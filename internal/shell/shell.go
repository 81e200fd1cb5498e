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

// Package shell interprets one input line at a time: tokenize, validate,
// build and dispatch, plus the reserved interactive controls.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"syntaxshift/internal/build"
	"syntaxshift/internal/dispatch"
	apperrors "syntaxshift/internal/errors"
	"syntaxshift/internal/help"
	"syntaxshift/internal/ops"
	"syntaxshift/internal/parse"
	"syntaxshift/internal/paths"
	"syntaxshift/internal/platform"
	"syntaxshift/internal/theme"
	"syntaxshift/internal/validate"
)

// Outcome tells the caller's loop what to do after a line.
type Outcome int

const (
	Continue Outcome = iota
	Exit
	Clear
)

// MissingResource is printed when open names a path that does not exist.
const MissingResource = "No resource is available at this path"

// Interpreter owns the per-session collaborators. Platform and the
// templates inside Builder are fixed for the session.
type Interpreter struct {
	Platform   platform.Platform
	Validators *validate.Set
	Builder    *build.Builder
	Dispatcher *dispatch.Dispatcher
	Help       *help.Store
	Probe      *paths.Probe
	Colors     *theme.ColorScheme
	Out        io.Writer
	Logger     zerolog.Logger

	// Chdir applies change to the interpreter's own process.
	Chdir func(dir string) error
}

// Options configures New.
type Options struct {
	Platform   platform.Platform
	Templates  platform.Templates
	Probe      *paths.Probe
	Extensions ops.Extensions
	Help       *help.Store
	Colors     *theme.ColorScheme
	Input      build.InputProvider
	Out        io.Writer
	Logger     zerolog.Logger
}

// New wires an Interpreter from opts.
func New(opts Options) *Interpreter {
	if opts.Probe == nil {
		opts.Probe = paths.NewProbe(nil)
	}
	if opts.Templates == nil {
		opts.Templates = platform.DefaultTemplates
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Colors == nil {
		opts.Colors = theme.DefaultTheme().ToColorScheme()
	}
	set := validate.New(opts.Probe, opts.Extensions)
	d := dispatch.New(opts.Probe.Fs(), opts.Logger)
	d.Echo = opts.Out
	return &Interpreter{
		Platform:   opts.Platform,
		Validators: set,
		Builder:    build.New(opts.Platform, opts.Templates, set.File, opts.Input),
		Dispatcher: d,
		Help:       opts.Help,
		Probe:      opts.Probe,
		Colors:     opts.Colors,
		Out:        opts.Out,
		Logger:     opts.Logger,
		Chdir:      os.Chdir,
	}
}

// Execute interprets one line. Errors from user input carry a user error
// code; the caller prints them and keeps looping.
func (in *Interpreter) Execute(input string) (Outcome, error) {
	line, err := parse.Tokenize(input)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyInput) {
			return Continue, nil
		}
		return Continue, err
	}

	switch line.Control() {
	case parse.ControlExit:
		return Exit, nil
	case parse.ControlClear:
		return Clear, nil
	case parse.ControlOpen:
		return Continue, in.open(line)
	}

	if line.First() == ops.Help.Name && line.Mode() == parse.ModeSingle {
		return Continue, in.help(line)
	}

	plan, err := in.Prepare(line)
	if err != nil {
		in.Logger.Debug().Err(err).Strs("tokens", line.Tokens()).Msg("Validation failed")
		return Continue, err
	}
	return Continue, in.Run(plan)
}

func (in *Interpreter) help(line parse.Line) error {
	if err := in.Validators.Help.Validate(line.Tokens()); err != nil {
		return err
	}
	var topic string
	if line.Len() == 2 {
		topic = line.Args()[0]
	}
	if in.Help == nil {
		return apperrors.New(apperrors.CodeConfig, "help content is not loaded")
	}
	in.Colors.Help.Fprint(in.Out, in.Help.Render(topic))
	return nil
}

func (in *Interpreter) open(line parse.Line) error {
	if line.Len() != 2 {
		return apperrors.Newf(apperrors.CodeInvalidCommand, line.Tokens(), "usage: open <path>")
	}
	path := line.Args()[0]
	if !in.Probe.Exists(path) {
		in.Colors.Info.Fprintln(in.Out, MissingResource)
		return nil
	}
	argv := platform.OpenerCommand(in.Platform, path)
	in.Logger.Debug().Strs("argv", argv).Msg("Opening resource")
	_, err := in.Dispatcher.RunSingle(argv)
	return err
}

// show writes a finished command's output. Listing and pwd output is
// highlighted.
func (in *Interpreter) show(p *Plan, res dispatch.Result) {
	if res.Stdout == "" {
		return
	}
	out := res.Stdout
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if p.Mode == parse.ModeSingle && (p.Op == ops.List || p.Op == ops.Pwd) {
		in.Colors.Output.Fprint(in.Out, out)
		return
	}
	fmt.Fprint(in.Out, out)
}
