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

package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"syntaxshift/internal/build"
	"syntaxshift/internal/config"
	apperrors "syntaxshift/internal/errors"
	"syntaxshift/internal/help"
	"syntaxshift/internal/paths"
	"syntaxshift/internal/platform"
	"syntaxshift/internal/shell"
	"syntaxshift/internal/theme"
)

// session holds everything resolved once at startup.
type session struct {
	fs       afero.Fs
	cfg      *config.Config
	platform platform.Platform
	help     *help.Store
	colors   *theme.ColorScheme
}

func loadSession(fs afero.Fs, dir string, logger zerolog.Logger) (*session, error) {
	p, err := platform.Detect()
	if err != nil {
		return nil, err
	}
	if err := platform.DefaultTemplates.Validate(); err != nil {
		return nil, err
	}
	logger.Info().Str("platform", string(p)).Str("kernel", platform.KernelRelease()).Msg("Platform detected")

	cfg, err := config.Load(fs, dir)
	if err != nil {
		return nil, err
	}
	for _, w := range cfg.Warnings(fs) {
		logger.Warn().Str("field", w.Field).Msg(w.Message)
	}

	helpFile := cfg.HelpFile
	if ok, _ := afero.Exists(fs, helpFile); !ok {
		helpFile = ""
	}
	store, err := help.Load(fs, helpFile)
	if err != nil {
		return nil, err
	}

	mgr, err := theme.NewManager(cfg.Theme, cfg.Color)
	if err != nil {
		return nil, err
	}

	return &session{
		fs:       fs,
		cfg:      cfg,
		platform: p,
		help:     store,
		colors:   mgr.ColorScheme(),
	}, nil
}

func (s *session) interpreter(input build.InputProvider, out io.Writer, logger zerolog.Logger) *shell.Interpreter {
	return shell.New(shell.Options{
		Platform:   s.platform,
		Templates:  platform.DefaultTemplates,
		Probe:      paths.NewProbe(s.fs),
		Extensions: s.cfg.Extensions(),
		Help:       s.help,
		Colors:     s.colors,
		Input:      input,
		Out:        out,
		Logger:     logger,
	})
}

// lineHandler runs one line and reports its error without stopping the loop.
type lineHandler struct {
	interp       *shell.Interpreter
	colors       *theme.ColorScheme
	out          io.Writer
	logger       zerolog.Logger
	clearOnError bool
	clear        func()
}

func (h *lineHandler) handle(line string) shell.Outcome {
	h.logger.Info().Str("user_input", line).Msg("User input received")

	outcome, err := h.interp.Execute(line)
	if err != nil {
		h.report(err)
		return shell.Continue
	}
	if outcome == shell.Clear {
		h.clearScreen()
		return shell.Continue
	}
	return outcome
}

func (h *lineHandler) report(err error) {
	if apperrors.IsUserError(err) {
		h.logger.Debug().Err(err).Msg("Rejected input")
	} else {
		h.logger.Error().Err(err).Msg("Command failed")
	}
	if h.clearOnError {
		h.clearScreen()
	}
	h.colors.Error.Fprintln(h.out, err.Error())
}

func (h *lineHandler) clearScreen() {
	if h.clear != nil {
		h.clear()
	}
}
