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
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"syntaxshift/internal/build"
	"syntaxshift/internal/ops"
	"syntaxshift/internal/shell"
)

const banner = "Enter a command or ('e' to exit, 'c' to clear, 'help' for assistance):"

func runInteractive(s *session, logger zerolog.Logger) error {
	logger.Debug().Msg("Running in interactive mode")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.cfg.Prompt,
		HistoryFile:     s.cfg.HistoryFile,
		AutoComplete:    getCommandCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	out := rl.Stdout()
	input := &build.ReadlineInput{RL: rl, SessionPrompt: s.cfg.Prompt}
	h := &lineHandler{
		interp:       s.interpreter(input, out, logger),
		colors:       s.colors,
		out:          out,
		logger:       logger,
		clearOnError: s.cfg.ClearOnError,
		clear:        func() { readline.ClearScreen(out) },
	}

	for {
		s.colors.Info.Fprintln(out, "\n"+banner)
		line, err := rl.Readline()
		switch promptOutcome(line, err) {
		case promptExit:
			return nil
		case promptRetry:
			continue
		}
		if err != nil {
			logger.Debug().Err(err).Msg("Readline failed")
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if h.handle(line) == shell.Exit {
			return nil
		}
	}
}

type promptAction int

const (
	promptRead promptAction = iota
	promptRetry
	promptExit
)

// promptOutcome maps a Readline result to the loop's next step. ^C drops
// the current line. ^D on an empty line ends the session, and on a partly
// typed line it only discards the text.
func promptOutcome(line string, err error) promptAction {
	if errors.Is(err, readline.ErrInterrupt) {
		return promptRetry
	}
	if errors.Is(err, io.EOF) {
		if strings.TrimSpace(line) != "" {
			return promptRetry
		}
		return promptExit
	}
	return promptRead
}

// getCommandCompleter completes operation keywords and controls; help
// completes its topic too.
func getCommandCompleter() *readline.PrefixCompleter {
	var topics []readline.PrefixCompleterInterface
	var items []readline.PrefixCompleterInterface
	for _, op := range ops.Commands() {
		topics = append(topics, readline.PcItem(op.Name))
		items = append(items, readline.PcItem(op.Name))
	}
	items = append(items,
		readline.PcItem(ops.Help.Name, topics...),
		readline.PcItem("open"),
	)
	return readline.NewPrefixCompleter(items...)
}
