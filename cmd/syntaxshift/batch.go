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
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"syntaxshift/internal/build"
	"syntaxshift/internal/shell"
)

// runBatch interprets every line of in. A rename reads its destination from
// the line that follows it.
func runBatch(s *session, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	logger.Debug().Msg("Running in batch mode")

	scanner := bufio.NewScanner(in)
	interp := s.interpreter(&build.LineInput{Scanner: scanner, Out: out}, out, logger)
	h := &lineHandler{
		interp: interp,
		colors: s.colors,
		out:    out,
		logger: logger,
	}

	for scanner.Scan() {
		if h.handle(scanner.Text()) == shell.Exit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}
