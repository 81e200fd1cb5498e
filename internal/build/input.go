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

package build

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// InputProvider supplies a line of user input in the middle of building.
type InputProvider interface {
	Prompt(prompt string) (string, error)
}

// ReadlineInput prompts through the interactive line editor, restoring the
// session prompt afterwards.
type ReadlineInput struct {
	RL *readline.Instance
	// SessionPrompt is put back once the answer is read.
	SessionPrompt string
}

func (r *ReadlineInput) Prompt(prompt string) (string, error) {
	r.RL.SetPrompt(prompt)
	defer r.RL.SetPrompt(r.SessionPrompt)
	return r.RL.Readline()
}

// LineInput reads answers from a line scanner, used in batch mode where the
// answer is the next input line.
type LineInput struct {
	Scanner *bufio.Scanner
	Out     io.Writer
}

func (l *LineInput) Prompt(prompt string) (string, error) {
	if l.Out != nil {
		fmt.Fprint(l.Out, prompt)
	}
	if !l.Scanner.Scan() {
		if err := l.Scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return l.Scanner.Text(), nil
}
