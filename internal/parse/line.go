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

// Package parse turns one line of user text into an immutable Command Line.
package parse

import (
	"strings"

	"github.com/anmitsu/go-shlex"

	apperrors "syntaxshift/internal/errors"
	"syntaxshift/internal/ops"
)

// Markers recognized between simple commands.
const (
	PipeMarker          = "|"
	RedirectOutMarker   = ">"
	RedirectInputMarker = "<"
)

// Mode is the execution shape of a Command Line.
type Mode int

const (
	ModeSingle Mode = iota
	ModePiped
	ModeRedirected
)

func (m Mode) String() string {
	switch m {
	case ModePiped:
		return "piped"
	case ModeRedirected:
		return "redirected"
	default:
		return "single"
	}
}

// Line is the tokenized form of one input line.
type Line struct {
	tokens []string
}

// literalBackslash is the shell tokenizer without escapes, so Windows paths
// keep their separators.
type literalBackslash struct {
	shlex.DefaultTokenizer
}

func (literalBackslash) IsEscape(rune) bool {
	return false
}

// Tokenize splits input on whitespace, keeping quoted groups together, and
// lower-cases tokens that spell an operation keyword. Backslashes are
// ordinary characters.
func Tokenize(input string) (Line, error) {
	lexer := shlex.NewLexerString(input, true, true)
	lexer.SetTokenizer(&literalBackslash{})
	tokens, err := lexer.Split()
	if err != nil {
		return Line{}, &apperrors.Error{
			Code:    apperrors.CodeInvalidCommand,
			Message: "unable to parse input",
			Tokens:  []string{input},
			Err:     err,
		}
	}
	if len(tokens) == 0 {
		return Line{}, apperrors.ErrEmptyInput
	}
	for i, tok := range tokens {
		lower := strings.ToLower(tok)
		if _, ok := ops.Lookup(lower); ok {
			tokens[i] = lower
		}
	}
	return Line{tokens: tokens}, nil
}

// NewLine builds a Line from tokens that are already normalized.
func NewLine(tokens ...string) Line {
	return Line{tokens: append([]string(nil), tokens...)}
}

// Tokens returns a copy of the tokens.
func (l Line) Tokens() []string {
	return append([]string(nil), l.tokens...)
}

// Len returns the token count.
func (l Line) Len() int {
	return len(l.tokens)
}

// First returns the first token or "".
func (l Line) First() string {
	if len(l.tokens) == 0 {
		return ""
	}
	return l.tokens[0]
}

// Args returns a copy of every token after the first.
func (l Line) Args() []string {
	if len(l.tokens) < 2 {
		return nil
	}
	return append([]string(nil), l.tokens[1:]...)
}

// String joins the tokens with single spaces.
func (l Line) String() string {
	return strings.Join(l.tokens, " ")
}

// Contains reports whether tok appears as a whole token.
func (l Line) Contains(tok string) bool {
	return l.Count(tok) > 0
}

// Count returns how many tokens equal tok.
func (l Line) Count(tok string) int {
	n := 0
	for _, t := range l.tokens {
		if t == tok {
			n++
		}
	}
	return n
}

// Mode classifies the line. A pipe marker wins over redirection markers so
// that mixed lines are rejected by the pipe rules.
func (l Line) Mode() Mode {
	if l.Contains(PipeMarker) {
		return ModePiped
	}
	if l.Contains(RedirectOutMarker) || l.Contains(RedirectInputMarker) {
		return ModeRedirected
	}
	return ModeSingle
}

// SplitPipe splits the line at the first pipe marker.
func (l Line) SplitPipe() (left, right Line, ok bool) {
	for i, tok := range l.tokens {
		if tok == PipeMarker {
			return NewLine(l.tokens[:i]...), NewLine(l.tokens[i+1:]...), true
		}
	}
	return Line{}, Line{}, false
}
