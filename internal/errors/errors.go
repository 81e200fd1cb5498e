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

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a class of error for programmatic handling.
type Code string

const (
	CodeInvalidCommand      Code = "invalid_command"
	CodeFileOperation       Code = "file_operation"
	CodeFileAccess          Code = "file_access"
	CodeDirectoryManagement Code = "directory_management"
	CodeRedirection         Code = "redirection"

	CodeExecution           Code = "execution"
	CodeSpawn               Code = "spawn"
	CodeConfig              Code = "config"
	CodeUnsupportedPlatform Code = "unsupported_platform"
)

// Kind sentinels match any *Error carrying the same code through errors.Is.
var (
	ErrInvalidCommand      = &Error{Code: CodeInvalidCommand}
	ErrFileOperation       = &Error{Code: CodeFileOperation}
	ErrFileAccess          = &Error{Code: CodeFileAccess}
	ErrDirectoryManagement = &Error{Code: CodeDirectoryManagement}
	ErrRedirection         = &Error{Code: CodeRedirection}
	ErrExecution           = &Error{Code: CodeExecution}
	ErrSpawn               = &Error{Code: CodeSpawn}
	ErrConfig              = &Error{Code: CodeConfig}
	ErrUnsupportedPlatform = &Error{Code: CodeUnsupportedPlatform}

	// ErrEmptyInput is returned when a line yields no tokens.
	ErrEmptyInput = &Error{Code: CodeInvalidCommand, Message: "empty input"}
)

// Error wraps an underlying error with a code, a message and the offending tokens.
type Error struct {
	Code    Code
	Message string
	Tokens  []string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return string(e.Code)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is an *Error of the same code. A target that
// carries a message only matches errors with that exact message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if t.Message != "" && t.Message != e.Message {
		return false
	}
	return e.Code == t.Code
}

// New creates a new coded error with a message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error naming the offending tokens.
func Newf(code Code, tokens []string, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Tokens: append([]string(nil), tokens...)}
}

// Wrap creates a new coded error that wraps an underlying error.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}

// IsUserError reports whether err is a validation failure caused by user input.
func IsUserError(err error) bool {
	switch CodeOf(err) {
	case CodeInvalidCommand, CodeFileOperation, CodeFileAccess, CodeDirectoryManagement, CodeRedirection:
		return true
	}
	return false
}

// QuoteTokens renders tokens for inclusion in a message.
func QuoteTokens(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = fmt.Sprintf("%q", tok)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
