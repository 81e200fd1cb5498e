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

// Package validate enforces the grammar and filesystem preconditions of a
// Command Line before anything is built or spawned.
package validate

import (
	"fmt"
	"strings"

	apperrors "syntaxshift/internal/errors"
	"syntaxshift/internal/ops"
	"syntaxshift/internal/parse"
	"syntaxshift/internal/paths"
)

// Validator checks one token sequence and returns a coded error naming the
// offending tokens on failure.
type Validator interface {
	Validate(tokens []string) error
}

// Rules carries what every validator consults: an existence probe and the
// extension allow-list.
type Rules struct {
	Probe      *paths.Probe
	Extensions ops.Extensions
}

// Set selects the validator for a Command Line.
type Set struct {
	File      *FileOperation
	Access    *FileAccess
	Directory *DirectoryManagement
	Help      *Help
	Piped     *Piped
	Redirect  *Redirect
}

// New builds the validator family around probe and exts.
func New(probe *paths.Probe, exts ops.Extensions) *Set {
	r := Rules{Probe: probe, Extensions: exts}
	s := &Set{
		File:      &FileOperation{Rules: r},
		Access:    &FileAccess{Rules: r},
		Directory: &DirectoryManagement{Rules: r},
		Help:      &Help{},
	}
	s.Piped = &Piped{groups: s}
	s.Redirect = &Redirect{Rules: r, groups: s}
	return s
}

// Validate checks a whole Command Line, piped and redirected forms included.
func (s *Set) Validate(tokens []string) error {
	v, err := s.For(parse.NewLine(tokens...))
	if err != nil {
		return err
	}
	return v.Validate(tokens)
}

// Valid is the boolean form of Validate. Callers that need the reason must
// use Validate.
func (s *Set) Valid(tokens []string) bool {
	return s.Validate(tokens) == nil
}

// For returns the validator that owns line.
func (s *Set) For(line parse.Line) (Validator, error) {
	switch line.Mode() {
	case parse.ModePiped:
		return s.Piped, nil
	case parse.ModeRedirected:
		return s.Redirect, nil
	}
	return s.group(line.First())
}

// group returns the validator for a simple command's group.
func (s *Set) group(first string) (Validator, error) {
	op, err := operation(first)
	if err != nil {
		return nil, err
	}
	switch op.Group {
	case ops.GroupFileOperation:
		return s.File, nil
	case ops.GroupFilePermission:
		return s.Access, nil
	case ops.GroupDirectoryOperation:
		return s.Directory, nil
	default:
		return s.Help, nil
	}
}

// validateSimple runs the group validator for a command with no markers.
func (s *Set) validateSimple(tokens []string) error {
	line := parse.NewLine(tokens...)
	if line.Mode() != parse.ModeSingle {
		return apperrors.Newf(apperrors.CodeInvalidCommand, tokens,
			"only one pipe or redirection is allowed per line: %s", line)
	}
	v, err := s.group(line.First())
	if err != nil {
		return err
	}
	return v.Validate(tokens)
}

func operation(token string) (ops.Operation, error) {
	if token == "" {
		return ops.Operation{}, apperrors.ErrEmptyInput
	}
	op, ok := ops.Lookup(token)
	if !ok {
		return ops.Operation{}, apperrors.Newf(apperrors.CodeInvalidCommand, []string{token},
			"unknown command %q, expected one of: %s", token, strings.Join(ops.Names(), ", "))
	}
	return op, nil
}

func existence(exists bool) string {
	if exists {
		return "exists"
	}
	return "does not exist"
}

func argCount(tokens []string) string {
	n := len(tokens) - 1
	if n == 1 {
		return "1 argument"
	}
	return fmt.Sprintf("%d arguments", n)
}
