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

// Package build turns a validated simple command into the native argument
// vector for the host platform.
package build

import (
	"os/user"
	"strings"

	apperrors "syntaxshift/internal/errors"
	"syntaxshift/internal/ops"
	"syntaxshift/internal/platform"
	"syntaxshift/internal/validate"
)

// RenamePrompt is shown when asking for a rename destination.
const RenamePrompt = "Enter new filename: "

// Builder assembles argument vectors. Templates and Platform are shared and
// never mutated.
type Builder struct {
	Platform  platform.Platform
	Templates platform.Templates
	// Files checks rename destinations.
	Files *validate.FileOperation
	Input InputProvider
	// CurrentUser names the account that Windows permission grants apply to.
	CurrentUser func() (string, error)
}

// New returns a Builder using the current OS account for permission grants.
func New(p platform.Platform, templates platform.Templates, files *validate.FileOperation, input InputProvider) *Builder {
	return &Builder{
		Platform:    p,
		Templates:   templates,
		Files:       files,
		Input:       input,
		CurrentUser: currentUser,
	}
}

func currentUser() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// Build returns the argument vector for tokens, which must hold one
// validated simple command. A bare operation yields just its prefix so it
// can consume a pipe or an input redirection.
func (b *Builder) Build(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, apperrors.ErrEmptyInput
	}
	op, ok := ops.Lookup(tokens[0])
	if !ok || op == ops.Help {
		return nil, apperrors.Newf(apperrors.CodeInvalidCommand, tokens[:1], "%q is not an executable command", tokens[0])
	}
	argv := b.Templates.Resolve(op, b.Platform)
	if len(tokens) == 1 {
		return argv, nil
	}

	switch op {
	case ops.Rename:
		dest, err := b.renameDestination()
		if err != nil {
			return nil, err
		}
		return append(argv, tokens[1], dest), nil
	case ops.Modify:
		return b.modify(argv, tokens)
	case ops.Pwd:
		return argv, nil
	}
	return append(argv, tokens[1]), nil
}

func (b *Builder) renameDestination() (string, error) {
	if b.Input == nil {
		return "", apperrors.New(apperrors.CodeFileOperation, "rename needs a destination but no input is available")
	}
	answer, err := b.Input.Prompt(RenamePrompt)
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeFileOperation, "reading new filename", err)
	}
	dest := strings.TrimSpace(answer)
	if dest == "" {
		return "", apperrors.New(apperrors.CodeFileOperation, "rename needs a new filename")
	}
	if b.Files != nil {
		if err := b.Files.CheckDestination(dest); err != nil {
			return "", err
		}
	}
	return dest, nil
}

func (b *Builder) modify(argv, tokens []string) ([]string, error) {
	if len(tokens) < 4 {
		return nil, apperrors.Newf(apperrors.CodeInvalidCommand, tokens, "modify expects a path, an action and permissions")
	}
	path, action, perms := tokens[1], tokens[2], tokens[3:]

	if b.Platform.IsPOSIX() {
		mode, err := POSIXMode(action, perms)
		if err != nil {
			return nil, err
		}
		return append(argv, mode, path), nil
	}

	flag, err := windowsFlag(action)
	if err != nil {
		return nil, err
	}
	who, err := b.CurrentUser()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeFileAccess, "resolving current user", err)
	}
	return append(argv, path, flag, WindowsGrant(who, perms)), nil
}
