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

// Package dispatch spawns built argument vectors as OS processes, alone,
// as a two-stage pipe, or bound to a redirection file.
//
// Every mode blocks until its processes exit. There is no timeout: a child
// that never exits holds the session until it is killed externally.
package dispatch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	apperrors "syntaxshift/internal/errors"
)

// Result is what a finished command produced.
type Result struct {
	Argv     []string
	Stdout   string
	Stderr   string
	ExitCode int
}

// Dispatcher runs commands. The zero value is not usable; use New.
type Dispatcher struct {
	fs     afero.Fs
	logger zerolog.Logger

	// Echo receives the captured output of a successful "> file" run.
	Echo io.Writer
	// Dir is the working directory for spawned commands; empty means the
	// current directory.
	Dir string
}

// New returns a Dispatcher whose redirection files live on fs.
func New(fs afero.Fs, logger zerolog.Logger) *Dispatcher {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Dispatcher{fs: fs, logger: logger, Echo: os.Stdout}
}

func (d *Dispatcher) command(argv []string) *exec.Cmd {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = d.Dir
	return cmd
}

// RunSingle spawns argv, waits, and returns its captured output. A non-zero
// exit yields both the Result and an execution error.
func (d *Dispatcher) RunSingle(argv []string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, apperrors.ErrEmptyInput
	}
	d.logger.Debug().Str("mode", "single").Strs("argv", argv).Msg("Spawning command")

	cmd := d.command(argv)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return Result{Argv: argv}, spawnError(argv, err)
	}
	err := cmd.Wait()
	return finish(argv, cmd, &stdout, &stderr, err)
}

// RunPiped connects left's stdout to right's stdin and returns right's
// result. Left's own failure is not reported.
func (d *Dispatcher) RunPiped(left, right []string) (Result, error) {
	if len(left) == 0 || len(right) == 0 {
		return Result{}, apperrors.ErrEmptyInput
	}
	d.logger.Debug().Str("mode", "piped").Strs("left", left).Strs("right", right).Msg("Spawning pipeline")

	pr, pw, err := os.Pipe()
	if err != nil {
		return Result{Argv: right}, apperrors.Wrap(apperrors.CodeSpawn, "creating pipe", err)
	}
	// Both ends are closed in the parent on every path; the children hold
	// their own copies.
	defer pr.Close()
	defer pw.Close()

	lcmd := d.command(left)
	lcmd.Stdout = pw
	var lstderr bytes.Buffer
	lcmd.Stderr = &lstderr
	if err := lcmd.Start(); err != nil {
		return Result{Argv: left}, spawnError(left, err)
	}
	pw.Close()

	rcmd := d.command(right)
	rcmd.Stdin = pr
	var stdout, stderr bytes.Buffer
	rcmd.Stdout = &stdout
	rcmd.Stderr = &stderr
	if err := rcmd.Start(); err != nil {
		pr.Close()
		d.reap(lcmd, &lstderr)
		return Result{Argv: right}, spawnError(right, err)
	}
	pr.Close()

	werr := rcmd.Wait()
	d.reap(lcmd, &lstderr)
	return finish(right, rcmd, &stdout, &stderr, werr)
}

// reap waits for the left side of a pipe so it does not linger as a zombie.
func (d *Dispatcher) reap(cmd *exec.Cmd, stderr *bytes.Buffer) {
	if err := cmd.Wait(); err != nil {
		d.logger.Debug().Err(err).Str("stderr", strings.TrimSpace(stderr.String())).Msg("Pipe source exited with error")
	}
}

// RunRedirectOut runs argv and, only on a zero exit, writes its stdout to
// target (truncating) and echoes it.
func (d *Dispatcher) RunRedirectOut(argv []string, target string) (Result, error) {
	res, err := d.RunSingle(argv)
	if err != nil {
		return res, err
	}
	d.logger.Debug().Str("target", target).Int("bytes", len(res.Stdout)).Msg("Writing redirected output")
	if err := afero.WriteFile(d.fs, target, []byte(res.Stdout), 0o644); err != nil {
		return res, apperrors.Wrap(apperrors.CodeRedirection, fmt.Sprintf("writing %q", target), err)
	}
	if d.Echo != nil {
		fmt.Fprint(d.Echo, res.Stdout)
	}
	return res, nil
}

// RunRedirectIn runs argv with source bound to its stdin.
func (d *Dispatcher) RunRedirectIn(argv []string, source string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, apperrors.ErrEmptyInput
	}
	f, err := d.fs.Open(source)
	if err != nil {
		return Result{Argv: argv}, apperrors.Wrap(apperrors.CodeRedirection, fmt.Sprintf("opening %q", source), err)
	}
	defer f.Close()
	d.logger.Debug().Str("mode", "redirect_in").Strs("argv", argv).Str("source", source).Msg("Spawning command")

	cmd := d.command(argv)
	cmd.Stdin = f
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		return Result{Argv: argv}, spawnError(argv, err)
	}
	werr := cmd.Wait()
	return finish(argv, cmd, &stdout, &stderr, werr)
}

func spawnError(argv []string, err error) error {
	return &apperrors.Error{
		Code:    apperrors.CodeSpawn,
		Message: fmt.Sprintf("failed to start %q", argv[0]),
		Tokens:  append([]string(nil), argv...),
		Err:     err,
	}
}

func finish(argv []string, cmd *exec.Cmd, stdout, stderr *bytes.Buffer, waitErr error) (Result, error) {
	res := Result{
		Argv:   argv,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}
	if waitErr == nil {
		return res, nil
	}
	var exitErr *exec.ExitError
	if !errors.As(waitErr, &exitErr) {
		return res, apperrors.Wrap(apperrors.CodeExecution, fmt.Sprintf("waiting for %q", argv[0]), waitErr)
	}
	detail := strings.TrimSpace(res.Stderr)
	if detail == "" {
		detail = strings.TrimSpace(res.Stdout)
	}
	msg := fmt.Sprintf("%s exited with status %d", argv[0], res.ExitCode)
	if detail != "" {
		msg += ": " + detail
	}
	return res, &apperrors.Error{Code: apperrors.CodeExecution, Message: msg, Tokens: append([]string(nil), argv...), Err: waitErr}
}
