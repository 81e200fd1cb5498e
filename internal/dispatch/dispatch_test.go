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

package dispatch

import (
	"bytes"
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "syntaxshift/internal/errors"
)

func newDispatcher(t *testing.T) (*Dispatcher, *bytes.Buffer) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("process tests need a POSIX userland")
	}
	d := New(afero.NewOsFs(), zerolog.Nop())
	var echo bytes.Buffer
	d.Echo = &echo
	d.Dir = t.TempDir()
	return d, &echo
}

func TestRunSingle(t *testing.T) {
	d, _ := newDispatcher(t)
	res, err := d.RunSingle([]string{"echo", "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", res.Stdout)
	assert.Equal(t, 0, res.ExitCode)
}

func TestRunSingleNonZeroExit(t *testing.T) {
	d, _ := newDispatcher(t)
	res, err := d.RunSingle([]string{"sh", "-c", "echo boom >&2; exit 3"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrExecution))
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "boom\n", res.Stderr)
	assert.Contains(t, err.Error(), "boom")
}

func TestRunSingleSpawnFailure(t *testing.T) {
	d, _ := newDispatcher(t)
	_, err := d.RunSingle([]string{"syntaxshift-no-such-binary"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeSpawn, apperrors.CodeOf(err))
	assert.False(t, apperrors.IsUserError(err))
}

func TestRunPiped(t *testing.T) {
	d, _ := newDispatcher(t)
	res, err := d.RunPiped([]string{"printf", "b\na\n"}, []string{"sort"})
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", res.Stdout)
}

func TestRunPipedReaderSeesEOF(t *testing.T) {
	d, _ := newDispatcher(t)
	// wc only finishes once every writer of the pipe is closed.
	res, err := d.RunPiped([]string{"echo", "one two"}, []string{"wc", "-w"})
	require.NoError(t, err)
	assert.Equal(t, "2", strings.TrimSpace(res.Stdout))
}

func TestRunPipedIgnoresLeftFailure(t *testing.T) {
	d, _ := newDispatcher(t)
	res, err := d.RunPiped([]string{"sh", "-c", "echo partial; exit 1"}, []string{"cat"})
	require.NoError(t, err)
	assert.Equal(t, "partial\n", res.Stdout)
}

func TestRunPipedRightSpawnFailure(t *testing.T) {
	d, _ := newDispatcher(t)
	_, err := d.RunPiped([]string{"echo", "x"}, []string{"syntaxshift-no-such-binary"})
	assert.Equal(t, apperrors.CodeSpawn, apperrors.CodeOf(err))
}

func TestRunRedirectOut(t *testing.T) {
	d, echo := newDispatcher(t)
	target := filepath.Join(d.Dir, "out.txt")
	require.NoError(t, afero.WriteFile(afero.NewOsFs(), target, []byte("stale content that is longer\n"), 0o644))

	res, err := d.RunRedirectOut([]string{"echo", "fresh"}, target)
	require.NoError(t, err)

	data, err := afero.ReadFile(afero.NewOsFs(), target)
	require.NoError(t, err)
	assert.Equal(t, res.Stdout, string(data))
	assert.Equal(t, "fresh\n", string(data))
	assert.Equal(t, "fresh\n", echo.String())
}

func TestRunRedirectOutListing(t *testing.T) {
	d, echo := newDispatcher(t)
	require.NoError(t, afero.WriteFile(afero.NewOsFs(), filepath.Join(d.Dir, "seen.txt"), nil, 0o644))
	target := filepath.Join(d.Dir, "out.txt")

	res, err := d.RunRedirectOut([]string{"ls", "-al", "."}, target)
	require.NoError(t, err)
	data, err := afero.ReadFile(afero.NewOsFs(), target)
	require.NoError(t, err)
	assert.Equal(t, res.Stdout, string(data))
	assert.Contains(t, string(data), "seen.txt")
	assert.Equal(t, res.Stdout, echo.String())
}

func TestRunRedirectOutSkipsWriteOnFailure(t *testing.T) {
	d, echo := newDispatcher(t)
	target := filepath.Join(d.Dir, "out.txt")
	_, err := d.RunRedirectOut([]string{"sh", "-c", "echo nope; exit 1"}, target)
	require.Error(t, err)
	exists, _ := afero.Exists(afero.NewOsFs(), target)
	assert.False(t, exists)
	assert.Empty(t, echo.String())
}

func TestRunRedirectIn(t *testing.T) {
	d, _ := newDispatcher(t)
	source := filepath.Join(d.Dir, "in.txt")
	require.NoError(t, afero.WriteFile(afero.NewOsFs(), source, []byte("line1\nline2\n"), 0o644))

	res, err := d.RunRedirectIn([]string{"wc", "-l"}, source)
	require.NoError(t, err)
	assert.Equal(t, "2", strings.TrimSpace(res.Stdout))
}

func TestRunRedirectInMissing(t *testing.T) {
	d, _ := newDispatcher(t)
	_, err := d.RunRedirectIn([]string{"cat"}, filepath.Join(d.Dir, "missing.txt"))
	assert.True(t, errors.Is(err, apperrors.ErrRedirection))
}

func TestEmptyArgv(t *testing.T) {
	d := New(afero.NewMemMapFs(), zerolog.Nop())
	_, err := d.RunSingle(nil)
	assert.True(t, errors.Is(err, apperrors.ErrEmptyInput))
	_, err = d.RunPiped([]string{"ls"}, nil)
	assert.True(t, errors.Is(err, apperrors.ErrEmptyInput))
}
