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
	"bytes"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syntaxshift/internal/build"
	"syntaxshift/internal/config"
	"syntaxshift/internal/help"
	"syntaxshift/internal/platform"
	"syntaxshift/internal/theme"
)

func newTestSession(t *testing.T) *session {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("batch tests spawn POSIX commands")
	}
	t.Chdir(t.TempDir())

	p, err := platform.Detect()
	require.NoError(t, err)
	store, err := help.Default()
	require.NoError(t, err)
	return &session{
		fs:       afero.NewOsFs(),
		cfg:      config.DefaultConfig(),
		platform: p,
		help:     store,
		colors:   theme.DisabledColorScheme(),
	}
}

func TestRunBatchContinuesAfterErrors(t *testing.T) {
	s := newTestSession(t)
	input := strings.Join([]string{
		"make testdir",
		"make testdir",
		"cat < missing.txt",
		"",
		"help make",
		"e",
		"make never",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, runBatch(s, strings.NewReader(input), &out, zerolog.Nop()))

	text := out.String()
	assert.Contains(t, text, `cannot make "testdir": path exists`)
	assert.Contains(t, text, `cannot read from "missing.txt": file does not exist`)
	assert.Contains(t, text, "make <directory>")

	_, err := os.Stat("testdir")
	assert.NoError(t, err)
	_, err = os.Stat("never")
	assert.True(t, os.IsNotExist(err), "lines after e must not run")
}

func TestRunBatchRenameReadsNextLine(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, os.WriteFile("old.txt", nil, 0o644))

	var out bytes.Buffer
	require.NoError(t, runBatch(s, strings.NewReader("rename old.txt\nnew.txt\n"), &out, zerolog.Nop()))

	assert.Contains(t, out.String(), build.RenamePrompt)
	_, err := os.Stat("new.txt")
	assert.NoError(t, err)
}

func TestRunBatchRedirectThenCreate(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, os.WriteFile("locked.txt", nil, 0o644))

	var out bytes.Buffer
	require.NoError(t, runBatch(s, strings.NewReader("list locked.txt > out.txt\ncreate after.txt\n"), &out, zerolog.Nop()))

	_, err := os.Stat("after.txt")
	assert.NoError(t, err)
	data, err := os.ReadFile("out.txt")
	require.NoError(t, err)
	assert.Contains(t, string(data), "locked.txt")
}

func TestRunBatchReportsExecutionFailure(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, os.Mkdir("full", 0o755))
	require.NoError(t, os.WriteFile("full/keep.txt", nil, 0o644))
	require.NoError(t, os.Chmod("full", 0o555))
	t.Cleanup(func() { os.Chmod("full", 0o755) })
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	var out bytes.Buffer
	require.NoError(t, runBatch(s, strings.NewReader("delete full/keep.txt\ncreate after.txt\n"), &out, zerolog.Nop()))

	assert.Contains(t, out.String(), "rm exited with status")
	_, err := os.Stat("after.txt")
	assert.NoError(t, err, "the loop continues after a failed command")
}
