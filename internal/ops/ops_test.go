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

package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupCoversEveryOperation(t *testing.T) {
	for _, op := range All() {
		got, ok := Lookup(op.Name)
		assert.True(t, ok, "lookup %s", op.Name)
		assert.Equal(t, op, got)
	}

	_, ok := Lookup("cat")
	assert.False(t, ok)
	_, ok = Lookup("CREATE")
	assert.False(t, ok, "lookup expects normalized keywords")
}

func TestGroups(t *testing.T) {
	cases := map[Operation]Group{
		Create: GroupFileOperation,
		Delete: GroupFileOperation,
		Rename: GroupFileOperation,
		Modify: GroupFilePermission,
		List:   GroupFilePermission,
		Make:   GroupDirectoryOperation,
		Remove: GroupDirectoryOperation,
		Change: GroupDirectoryOperation,
		Pwd:    GroupDirectoryOperation,
		Help:   GroupMeta,
	}
	for op, group := range cases {
		assert.Equal(t, group, op.Group, op.Name)
	}
}

func TestCommandsExcludesHelp(t *testing.T) {
	cmds := Commands()
	assert.Len(t, cmds, len(All())-1)
	assert.NotContains(t, cmds, Help)
}

func TestPipeSuccessor(t *testing.T) {
	next, ok := PipeSuccessor(Create)
	assert.True(t, ok)
	assert.Equal(t, List, next)

	next, ok = PipeSuccessor(List)
	assert.True(t, ok)
	assert.Equal(t, Modify, next)

	for _, op := range []Operation{Modify, Pwd, Help} {
		_, ok := PipeSuccessor(op)
		assert.False(t, ok, "%s should have no successor", op)
	}
}

func TestExtensions(t *testing.T) {
	exts := NewExtensions([]string{".txt", "csv", " .JSON "})

	assert.True(t, exts.Allowed("notes.txt"))
	assert.True(t, exts.Allowed("dir/report.CSV"))
	assert.True(t, exts.Allowed("data.json"))
	assert.False(t, exts.Allowed("archive.tar.gz"))
	assert.False(t, exts.Allowed("README"))
	assert.False(t, exts.Allowed("trailing."))
	assert.Equal(t, []string{".csv", ".json", ".txt"}, exts.List())
	assert.Equal(t, ".csv, .json, .txt", exts.String())
}

func TestDefaultExtensions(t *testing.T) {
	exts := NewExtensions(DefaultExtensions)
	for _, name := range []string{"a.txt", "b.py", "c.bat", "d.hpp"} {
		assert.True(t, exts.Allowed(name), name)
	}
	assert.False(t, exts.Allowed("e.exe"))
}
