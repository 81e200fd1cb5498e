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

package help

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syntaxshift/internal/ops"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
}

func TestDefaultCoversEveryCommand(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)
	for _, op := range ops.Commands() {
		text, ok := store.Lookup(op.Name)
		assert.True(t, ok, "missing help for %s", op)
		assert.Contains(t, text, op.Name)
		assert.NotEmpty(t, store.Info[op.Name], "missing summary for %s", op)
	}
}

func TestRenderGolden(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)
	g := newGoldie(t)

	g.Assert(t, "overview", []byte(store.Render("")))
	g.Assert(t, "help_create", []byte(store.Render("create")))
	g.Assert(t, "help_modify", []byte(store.Render("modify")))
	g.Assert(t, "help_unknown", []byte(store.Render("frobnicate")))
}

func TestLookupNotFound(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)
	_, ok := store.Lookup("help")
	assert.False(t, ok)
	_, ok = store.Lookup("frobnicate")
	assert.False(t, ok)
}

func TestLoadOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "custom.yaml", []byte("general:\n  pwd: where am I\ninfo:\n  pwd: location\n"), 0o644))

	store, err := Load(fs, "custom.yaml")
	require.NoError(t, err)
	text, ok := store.Lookup("pwd")
	require.True(t, ok)
	assert.Equal(t, "where am I", text)
	assert.Equal(t, "location", store.Info["pwd"])

	_, ok = store.Lookup("create")
	assert.True(t, ok, "entries not overridden keep their embedded text")
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Load(fs, "missing.yaml")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte("general: [unterminated"), 0o644))
	_, err = Load(fs, "bad.yaml")
	assert.Error(t, err)
}

func TestLoadWithoutOverride(t *testing.T) {
	store, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	_, ok := store.Lookup("list")
	assert.True(t, ok)
}
