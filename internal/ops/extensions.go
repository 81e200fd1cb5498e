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
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions is the file extension allow-list used when no
// configuration overrides it.
var DefaultExtensions = []string{
	".txt", ".pdf", ".docx", ".dat", ".csv", ".json", ".xml", ".html", ".css", ".js",
	".py", ".java", ".cpp", ".c", ".h", ".hpp", ".php", ".sql", ".sh", ".bat",
}

// Extensions is a case-insensitive extension allow-list.
type Extensions struct {
	set map[string]struct{}
}

// NewExtensions builds an allow-list. Entries without a leading dot get one.
func NewExtensions(exts []string) Extensions {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return Extensions{set: set}
}

// Allowed reports whether the final extension of path is on the list.
func (e Extensions) Allowed(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" || ext == "." {
		return false
	}
	_, ok := e.set[ext]
	return ok
}

// List returns the sorted allow-list.
func (e Extensions) List() []string {
	out := make([]string, 0, len(e.set))
	for ext := range e.set {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// String joins the allow-list for error messages.
func (e Extensions) String() string {
	return strings.Join(e.List(), ", ")
}
