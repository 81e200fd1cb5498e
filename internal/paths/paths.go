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

package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// MaxPathLength bounds path arguments accepted from user input.
const MaxPathLength = 4096

// ValidatePathString validates a raw path argument before it is probed.
func ValidatePathString(path string, maxLen int) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if strings.IndexByte(path, 0) != -1 {
		return fmt.Errorf("path contains null byte")
	}
	if !utf8.ValidString(path) {
		return fmt.Errorf("path is not valid UTF-8")
	}
	if maxLen > 0 {
		if len(path) > maxLen {
			return fmt.Errorf("path exceeds maximum length of %d characters", maxLen)
		}
		if len(filepath.Clean(path)) > maxLen {
			return fmt.Errorf("path exceeds maximum length of %d characters", maxLen)
		}
	}
	return nil
}

// Probe answers existence questions against a filesystem.
type Probe struct {
	fs afero.Fs
}

// NewProbe wraps fs. A nil fs probes the host filesystem.
func NewProbe(fs afero.Fs) *Probe {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Probe{fs: fs}
}

// Fs returns the underlying filesystem.
func (p *Probe) Fs() afero.Fs {
	return p.fs
}

// Exists reports whether path exists. Paths that fail string validation or
// cannot be stat'ed for reasons other than absence are reported as missing.
func (p *Probe) Exists(path string) bool {
	if ValidatePathString(path, MaxPathLength) != nil {
		return false
	}
	_, err := p.fs.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func (p *Probe) IsDir(path string) bool {
	if ValidatePathString(path, MaxPathLength) != nil {
		return false
	}
	info, err := p.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
