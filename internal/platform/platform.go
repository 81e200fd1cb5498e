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

package platform

import (
	"runtime"

	apperrors "syntaxshift/internal/errors"
)

// Platform is the host operating system family.
type Platform string

const (
	Windows Platform = "windows"
	Linux   Platform = "linux"
	Mac     Platform = "darwin"
)

// All lists the supported platforms.
func All() []Platform {
	return []Platform{Windows, Linux, Mac}
}

// IsPOSIX reports whether p uses the POSIX command set.
func (p Platform) IsPOSIX() bool {
	return p == Linux || p == Mac
}

// FromGOOS maps a GOOS value to a Platform.
func FromGOOS(goos string) (Platform, error) {
	switch goos {
	case "windows":
		return Windows, nil
	case "linux":
		return Linux, nil
	case "darwin":
		return Mac, nil
	}
	return "", apperrors.New(apperrors.CodeUnsupportedPlatform, "unsupported operating system: "+goos)
}

// Detect returns the platform of the running process.
func Detect() (Platform, error) {
	return FromGOOS(runtime.GOOS)
}
