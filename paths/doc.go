// This file is part of term8212.
//
// term8212 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// term8212 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with term8212.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths to term8212 resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following returns the path
// to the preferences file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// The policy is simple: if a directory called ".term8212" is present in the
// program's current directory then that is the base path. Otherwise the
// user's config directory is used, as returned by os.UserConfigDir(). On a
// modern Linux system the example above will return:
//
//	/home/user/.config/term8212/preferences
//
// Directories are created as required, but the resource file itself is not.
package paths
