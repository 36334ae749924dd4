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

package paths

import (
	"strings"
	"time"
)

// layout of the timestamp in unique filenames
const timestamp = "20060102_150405"

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. The function does not check.
//
// The returned string is of the form:
//
//	prepend_label_YYYYMMDD_HHMMSS.ext
//
// The label part is omitted if the label is empty, as is the extension.
func UniqueFilename(prepend string, label string, ext string) string {
	parts := []string{prepend}
	if l := strings.TrimSpace(label); l != "" {
		parts = append(parts, l)
	}
	parts = append(parts, time.Now().Format(timestamp))

	fn := strings.Join(parts, "_")
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		fn = fn + "." + ext
	}

	return fn
}
