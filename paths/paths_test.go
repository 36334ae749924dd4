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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/swtpc/term8212/paths"
	"github.com/swtpc/term8212/test"
)

func TestLocalResourcePath(t *testing.T) {
	dir := t.TempDir()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".term8212", 0700))

	pth, err := paths.ResourcePath("roms", "chargen1.bin")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".term8212", "roms", "chargen1.bin"))

	// sub-directory has been created
	_, err = os.Stat(filepath.Join(".term8212", "roms"))
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".term8212", "preferences"))
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("snapshot", "formatI", "png")
	test.ExpectSuccess(t, regexp.MustCompile(`^snapshot_formatI_\d{8}_\d{6}\.png$`).MatchString(fn))

	fn = paths.UniqueFilename("bell", "", ".wav")
	test.ExpectSuccess(t, regexp.MustCompile(`^bell_\d{8}_\d{6}\.wav$`).MatchString(fn))
}
