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

package rom_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/hardware/memory/rom"
	"github.com/swtpc/term8212/logger"
	"github.com/swtpc/term8212/test"
)

func image(size int, fill uint8) []uint8 {
	d := make([]uint8, size)
	for i := range d {
		d[i] = fill
	}
	return d
}

func TestLoadSingle(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "8212.bin")
	test.DemandSuccess(t, os.WriteFile(pth, image(0x1000, 0xaa), 0o644))

	p, err := rom.Load(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Read(0x0000), uint8(0xaa))
	test.ExpectEquality(t, p.Read(0x0fff), uint8(0xaa))
}

func TestBlank(t *testing.T) {
	p := rom.Blank()
	test.ExpectEquality(t, p.Read(0x0000), uint8(0x00))
	test.ExpectEquality(t, p.Read(rom.StopBitAddress), uint8(0x00))

	p.StopBitPatch(logger.Allow, true)
	test.ExpectEquality(t, p.Read(rom.StopBitAddress), rom.StopBitValue)
	p.StopBitPatch(logger.Allow, false)
	test.ExpectEquality(t, p.Read(rom.StopBitAddress), uint8(0x00))
}

func TestLoadPair(t *testing.T) {
	dir := t.TempDir()
	ic1 := filepath.Join(dir, "ic1")
	ic2 := filepath.Join(dir, "ic2")
	test.DemandSuccess(t, os.WriteFile(ic1, image(0x800, 0x11), 0o644))
	test.DemandSuccess(t, os.WriteFile(ic2, image(0x800, 0x22), 0o644))

	p, err := rom.Load(ic1, ic2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Read(0x07ff), uint8(0x11))
	test.ExpectEquality(t, p.Read(0x0800), uint8(0x22))

	// wrong size for a single image
	_, err = rom.Load(ic1)
	test.ExpectSuccess(t, curated.Is(err, rom.ImageSize))

	_, err = rom.Load()
	test.ExpectSuccess(t, curated.Is(err, rom.ImageCount))

	_, err = rom.Load(filepath.Join(dir, "missing"))
	test.ExpectSuccess(t, curated.Is(err, rom.ImageLoad))
}

func TestStopBitPatch(t *testing.T) {
	p, err := rom.NewProgram(image(0x1000, 0x03))
	test.DemandSuccess(t, err)

	h := p.Hash()

	p.StopBitPatch(logger.Allow, true)
	test.ExpectSuccess(t, p.Patched())
	test.ExpectEquality(t, p.Read(rom.StopBitAddress), rom.StopBitValue)

	// hash is of the original image
	test.ExpectEquality(t, p.Hash(), h)

	// removing the patch restores the original byte
	p.StopBitPatch(logger.Allow, false)
	test.ExpectFailure(t, p.Patched())
	test.ExpectEquality(t, p.Read(rom.StopBitAddress), uint8(0x03))

	// poked values at the patch location are overwritten by the patch
	p.Poke(rom.StopBitAddress, 0xff)
	p.StopBitPatch(logger.Allow, true)
	test.ExpectEquality(t, p.Read(rom.StopBitAddress), rom.StopBitValue)
}
