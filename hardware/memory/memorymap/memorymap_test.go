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

package memorymap_test

import (
	"strings"
	"testing"

	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/hardware/memory/memorymap"
	"github.com/swtpc/term8212/test"
)

func TestValidate(t *testing.T) {
	test.ExpectSuccess(t, memorymap.Validate(memorymap.Table) == nil)

	gap := []memorymap.Range{
		{0x0000, 0x00ff, memorymap.RAM},
		{0x0200, 0xffff, memorymap.Unmapped},
	}
	test.ExpectSuccess(t, curated.Is(memorymap.Validate(gap), memorymap.TableGap))

	overlap := []memorymap.Range{
		{0x0000, 0x00ff, memorymap.RAM},
		{0x00f0, 0xffff, memorymap.Unmapped},
	}
	test.ExpectSuccess(t, curated.Is(memorymap.Validate(overlap), memorymap.TableOverlap))

	short := []memorymap.Range{
		{0x0000, 0xfffe, memorymap.Unmapped},
	}
	test.ExpectSuccess(t, curated.Is(memorymap.Validate(short), memorymap.TableGap))

	// order of the table does not matter
	unordered := []memorymap.Range{
		{0x8000, 0xffff, memorymap.Unmapped},
		{0x0000, 0x7fff, memorymap.RAM},
	}
	test.ExpectSuccess(t, memorymap.Validate(unordered) == nil)
}

func TestMapAddress(t *testing.T) {
	type entry struct {
		address uint16
		offset  uint16
		area    memorymap.Area
	}

	for _, e := range []entry{
		{0x0000, 0x0000, memorymap.RAM},
		{0x007f, 0x007f, memorymap.RAM},
		{0x0081, 0x0001, memorymap.PIA0},
		{0x0085, 0x0000, memorymap.Unmapped},
		{0x0088, 0x0000, memorymap.CRTCAddress},
		{0x0089, 0x0000, memorymap.CRTCData},
		{0x008c, 0x0000, memorymap.Latch},
		{0x0095, 0x0005, memorymap.UART},
		{0x009b, 0x0003, memorymap.PIA1},
		{0x009c, 0x0000, memorymap.Unmapped},
		{0x4000, 0x0000, memorymap.VRAM},
		{0x4800, 0x0000, memorymap.VRAM},
		{0x5fff, 0x07ff, memorymap.VRAM},
		{0x6000, 0x0000, memorymap.Unmapped},
		{0xb800, 0x0000, memorymap.ROMLow},
		{0xbfff, 0x07ff, memorymap.ROMLow},
		{0xc000, 0x0800, memorymap.ROMHigh},
		{0xf800, 0x0800, memorymap.ROMHigh},
		{0xffff, 0x0fff, memorymap.ROMHigh},
	} {
		offset, area := memorymap.MapAddress(e.address)
		test.ExpectEquality(t, area, e.area, e.address)
		test.ExpectEquality(t, offset, e.offset, e.address)
	}

	test.ExpectSuccess(t, memorymap.IsArea(0x4123, memorymap.VRAM))
	test.ExpectFailure(t, memorymap.IsArea(0x4123, memorymap.RAM))
}

func TestSummary(t *testing.T) {
	s := memorymap.Summary()
	test.ExpectEquality(t, strings.Count(s, "\n"), len(memorymap.Table))
	test.ExpectSuccess(t, strings.HasPrefix(s, "0000 -> 007f\tRAM\n"))
}
