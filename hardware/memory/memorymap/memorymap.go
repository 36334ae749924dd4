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

package memorymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/swtpc/term8212/curated"
)

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case Unmapped:
		return "unmapped"
	case RAM:
		return "RAM"
	case PIA0:
		return "PIA0"
	case CRTCAddress:
		return "CRTC address"
	case CRTCData:
		return "CRTC data"
	case Latch:
		return "latch"
	case UART:
		return "UART"
	case PIA1:
		return "PIA1"
	case VRAM:
		return "VRAM"
	case ROMLow:
		return "ROM (low)"
	case ROMHigh:
		return "ROM (high)"
	}

	return "undefined"
}

// The different memory areas in the terminal.
const (
	Unmapped Area = iota
	RAM
	PIA0
	CRTCAddress
	CRTCData
	Latch
	UART
	PIA1
	VRAM
	ROMLow
	ROMHigh

	// the number of areas, including Unmapped
	NumAreas
)

// The origin and memory top for each area of memory.
const (
	OriginRAM         = uint16(0x0000)
	MemtopRAM         = uint16(0x007f)
	OriginPIA0        = uint16(0x0080)
	MemtopPIA0        = uint16(0x0083)
	OriginCRTCAddress = uint16(0x0088)
	MemtopCRTCAddress = uint16(0x0088)
	OriginCRTCData    = uint16(0x0089)
	MemtopCRTCData    = uint16(0x0089)
	OriginLatch       = uint16(0x008c)
	MemtopLatch       = uint16(0x008c)
	OriginUART        = uint16(0x0090)
	MemtopUART        = uint16(0x0097)
	OriginPIA1        = uint16(0x0098)
	MemtopPIA1        = uint16(0x009b)
	OriginVRAM        = uint16(0x4000)
	MemtopVRAM        = uint16(0x5fff)
	OriginROMLow      = uint16(0xb800)
	MemtopROMLow      = uint16(0xbfff)
	OriginROMHigh     = uint16(0xc000)
	MemtopROMHigh     = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// Sizes of the memory areas that are backed by storage. The ROM size is the
// size of the entire firmware image.
const (
	SizeRAM  = 0x80
	SizeVRAM = 0x800
	SizeROM  = 0x1000
)

// Masks to remove the mirrors from the VRAM and the upper ROM.
const (
	MaskVRAM = uint16(0x07ff)
	MaskROM  = uint16(0x07ff)
)

// Range is an entry in the address table.
type Range struct {
	Origin uint16
	Memtop uint16
	Area   Area
}

func (r Range) String() string {
	return fmt.Sprintf("%04x -> %04x\t%s", r.Origin, r.Memtop, r.Area)
}

// Table is the address decoding table of the terminal.
var Table = []Range{
	{OriginRAM, MemtopRAM, RAM},
	{OriginPIA0, MemtopPIA0, PIA0},
	{0x0084, 0x0087, Unmapped},
	{OriginCRTCAddress, MemtopCRTCAddress, CRTCAddress},
	{OriginCRTCData, MemtopCRTCData, CRTCData},
	{0x008a, 0x008b, Unmapped},
	{OriginLatch, MemtopLatch, Latch},
	{0x008d, 0x008f, Unmapped},
	{OriginUART, MemtopUART, UART},
	{OriginPIA1, MemtopPIA1, PIA1},
	{0x009c, 0x3fff, Unmapped},
	{OriginVRAM, MemtopVRAM, VRAM},
	{0x6000, 0xb7ff, Unmapped},
	{OriginROMLow, MemtopROMLow, ROMLow},
	{OriginROMHigh, MemtopROMHigh, ROMHigh},
}

// Sentinal error patterns.
const (
	TableGap     = "memorymap: gap in address table at %04x"
	TableOverlap = "memorymap: overlap in address table at %04x"
	TableRange   = "memorymap: bad range in address table (%v)"
)

// Validate checks that a table covers every address exactly once.
func Validate(table []Range) error {
	t := make([]Range, len(table))
	copy(t, table)
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].Origin < t[j].Origin
	})

	next := uint32(0)
	for _, r := range t {
		if r.Memtop < r.Origin {
			return curated.Errorf(TableRange, r)
		}
		if uint32(r.Origin) < next {
			return curated.Errorf(TableOverlap, r.Origin)
		}
		if uint32(r.Origin) > next {
			return curated.Errorf(TableGap, next)
		}
		next = uint32(r.Memtop) + 1
	}

	if next != uint32(Memtop)+1 {
		return curated.Errorf(TableGap, next)
	}

	return nil
}

// lookup is indexed by address. built from the Table by init().
var lookup [int(Memtop) + 1]Area

func init() {
	if err := Validate(Table); err != nil {
		panic(err)
	}
	for _, r := range Table {
		for a := uint32(r.Origin); a <= uint32(r.Memtop); a++ {
			lookup[a] = r.Area
		}
	}
}

// MapAddress returns the area of an address and the offset of the address
// within the area. Mirrors are removed. The offset into the upper ROM area is
// the offset into the entire firmware image.
func MapAddress(address uint16) (uint16, Area) {
	area := lookup[address]

	switch area {
	case RAM:
		return address - OriginRAM, area
	case PIA0:
		return address - OriginPIA0, area
	case UART:
		return address - OriginUART, area
	case PIA1:
		return address - OriginPIA1, area
	case VRAM:
		return (address - OriginVRAM) & MaskVRAM, area
	case ROMLow:
		return address - OriginROMLow, area
	case ROMHigh:
		return 0x0800 + (address & MaskROM), area
	}

	return 0, area
}

// IsArea returns true if the address is in the specificied area.
func IsArea(address uint16, area Area) bool {
	return lookup[address] == area
}

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	s := strings.Builder{}
	for _, r := range Table {
		s.WriteString(r.String())
		s.WriteString("\n")
	}
	return s.String()
}
