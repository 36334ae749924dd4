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

package hardware

import (
	"strings"

	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/hardware/crtc"
	"github.com/swtpc/term8212/hardware/memory/memorymap"
)

// Sentinal error patterns.
const (
	UnknownFormat = "terminal: unknown screen format (%s)"
)

// Format is a preset for one of the documented screen formats. Each format
// is a set of CRTC register values and a value for the control latch. The
// register values are derived from the documented screen geometry.
type Format struct {
	Name  string
	Regs  [crtc.RegCursorH]uint8
	Latch uint8
}

func format(name string, hdisp, hsync, vtotal, vadj, vdisp, vsync, maxra uint8, latch uint8) Format {
	return Format{
		Name: name,
		Regs: [crtc.RegCursorH]uint8{
			crtc.RegHTotal:    101,
			crtc.RegHDisp:     hdisp,
			crtc.RegHSync:     hsync,
			crtc.RegSyncWidth: 10,
			crtc.RegVTotal:    vtotal,
			crtc.RegVAdjust:   vadj,
			crtc.RegVDisp:     vdisp,
			crtc.RegVSync:     vsync,
			crtc.RegMaxRA:     maxra,

			// blinking underline cursor on the last scanline of the row
			crtc.RegCurStart: 0x40 | maxra,
			crtc.RegCurEnd:   maxra,
		},
		Latch: latch,
	}
}

// The screen formats of the terminal. Formats III and IV are formats I and II
// with the alternate character set.
var (
	FormatI        = format("I", 82, 86, 21, 2, 20, 21, 13, LatchReset)
	FormatII       = format("II", 82, 86, 24, 10, 24, 24, 11, LatchReset)
	FormatIII      = format("III", 82, 86, 21, 2, 20, 21, 13, LatchReset|LatchCharSet)
	FormatIV       = format("IV", 82, 86, 24, 10, 24, 24, 11, LatchReset|LatchCharSet)
	FormatGraphics = format("G", 92, 96, 24, 10, 22, 23, 11, LatchReset|LatchCharSet|LatchCharWidth)
)

// Formats lists all screen formats.
var Formats = []Format{FormatI, FormatII, FormatIII, FormatIV, FormatGraphics}

// ParseFormat returns the Format with the name. Case insensitive.
func ParseFormat(name string) (Format, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "graphics") {
		return FormatGraphics, nil
	}
	for _, f := range Formats {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	return Format{}, curated.Errorf(UnknownFormat, name)
}

func (f Format) String() string {
	return f.Name
}

// SetFormat programs the CRTC and the control latch through the bus.
func (t *Terminal) SetFormat(f Format) {
	for reg, v := range f.Regs {
		t.Mem.Write(memorymap.OriginCRTCAddress, uint8(reg))
		t.Mem.Write(memorymap.OriginCRTCData, v)
	}
	t.Mem.Write(memorymap.OriginLatch, f.Latch)
}

// SetCursor moves the cursor through the bus.
func (t *Terminal) SetCursor(address uint16) {
	t.Mem.Write(memorymap.OriginCRTCAddress, crtc.RegCursorH)
	t.Mem.Write(memorymap.OriginCRTCData, uint8(address>>8))
	t.Mem.Write(memorymap.OriginCRTCAddress, crtc.RegCursorL)
	t.Mem.Write(memorymap.OriginCRTCData, uint8(address))
}
