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
	"image/color"

	"github.com/swtpc/term8212/hardware/chargen"
	"github.com/swtpc/term8212/hardware/memory/memorymap"
)

// Generator returns the character generator selected by the control latch.
func (t *Terminal) Generator() *chargen.Generator {
	if t.latch&LatchCharSet == 0 {
		return t.Chargen[0]
	}
	return t.Chargen[1]
}

// RenderRow fills the row with the pixels of one scanline. The arguments are
// the same as for the crtc.RowFunc type. Returns the number of pixels
// covered by the characters of the row, including the gaps. Pixels beyond
// the end of the row slice are dropped.
func (t *Terminal) RenderRow(row []color.RGBA, ma uint16, ra uint8, xCount int, cursorX int, de bool) int {
	gen := t.Generator()
	gap := t.latch&LatchCharWidth == 0

	x := 0
	for column := 0; column < xCount; column++ {
		code := t.Mem.VRAM.Read((ma + uint16(column)) & memorymap.MaskVRAM)
		cursor := column == cursorX
		data := gen.Glyph(code, ra)
		bright := code&0x80 != 0

		for bit := 0; bit < 8; bit++ {
			lit := (data&0x80 != 0) != cursor
			if x < len(row) {
				switch {
				case !lit || !de:
					row[x] = ColorBlack
				case bright:
					row[x] = ColorBright
				default:
					row[x] = ColorNormal
				}
			}
			x++
			data <<= 1
		}

		// one blank column between characters
		if gap {
			if x < len(row) {
				row[x] = ColorBlack
			}
			x++
		}
	}

	for i := x; i < len(row); i++ {
		row[i] = ColorBlack
	}

	return x
}

// renderRow implements the crtc.RowFunc type.
func (t *Terminal) renderRow(ma uint16, ra uint8, y int, xCount int, cursorX int, de bool) {
	if t.conn.TV == nil {
		return
	}
	t.RenderRow(t.row, ma, ra, xCount, cursorX, de)
	if err := t.conn.TV.SetRow(y, t.row); err != nil && t.err == nil {
		t.err = err
	}
}
