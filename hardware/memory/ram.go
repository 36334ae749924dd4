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

package memory

import (
	"fmt"
	"strings"

	"github.com/swtpc/term8212/hardware/memory/memorymap"
)

// RAM is the general purpose memory of the terminal.
type RAM struct {
	memory [memorymap.SizeRAM]uint8
}

func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < memorymap.SizeRAM/16; y++ {
		s.WriteString(fmt.Sprintf("%X- | ", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Read a byte. The offset is from the origin of RAM.
func (ram *RAM) Read(offset uint16) uint8 {
	return ram.memory[offset%memorymap.SizeRAM]
}

// Write a byte. The offset is from the origin of RAM.
func (ram *RAM) Write(offset uint16, data uint8) {
	ram.memory[offset%memorymap.SizeRAM] = data
}

// Clear RAM to zero.
func (ram *RAM) Clear() {
	for i := range ram.memory {
		ram.memory[i] = 0
	}
}

// VRAM is the display memory. Bit 7 of each byte selects the high intensity
// green and the remaining bits are the character code.
type VRAM struct {
	memory [memorymap.SizeVRAM]uint8
}

// Read a byte. Offsets wrap around at the end of the VRAM.
func (vram *VRAM) Read(offset uint16) uint8 {
	return vram.memory[offset&memorymap.MaskVRAM]
}

// Write a byte. Offsets wrap around at the end of the VRAM.
func (vram *VRAM) Write(offset uint16, data uint8) {
	vram.memory[offset&memorymap.MaskVRAM] = data
}

// Load copies data into VRAM starting at offset zero. Data beyond the size of
// the VRAM wraps around.
func (vram *VRAM) Load(data []uint8) {
	for i, d := range data {
		vram.Write(uint16(i), d)
	}
}

// Snapshot returns a copy of the VRAM contents.
func (vram *VRAM) Snapshot() []uint8 {
	d := make([]uint8, len(vram.memory))
	copy(d, vram.memory[:])
	return d
}

// Clear fills the VRAM with the value.
func (vram *VRAM) Clear(fill uint8) {
	for i := range vram.memory {
		vram.memory[i] = fill
	}
}
