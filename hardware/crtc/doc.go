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

// Package crtc implements the MC6845 CRT controller.
//
// The CPU writes the number of a register to the address register and then
// reads or writes the register through the data register. The registers are:
//
//	R0	horizontal total (characters, minus one)
//	R1	horizontal displayed (characters)
//	R2	horizontal sync position
//	R3	sync width
//	R4	vertical total (character rows, minus one)
//	R5	vertical total adjust (scanlines)
//	R6	vertical displayed (character rows)
//	R7	vertical sync position
//	R8	interlace mode
//	R9	maximum scanline address (scanlines per row, minus one)
//	R10	cursor start scanline and blink mode
//	R11	cursor end scanline
//	R12/13	start address (high/low)
//	R14/15	cursor address (high/low)
//	R16/17	light pen address (high/low)
//
// Only R14 to R17 can be read. Reading any other register returns zero.
//
// The CRTC does not generate pixels. Once per scanline the Row function in
// the Connections type is called with the memory address of the first
// character in the row, the scanline within the character row, the raster
// line, the number of characters, the column of the cursor (or -1) and the
// display enable signal. The caller turns those values into pixels.
//
// Scanlines are timed on the logical clock. Each scanline lasts R0+1
// character clocks.
package crtc
