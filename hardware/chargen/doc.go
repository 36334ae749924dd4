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

// Package chargen holds the character generator images of the terminal.
//
// There are two generators. The first is the MCM66750 mask ROM with the
// standard character set and the second is an EPROM containing the graphics
// set. Which generator is used is selected by bit 6 of the control latch.
//
// Each image is 2k. A glyph row is addressed by the lower seven bits of the
// character code and the lower four bits of the row address:
//
//	(code & 0x7f) | (row & 0x0f) << 7
//
// Rows sixteen and above are always blank.
package chargen
