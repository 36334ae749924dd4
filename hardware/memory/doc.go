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

// Package memory implements the address decoding of the terminal. The Memory
// type implements the bus.CPUBus and bus.DebuggerBus interfaces and routes
// every access to the area given by the address table in the memorymap
// package.
//
// The RAM, the Video RAM and the ROM are owned by the Memory type. The other
// areas (the PIAs, the CRTC, the control latch and the UART) are owned by the
// terminal, which supplies a Handler for each of them when the Memory is
// created. A table entry without a handler is a programming fault and causes
// a panic when the Memory is created.
//
// Reads of write-only areas and of unmapped addresses return zero. Writes to
// read-only areas and unmapped addresses are ignored. The first such access
// to any address is logged.
package memory
