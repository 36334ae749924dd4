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

// Package rom holds the firmware of the terminal. The firmware is a 4k image
// supplied either as one 4k file or as two 2k files, one for each of the
// EPROM sockets (ic1 followed by ic2).
//
// The first 2k of the image appears in the address space at 0xb800 and the
// second 2k at 0xc000 and its mirrors. See the memorymap package.
//
// The firmware configures the UART for two stop bits. The stop bit patch
// changes one byte of the image so that the firmware configures one stop bit
// instead.
package rom
