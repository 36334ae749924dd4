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

// Package memorymap describes the address space of the terminal as seen by
// the CPU. The address space is divided into areas by an explicit table of
// address ranges. Every address in the 64k space is covered by exactly one
// range. Addresses that are not decoded by the hardware are in a range with
// the Unmapped area.
//
// Several areas are mirrored. The Video RAM appears four times between
// 0x4000 and 0x5fff and the upper 2k of ROM appears eight times between
// 0xc000 and 0xffff. MapAddress() returns the offset into the area with the
// mirrors removed.
package memorymap
