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

// Package hostkeys reads the keyboard of the host terminal one byte at a
// time. When the input is a terminal it is put into raw mode so that every
// key, including control characters, is delivered immediately.
//
// Reading happens in a goroutine. Keys are collected with Poll() from the
// goroutine that advances the emulation.
package hostkeys
