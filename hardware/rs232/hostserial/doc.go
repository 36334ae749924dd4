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

// Package hostserial bridges the terminal's RS232 port to a serial port on
// the host machine.
//
// The Bridge is a Device for the rs232 package. Frames sent by the terminal
// are assembled bit by bit with a serial.Receiver on the terminal's logical
// clock and written to the host port. Bytes read from the host port are sent
// to the terminal with a serial.Transmitter. The frame format and bit period
// on the emulated side follow the terminal's UART.
//
// Host I/O happens in two goroutines. The emulation side only ever touches
// channels, so Poll() must be called regularly from the goroutine that
// advances the terminal.
package hostserial
