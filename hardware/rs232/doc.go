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

// Package rs232 connects the terminal's serial lines to a device at the far
// end of an RS232 cable.
//
// The Port type sits between the two. Transmitted data and the remote
// device's status lines pass through unchanged but two of the terminal's
// control lines are wired by the connector rather than by the cable:
//
//	terminal RTS -> terminal CTS (always)
//	terminal DTR -> remote CTS (only when flow control is "dtr")
//
// The flow control preference is consulted on every DTR transition, so it
// can be changed while the terminal is running.
//
// Construction is in steps because the terminal needs the port's line
// functions before it exists and a device that shares the terminal's clock
// can only be made afterwards:
//
//	port := rs232.NewPort(env, nil)
//	term := hardware.NewTerminal(env, prg, std, alt, hardware.Connections{
//		TXD: port.TerminalTXD,
//		DTR: port.TerminalDTR,
//		RTS: port.TerminalRTS,
//	})
//	port.Attach(term)
//	port.Plug(device)
//	port.Reset()
package rs232
