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

// Package hardware is the base package for the terminal emulation. The
// Terminal type owns every emulated component and connects them together.
//
// The host CPU is not part of the emulation. A CPU implementation drives the
// terminal through the Read() and Write() functions of the Mem field (which
// implements the bus.CPUBus interface) and receives interrupt requests
// through the IRQ function of the Connections type.
//
// Time is provided by the logical clock in the Scheduler field. The clock is
// moved forward with Advance() or Run(). Advancing the clock runs the UART
// bit timing, the bell timer and, once started, the CRTC scanline driver.
//
// The serial lines of the terminal are connected to the outside world through
// the Connections type (outputs) and the RXD(), CTS(), DSR(), DCD() and RI()
// functions (inputs). The rs232 package provides a Port type that uses these
// to wire the terminal to a downstream device in the same way as the real
// terminal's RS232 connector.
package hardware
