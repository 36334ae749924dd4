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

// Package serial implements asynchronous serial framing at the level of the
// wire. A frame is a start bit (low), five to eight data bits (least
// significant first), an optional parity bit and one, one and a half or two
// stop bits (high). The line idles high.
//
// The Transmitter and Receiver types are driven by the logical clock in the
// scheduler package. The Transmitter changes the level of a line at the
// correct time for each bit and the Receiver samples a line in the middle of
// each bit period.
//
// Both the UART and the devices at the far end of the RS232 cable use this
// package, so the terminal's serial traffic is always exchanged bit by bit.
package serial
