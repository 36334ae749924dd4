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

// Package uart implements the INS8250 asynchronous communications element.
//
// Register offsets:
//
//	0	RBR (read), THR (write), DLL when LCR bit 7 (DLAB) is set
//	1	IER, DLM when DLAB is set
//	2	IIR (read only)
//	3	LCR
//	4	MCR
//	5	LSR
//	6	MSR
//	7	SCR
//
// The baud rate is the input clock divided by sixteen times the divisor. The
// input clock is fixed at 1.8432MHz.
//
// Serial data is clocked bit by bit on the logical clock. Received frames are
// checked for parity, framing and break conditions. A frame received while
// the previous frame is unread sets the overrun flag.
//
// The modem control outputs (DTR, RTS, OUT1, OUT2) and the modem status
// inputs (CTS, DSR, RI, DCD) are active low. Setting the DTR bit in the MCR
// drives the DTR pin low. Similarly, a low level on the CTS pin sets the CTS
// bit in the MSR. The TXD and RXD lines idle high.
//
// Interrupt sources in priority order are: receiver line status, received
// data available, transmitter holding register empty and modem status. The
// INT output is high when any enabled source is pending.
package uart
