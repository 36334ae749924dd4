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

// Package pia implements the MC6821 Peripheral Interface Adapter.
//
// The chip has two eight bit ports (A and B) and four control lines (CA1,
// CA2, CB1 and CB2). Each port has a data direction register (DDR), an output
// register and a control register. The CPU sees four registers:
//
//	0	DDR A or port A data, selected by bit 2 of control register A
//	1	control register A
//	2	DDR B or port B data, selected by bit 2 of control register B
//	3	control register B
//
// Control register layout:
//
//	bit 0	C1 interrupt enable
//	bit 1	C1 active transition. 0 = high to low, 1 = low to high
//	bit 2	0 = DDR, 1 = output register
//	bit 3-5	C2 control (see below)
//	bit 6	IRQ2 flag (read only)
//	bit 7	IRQ1 flag (read only)
//
// When bit 5 is clear C2 is an input: bit 3 enables the C2 interrupt and bit
// 4 selects the active transition. When bit 5 is set C2 is an output. If bit
// 4 is also set, C2 follows bit 3. Otherwise C2 is a strobe: for port A it
// goes low on a read of the data register and for port B it goes low on a
// write to the data register. With bit 3 clear (handshake) it returns high on
// the next active C1 transition and with bit 3 set (pulse) it returns high
// immediately.
//
// The IRQ flags are cleared by reading the port's data register.
//
// The outside world is connected to the PIA through the function fields of
// the Connections type. The functions are called synchronously.
package pia
