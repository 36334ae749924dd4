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

package uart

// Clock is the frequency of the crystal driving the baud rate generator.
const Clock = 1843200

// Register offsets.
const (
	RegRBR = 0
	RegTHR = 0
	RegDLL = 0
	RegIER = 1
	RegDLM = 1
	RegIIR = 2
	RegLCR = 3
	RegMCR = 4
	RegLSR = 5
	RegMSR = 6
	RegSCR = 7
)

// NumRegisters is the number of CPU addressable registers in the UART.
const NumRegisters = 8

// Interrupt enable register bits.
const (
	IERData   = uint8(0x01)
	IERTHRE   = uint8(0x02)
	IERLine   = uint8(0x04)
	IERModem  = uint8(0x08)
	ierMask   = uint8(0x0f)
	IIRNone   = uint8(0x01)
	IIRModem  = uint8(0x00)
	IIRTHRE   = uint8(0x02)
	IIRData   = uint8(0x04)
	IIRStatus = uint8(0x06)
)

// Line control register bits.
const (
	LCRWordLength = uint8(0x03)
	LCRStopBits   = uint8(0x04)
	LCRParity     = uint8(0x08)
	LCREven       = uint8(0x10)
	LCRStick      = uint8(0x20)
	LCRBreak      = uint8(0x40)
	LCRDLAB       = uint8(0x80)
)

// Modem control register bits.
const (
	MCRDTR  = uint8(0x01)
	MCRRTS  = uint8(0x02)
	MCROut1 = uint8(0x04)
	MCROut2 = uint8(0x08)
	MCRLoop = uint8(0x10)
	mcrMask = uint8(0x1f)
)

// Line status register bits.
const (
	LSRDataReady = uint8(0x01)
	LSROverrun   = uint8(0x02)
	LSRParity    = uint8(0x04)
	LSRFraming   = uint8(0x08)
	LSRBreak     = uint8(0x10)
	LSRTHRE      = uint8(0x20)
	LSRTEMT      = uint8(0x40)
	lsrErrors    = LSROverrun | LSRParity | LSRFraming | LSRBreak
)

// Modem status register bits.
const (
	MSRDeltaCTS = uint8(0x01)
	MSRDeltaDSR = uint8(0x02)
	MSRTrailRI  = uint8(0x04)
	MSRDeltaDCD = uint8(0x08)
	MSRCTS      = uint8(0x10)
	MSRDSR      = uint8(0x20)
	MSRRI       = uint8(0x40)
	MSRDCD      = uint8(0x80)
	msrDeltas   = uint8(0x0f)
)
