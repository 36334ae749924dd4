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

import (
	"fmt"
	"time"

	"github.com/swtpc/term8212/environment"
	"github.com/swtpc/term8212/hardware/scheduler"
	"github.com/swtpc/term8212/hardware/serial"
	"github.com/swtpc/term8212/logger"
)

// Connections to the outside world. Any of the fields can be nil. The
// functions are called only when the level of the output changes.
type Connections struct {
	TXD  func(state bool)
	DTR  func(state bool)
	RTS  func(state bool)
	Out1 func(state bool)
	Out2 func(state bool)
	INT  func(state bool)
}

// UART represents an INS8250.
type UART struct {
	env  *environment.Environment
	conn Connections

	tx *serial.Transmitter
	rx *serial.Receiver

	rbr uint8
	thr uint8
	ier uint8
	lcr uint8
	mcr uint8
	lsr uint8
	msr uint8
	scr uint8
	dll uint8
	dlm uint8

	// the THRE interrupt is cleared by reading the IIR or by writing to the
	// THR. it is not the same as the THRE bit in the LSR
	threPending bool

	// level of the transmitter output before it reaches the TXD pin
	txBit bool

	// levels of the input pins
	rxdPin bool
	ctsPin bool
	dsrPin bool
	riPin  bool
	dcdPin bool

	// levels of the output pins as last reported
	pins [5]bool

	intState bool

	// format and rate as last logged
	format serial.Format
	period time.Duration
}

// index into pins array.
const (
	pinTXD = iota
	pinDTR
	pinRTS
	pinOut1
	pinOut2
)

// NewUART is the preferred method of initialisation for the UART type.
func NewUART(env *environment.Environment, sch *scheduler.Scheduler, conn Connections) *UART {
	u := &UART{
		env:    env,
		conn:   conn,
		txBit:  true,
		rxdPin: true,
		ctsPin: true,
		dsrPin: true,
		riPin:  true,
		dcdPin: true,
		lsr:    LSRTHRE | LSRTEMT,
		dll:    0x0c,
	}

	for i := range u.pins {
		u.pins[i] = true
	}

	u.tx = serial.NewTransmitter(sch, "uart tx", u.txLine, u.txDone)
	u.rx = serial.NewReceiver(sch, "uart rx", u.received)
	u.updateFormat()

	return u
}

func (u *UART) String() string {
	return fmt.Sprintf("uart: %s lcr=%02x lsr=%02x msr=%02x ier=%02x mcr=%02x",
		u.Rate(), u.lcr, u.lsr, u.msr, u.ier, u.mcr)
}

// Rate returns a string describing the baud rate and frame format. For
// example, "9600 8N1".
func (u *UART) Rate() string {
	return fmt.Sprintf("%d %s", u.Baud(), u.Format())
}

// Divisor returns the current value of the divisor latch. A divisor of zero
// is treated as 65536.
func (u *UART) Divisor() int {
	d := int(u.dlm)<<8 | int(u.dll)
	if d == 0 {
		d = 0x10000
	}
	return d
}

// Baud returns the baud rate selected by the divisor latch.
func (u *UART) Baud() int {
	return Clock / (16 * u.Divisor())
}

// BitPeriod returns the duration of one bit.
func (u *UART) BitPeriod() time.Duration {
	return time.Duration(float64(16*u.Divisor()) * float64(time.Second) / Clock)
}

// Format returns the frame format selected by the LCR.
func (u *UART) Format() serial.Format {
	f := serial.Format{
		DataBits: 5 + int(u.lcr&LCRWordLength),
		StopBits: serial.StopOne,
	}

	if u.lcr&LCRStopBits != 0 {
		if f.DataBits == 5 {
			f.StopBits = serial.StopOneAndHalf
		} else {
			f.StopBits = serial.StopTwo
		}
	}

	if u.lcr&LCRParity != 0 {
		switch {
		case u.lcr&LCRStick != 0 && u.lcr&LCREven != 0:
			f.Parity = serial.ParitySpace
		case u.lcr&LCRStick != 0:
			f.Parity = serial.ParityMark
		case u.lcr&LCREven != 0:
			f.Parity = serial.ParityEven
		default:
			f.Parity = serial.ParityOdd
		}
	}

	return f
}

func (u *UART) updateFormat() {
	f := u.Format()
	p := u.BitPeriod()
	u.tx.SetFormat(f, p)
	u.rx.SetFormat(f, p)

	if f != u.format || p != u.period {
		u.format = f
		u.period = p
		logger.Logf(u.env, "uart", "line set to %s", u.Rate())
	}
}

// Reset the UART. The divisor latch, the receive buffer and the scratch
// register are unaffected.
func (u *UART) Reset() {
	u.tx.Reset()
	u.rx.Reset()

	u.ier = 0
	u.lcr = 0
	u.mcr = 0
	u.lsr = LSRTHRE | LSRTEMT
	u.msr &^= msrDeltas
	u.threPending = false

	u.updateFormat()
	u.updateMSR()
	u.updatePins()
	u.updateINT()
}

// Read a register. Reading RBR, IIR, LSR and MSR has side effects. See
// Peek() for a side effect free alternative.
func (u *UART) Read(reg uint8) uint8 {
	switch reg & 0x07 {
	case RegRBR:
		if u.lcr&LCRDLAB != 0 {
			return u.dll
		}
		u.lsr &^= LSRDataReady
		u.updateINT()
		return u.rbr
	case RegIER:
		if u.lcr&LCRDLAB != 0 {
			return u.dlm
		}
		return u.ier
	case RegIIR:
		v := u.iir()
		if v == IIRTHRE {
			u.threPending = false
			u.updateINT()
		}
		return v
	case RegLSR:
		v := u.lsr
		u.lsr &^= lsrErrors
		u.updateINT()
		return v
	case RegMSR:
		v := u.msr
		u.msr &^= msrDeltas
		u.updateINT()
		return v
	}
	return u.Peek(reg)
}

// Peek returns the value of a register without side effects.
func (u *UART) Peek(reg uint8) uint8 {
	switch reg & 0x07 {
	case RegRBR:
		if u.lcr&LCRDLAB != 0 {
			return u.dll
		}
		return u.rbr
	case RegIER:
		if u.lcr&LCRDLAB != 0 {
			return u.dlm
		}
		return u.ier
	case RegIIR:
		return u.iir()
	case RegLCR:
		return u.lcr
	case RegMCR:
		return u.mcr
	case RegLSR:
		return u.lsr
	case RegMSR:
		return u.msr
	}
	return u.scr
}

// Write a register.
func (u *UART) Write(reg uint8, data uint8) {
	switch reg & 0x07 {
	case RegTHR:
		if u.lcr&LCRDLAB != 0 {
			u.dll = data
			u.updateFormat()
			return
		}
		u.thr = data
		u.lsr &^= LSRTHRE
		u.threPending = false
		u.startTX()
		u.updateINT()
	case RegIER:
		if u.lcr&LCRDLAB != 0 {
			u.dlm = data
			u.updateFormat()
			return
		}
		u.ier = data & ierMask

		// enabling the THRE interrupt while the THR is empty raises the
		// interrupt immediately
		if u.ier&IERTHRE != 0 && u.lsr&LSRTHRE != 0 {
			u.threPending = true
		}
		u.updateINT()
	case RegIIR:
		// no FIFO control register on the 8250
	case RegLCR:
		brk := (u.lcr^data)&LCRBreak != 0
		u.lcr = data
		u.updateFormat()
		if brk {
			u.tx.Break(u.lcr&LCRBreak != 0)
		}
	case RegMCR:
		loop := (u.mcr^data)&MCRLoop != 0
		u.mcr = data & mcrMask
		if loop {
			u.rx.Reset()
			u.rx.Line(u.rxLevel())
		}
		u.updatePins()
		u.updateMSR()
	case RegLSR:
		// the LSR can be written on the 8250 but it is intended only for
		// factory testing
		u.lsr = (u.lsr & LSRTEMT) | (data &^ LSRTEMT)
		u.updateINT()
	case RegMSR:
		u.msr = (u.msr &^ msrDeltas) | (data & msrDeltas)
		u.updateINT()
	case RegSCR:
		u.scr = data
	}
}

func (u *UART) loopback() bool {
	return u.mcr&MCRLoop != 0
}

// move the THR to the shift register if the shift register is empty.
func (u *UART) startTX() {
	if u.lsr&LSRTHRE != 0 || u.tx.Busy() {
		return
	}
	u.lsr &^= LSRTEMT
	u.tx.Send(u.thr & u.Format().Mask())
	u.lsr |= LSRTHRE
	u.threPending = true
}

func (u *UART) txDone() {
	if u.lsr&LSRTHRE == 0 {
		u.startTX()
	} else {
		u.lsr |= LSRTEMT
	}
	u.updateINT()
}

// the transmitter output. in loopback mode the serial output is connected
// to the serial input and the TXD pin is held high.
func (u *UART) txLine(level bool) {
	u.txBit = level
	u.updatePins()
	if u.loopback() {
		u.rx.Line(level)
	}
}

func (u *UART) received(data uint8, status serial.Status) {
	if u.lsr&LSRDataReady != 0 {
		u.lsr |= LSROverrun
		logger.Log(u.env, "uart", "overrun")
	}
	if status&serial.ParityError != 0 {
		u.lsr |= LSRParity
	}
	if status&serial.Break != 0 {
		u.lsr |= LSRBreak
		data = 0
	} else if status&serial.FramingError != 0 {
		u.lsr |= LSRFraming
		logger.Log(u.env, "uart", "framing error")
	}

	u.rbr = data
	u.lsr |= LSRDataReady
	u.updateINT()
}

// the level seen by the receiver.
func (u *UART) rxLevel() bool {
	if u.loopback() {
		return u.txBit
	}
	return u.rxdPin
}

// RX sets the level of the RXD pin.
func (u *UART) RX(state bool) {
	u.rxdPin = state
	if !u.loopback() {
		u.rx.Line(state)
	}
}

// CTS sets the level of the CTS pin.
func (u *UART) CTS(state bool) {
	u.ctsPin = state
	u.updateMSR()
}

// DSR sets the level of the DSR pin.
func (u *UART) DSR(state bool) {
	u.dsrPin = state
	u.updateMSR()
}

// DCD sets the level of the DCD pin.
func (u *UART) DCD(state bool) {
	u.dcdPin = state
	u.updateMSR()
}

// RI sets the level of the RI pin.
func (u *UART) RI(state bool) {
	u.riPin = state
	u.updateMSR()
}

// recalculate the modem status bits and the delta bits.
func (u *UART) updateMSR() {
	var v uint8

	if u.loopback() {
		v = (u.mcr & MCRRTS) << 3
		v |= (u.mcr & MCRDTR) << 5
		v |= (u.mcr & MCROut1) << 4
		v |= (u.mcr & MCROut2) << 4
	} else {
		if !u.ctsPin {
			v |= MSRCTS
		}
		if !u.dsrPin {
			v |= MSRDSR
		}
		if !u.riPin {
			v |= MSRRI
		}
		if !u.dcdPin {
			v |= MSRDCD
		}
	}

	changed := (u.msr ^ v) & ^msrDeltas
	if changed&MSRCTS != 0 {
		u.msr |= MSRDeltaCTS
	}
	if changed&MSRDSR != 0 {
		u.msr |= MSRDeltaDSR
	}
	if changed&MSRDCD != 0 {
		u.msr |= MSRDeltaDCD
	}

	// trailing edge of RI only
	if changed&MSRRI != 0 && v&MSRRI == 0 {
		u.msr |= MSRTrailRI
	}

	u.msr = (u.msr & msrDeltas) | v
	u.updateINT()
}

// drive the output pins and report any changes. in loopback mode the outputs
// are held inactive.
func (u *UART) updatePins() {
	var pins [5]bool
	if u.loopback() {
		for i := range pins {
			pins[i] = true
		}
	} else {
		pins[pinTXD] = u.txBit
		pins[pinDTR] = u.mcr&MCRDTR == 0
		pins[pinRTS] = u.mcr&MCRRTS == 0
		pins[pinOut1] = u.mcr&MCROut1 == 0
		pins[pinOut2] = u.mcr&MCROut2 == 0
	}

	for i, f := range []func(bool){u.conn.TXD, u.conn.DTR, u.conn.RTS, u.conn.Out1, u.conn.Out2} {
		if pins[i] == u.pins[i] {
			continue
		}
		u.pins[i] = pins[i]
		if f != nil {
			f(pins[i])
		}
	}
}

// TXD returns the level of the TXD pin.
func (u *UART) TXD() bool {
	return u.pins[pinTXD]
}

// DTR returns the level of the DTR pin.
func (u *UART) DTR() bool {
	return u.pins[pinDTR]
}

// RTS returns the level of the RTS pin.
func (u *UART) RTS() bool {
	return u.pins[pinRTS]
}

// the highest priority pending interrupt.
func (u *UART) iir() uint8 {
	switch {
	case u.ier&IERLine != 0 && u.lsr&lsrErrors != 0:
		return IIRStatus
	case u.ier&IERData != 0 && u.lsr&LSRDataReady != 0:
		return IIRData
	case u.ier&IERTHRE != 0 && u.threPending:
		return IIRTHRE
	case u.ier&IERModem != 0 && u.msr&msrDeltas != 0:
		return IIRModem
	}
	return IIRNone
}

func (u *UART) updateINT() {
	s := u.iir() != IIRNone
	if s == u.intState {
		return
	}
	u.intState = s
	if u.conn.INT != nil {
		u.conn.INT(s)
	}
}

// INT returns the state of the interrupt output.
func (u *UART) INT() bool {
	return u.intState
}
