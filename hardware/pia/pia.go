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

package pia

import (
	"fmt"
)

// Control register bits.
const (
	CtlC1Enable     = uint8(0x01)
	CtlC1Rising     = uint8(0x02)
	CtlOutputSelect = uint8(0x04)
	CtlC2Bit3       = uint8(0x08)
	CtlC2Bit4       = uint8(0x10)
	CtlC2Output     = uint8(0x20)
	CtlIRQ2         = uint8(0x40)
	CtlIRQ1         = uint8(0x80)

	// the bits of the control register that can be written to
	ctlWriteMask = uint8(0x3f)
)

// NumRegisters is the number of CPU addressable registers in the PIA.
const NumRegisters = 4

// Connections to the outside world. Any of the fields can be nil.
type Connections struct {
	// ReadA and ReadB return the state of the port pins as driven by the
	// external device. Only the bits configured as inputs are used
	ReadA func() uint8
	ReadB func() uint8

	// WriteA and WriteB are called when the output of a port changes, either
	// because the output register or the DDR has been written to. Bits
	// configured as inputs are high on port A and low on port B
	WriteA func(data uint8)
	WriteB func(data uint8)

	// CA2 and CB2 are called when the output level of C2 changes
	CA2 func(state bool)
	CB2 func(state bool)

	// IRQA and IRQB are called when the state of the interrupt outputs change
	IRQA func(state bool)
	IRQB func(state bool)
}

// PIA represents an MC6821.
type PIA struct {
	label string
	conn  Connections

	a port
	b port
}

// NewPIA is the preferred method of initialisation for the PIA type. The
// label is used to identify the chip in log entries and in the String()
// output.
func NewPIA(label string, conn Connections) *PIA {
	pia := &PIA{
		label: label,
		conn:  conn,
	}

	pia.a = port{name: "A", c1: true, c2: true, c2out: true}
	pia.b = port{name: "B", c1: true, c2: true, c2out: true}

	return pia
}

// Label returns the label given to the PIA.
func (pia *PIA) Label() string {
	return pia.label
}

func (pia *PIA) String() string {
	return fmt.Sprintf("%s: %s %s", pia.label, pia.a.String(), pia.b.String())
}

// Reset the registers of the PIA. The levels of the input lines are
// unaffected.
func (pia *PIA) Reset() {
	for _, p := range []*port{&pia.a, &pia.b} {
		p.out = 0
		p.ddr = 0
		p.ctl = 0
		p.irq1 = false
		p.irq2 = false
	}

	pia.setC2(&pia.a, true)
	pia.setC2(&pia.b, true)
	pia.updateIRQ()
}

// Read a register. Reading the data register has side effects. See Peek()
// for a side effect free alternative.
func (pia *PIA) Read(reg uint8) uint8 {
	switch reg & 0x03 {
	case 0:
		if pia.a.ctl&CtlOutputSelect == 0 {
			return pia.a.ddr
		}
		v := pia.a.value(pia.conn.ReadA)
		pia.a.irq1 = false
		pia.a.irq2 = false
		pia.updateIRQ()
		pia.strobe(&pia.a)
		return v
	case 1:
		return pia.a.control()
	case 2:
		if pia.b.ctl&CtlOutputSelect == 0 {
			return pia.b.ddr
		}
		v := pia.b.value(pia.conn.ReadB)
		pia.b.irq1 = false
		pia.b.irq2 = false
		pia.updateIRQ()
		return v
	}

	return pia.b.control()
}

// Peek returns the value of a register without side effects.
func (pia *PIA) Peek(reg uint8) uint8 {
	switch reg & 0x03 {
	case 0:
		if pia.a.ctl&CtlOutputSelect == 0 {
			return pia.a.ddr
		}
		return pia.a.value(pia.conn.ReadA)
	case 1:
		return pia.a.control()
	case 2:
		if pia.b.ctl&CtlOutputSelect == 0 {
			return pia.b.ddr
		}
		return pia.b.value(pia.conn.ReadB)
	}
	return pia.b.control()
}

// Write a register.
func (pia *PIA) Write(reg uint8, data uint8) {
	switch reg & 0x03 {
	case 0:
		if pia.a.ctl&CtlOutputSelect == 0 {
			pia.a.ddr = data
		} else {
			pia.a.out = data
		}
		if pia.conn.WriteA != nil {
			pia.conn.WriteA((pia.a.out & pia.a.ddr) | ^pia.a.ddr)
		}
	case 1:
		pia.writeControl(&pia.a, data)
	case 2:
		if pia.b.ctl&CtlOutputSelect == 0 {
			pia.b.ddr = data
		} else {
			pia.b.out = data
		}
		if pia.conn.WriteB != nil {
			pia.conn.WriteB(pia.b.out & pia.b.ddr)
		}
		if pia.b.ctl&CtlOutputSelect != 0 {
			pia.strobe(&pia.b)
		}
	case 3:
		pia.writeControl(&pia.b, data)
	}
}

func (pia *PIA) writeControl(p *port, data uint8) {
	p.ctl = data & ctlWriteMask

	if p.c2Output() {
		if p.c2Manual() {
			pia.setC2(p, p.ctl&CtlC2Bit3 != 0)
		} else {
			pia.setC2(p, true)
		}
	}

	pia.updateIRQ()
}

// strobe is called when the CPU accesses the data register of a port. For
// port A that is a read and for port B a write.
func (pia *PIA) strobe(p *port) {
	if !p.c2Output() || p.c2Manual() {
		return
	}

	pia.setC2(p, false)

	// pulse mode returns high immediately. handshake mode waits for C1
	if p.ctl&CtlC2Bit3 != 0 {
		pia.setC2(p, true)
	}
}

func (pia *PIA) setC2(p *port, state bool) {
	if p.c2out == state {
		return
	}
	p.c2out = state

	var f func(bool)
	if p == &pia.a {
		f = pia.conn.CA2
	} else {
		f = pia.conn.CB2
	}
	if f != nil {
		f(state)
	}
}

// CA1 sets the level of the CA1 input.
func (pia *PIA) CA1(state bool) {
	pia.c1(&pia.a, state)
}

// CB1 sets the level of the CB1 input.
func (pia *PIA) CB1(state bool) {
	pia.c1(&pia.b, state)
}

// CA2 sets the level of the CA2 line when it is configured as an input.
func (pia *PIA) CA2(state bool) {
	pia.c2(&pia.a, state)
}

// CB2 sets the level of the CB2 line when it is configured as an input.
func (pia *PIA) CB2(state bool) {
	pia.c2(&pia.b, state)
}

func (pia *PIA) c1(p *port, state bool) {
	if p.c1 == state {
		return
	}
	p.c1 = state

	if state != (p.ctl&CtlC1Rising != 0) {
		return
	}

	p.irq1 = true
	pia.updateIRQ()

	// handshake mode. C2 returns high on the active transition of C1
	if p.c2Output() && !p.c2Manual() && p.ctl&CtlC2Bit3 == 0 {
		pia.setC2(p, true)
	}
}

func (pia *PIA) c2(p *port, state bool) {
	if p.c2 == state {
		return
	}
	p.c2 = state

	if p.c2Output() {
		return
	}

	if state != (p.ctl&CtlC2Bit4 != 0) {
		return
	}

	p.irq2 = true
	pia.updateIRQ()
}

// IRQA returns the state of the IRQA output.
func (pia *PIA) IRQA() bool {
	return pia.a.irqState
}

// IRQB returns the state of the IRQB output.
func (pia *PIA) IRQB() bool {
	return pia.b.irqState
}

// CA1Level returns the last level set on the CA1 input.
func (pia *PIA) CA1Level() bool {
	return pia.a.c1
}

// CB1Level returns the last level set on the CB1 input.
func (pia *PIA) CB1Level() bool {
	return pia.b.c1
}

// CA2Output returns the level CA2 is being driven to when it is an output.
func (pia *PIA) CA2Output() bool {
	return pia.a.c2out
}

// CB2Output returns the level CB2 is being driven to when it is an output.
func (pia *PIA) CB2Output() bool {
	return pia.b.c2out
}

func (pia *PIA) updateIRQ() {
	if s := pia.a.irq(); s != pia.a.irqState {
		pia.a.irqState = s
		if pia.conn.IRQA != nil {
			pia.conn.IRQA(s)
		}
	}
	if s := pia.b.irq(); s != pia.b.irqState {
		pia.b.irqState = s
		if pia.conn.IRQB != nil {
			pia.conn.IRQB(s)
		}
	}
}
