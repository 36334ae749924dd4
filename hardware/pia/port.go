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

import "fmt"

// one half of the PIA.
type port struct {
	name string

	out uint8
	ddr uint8
	ctl uint8

	// levels of the control line inputs
	c1 bool
	c2 bool

	// level of C2 when it is an output
	c2out bool

	irq1 bool
	irq2 bool

	// last state of the IRQ output
	irqState bool
}

func (p *port) String() string {
	return fmt.Sprintf("%s[out=%02x ddr=%02x ctl=%02x]", p.name, p.out, p.ddr, p.control())
}

// the value of the control register with the IRQ flags.
func (p *port) control() uint8 {
	v := p.ctl
	if p.irq1 {
		v |= CtlIRQ1
	}
	if p.irq2 && !p.c2Output() {
		v |= CtlIRQ2
	}
	return v
}

// the value of the port as seen by the CPU. output bits come from the
// output register and input bits from the external device.
func (p *port) value(input func() uint8) uint8 {
	var in uint8
	if input != nil {
		in = input()
	}
	return (p.out & p.ddr) | (in &^ p.ddr)
}

func (p *port) c2Output() bool {
	return p.ctl&CtlC2Output != 0
}

// C2 follows bit 3 of the control register.
func (p *port) c2Manual() bool {
	return p.ctl&CtlC2Bit4 != 0
}

func (p *port) irq() bool {
	if p.irq1 && p.ctl&CtlC1Enable != 0 {
		return true
	}
	return p.irq2 && !p.c2Output() && p.ctl&CtlC2Bit3 != 0
}
