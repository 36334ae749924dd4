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

package pia_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/swtpc/term8212/hardware/pia"
)

type recorder struct {
	ca2  []bool
	cb2  []bool
	irqa []bool
	irqb []bool
	a    []uint8
	b    []uint8
}

func newPIA(in uint8) (*pia.PIA, *recorder) {
	r := &recorder{}
	p := pia.NewPIA("test", pia.Connections{
		ReadA:  func() uint8 { return in },
		ReadB:  func() uint8 { return in },
		WriteA: func(d uint8) { r.a = append(r.a, d) },
		WriteB: func(d uint8) { r.b = append(r.b, d) },
		CA2:    func(s bool) { r.ca2 = append(r.ca2, s) },
		CB2:    func(s bool) { r.cb2 = append(r.cb2, s) },
		IRQA:   func(s bool) { r.irqa = append(r.irqa, s) },
		IRQB:   func(s bool) { r.irqb = append(r.irqb, s) },
	})
	p.Reset()
	return p, r
}

func TestDDRSelect(t *testing.T) {
	is := is.New(t)
	p, r := newPIA(0x5a)

	// control register bit 2 clear selects the DDR
	p.Write(0, 0x0f)
	is.Equal(p.Read(0), uint8(0x0f))

	p.Write(1, pia.CtlOutputSelect)
	p.Write(0, 0xff)

	// output bits from the output register, input bits from the device
	is.Equal(p.Read(0), uint8(0x5f))

	// undriven port A bits are pulled high
	is.Equal(r.a[len(r.a)-1], uint8(0xff))

	// port B undriven bits are low
	p.Write(2, 0xf0)
	p.Write(3, pia.CtlOutputSelect)
	p.Write(2, 0xff)
	is.Equal(r.b[len(r.b)-1], uint8(0xf0))
	is.Equal(p.Read(2), uint8(0xfa))
}

func TestC1Interrupt(t *testing.T) {
	is := is.New(t)
	p, r := newPIA(0)

	// falling edge active, interrupt enabled
	p.Write(3, pia.CtlOutputSelect|pia.CtlC1Enable)

	// assert, clear, assert. only the falling edge sets the flag
	p.CB1(true)
	p.CB1(false)
	p.CB1(true)
	is.True(p.CB1Level())
	is.True(p.IRQB())
	is.Equal(r.irqb, []bool{true})
	is.Equal(p.Read(3)&pia.CtlIRQ1, pia.CtlIRQ1)

	// reading the data register clears the flag
	p.Read(2)
	is.True(!p.IRQB())
	is.Equal(p.Read(3)&pia.CtlIRQ1, uint8(0))
	is.Equal(r.irqb, []bool{true, false})
}

func TestC1LevelSurvivesReset(t *testing.T) {
	is := is.New(t)
	p, _ := newPIA(0)

	p.CA1(false)
	p.CB1(true)
	p.Reset()
	is.True(!p.CA1Level())
	is.True(p.CB1Level())
}

func TestC1InterruptDisabled(t *testing.T) {
	is := is.New(t)
	p, r := newPIA(0)

	// rising edge active, interrupt disabled
	p.Write(1, pia.CtlOutputSelect|pia.CtlC1Rising)
	p.CA1(false)
	p.CA1(true)

	// flag set but no interrupt
	is.Equal(p.Read(1)&pia.CtlIRQ1, pia.CtlIRQ1)
	is.True(!p.IRQA())
	is.Equal(len(r.irqa), 0)

	// enabling the interrupt with the flag set raises IRQ
	p.Write(1, pia.CtlOutputSelect|pia.CtlC1Rising|pia.CtlC1Enable)
	is.True(p.IRQA())
}

func TestC2Manual(t *testing.T) {
	is := is.New(t)
	p, r := newPIA(0)

	// C2 output, follow bit 3
	p.Write(1, pia.CtlC2Output|pia.CtlC2Bit4)
	p.Write(1, pia.CtlC2Output|pia.CtlC2Bit4|pia.CtlC2Bit3)
	p.Write(1, pia.CtlC2Output|pia.CtlC2Bit4|pia.CtlC2Bit3)
	p.Write(1, pia.CtlC2Output|pia.CtlC2Bit4)

	// only changes are reported
	is.Equal(r.ca2, []bool{false, true, false})
	is.True(!p.CA2Output())
}

func TestC2Handshake(t *testing.T) {
	is := is.New(t)
	p, r := newPIA(0)

	// port B handshake. CB2 low on write, high on active CB1 transition
	p.Write(3, pia.CtlOutputSelect|pia.CtlC2Output)
	p.Write(2, 0x41)
	is.Equal(r.cb2, []bool{false})
	p.CB1(false)
	is.Equal(r.cb2, []bool{false, true})

	// port A pulse. CA2 low then high on read
	p.Write(1, pia.CtlOutputSelect|pia.CtlC2Output|pia.CtlC2Bit3)
	p.Read(0)
	is.Equal(r.ca2, []bool{false, true})
}

func TestC2Input(t *testing.T) {
	is := is.New(t)
	p, _ := newPIA(0)

	// rising edge active, interrupt enabled
	p.Write(1, pia.CtlOutputSelect|pia.CtlC2Bit4|pia.CtlC2Bit3)
	p.CA2(false)
	is.True(!p.IRQA())
	p.CA2(true)
	is.True(p.IRQA())
	is.Equal(p.Read(1)&pia.CtlIRQ2, pia.CtlIRQ2)
	p.Read(0)
	is.True(!p.IRQA())
}

func TestPeekHasNoSideEffects(t *testing.T) {
	is := is.New(t)
	p, _ := newPIA(0x12)

	p.Write(1, pia.CtlOutputSelect|pia.CtlC1Enable)
	p.CA1(false)
	is.True(p.IRQA())
	is.Equal(p.Peek(0), uint8(0x12))
	is.True(p.IRQA())
}
