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

package rs232_test

import (
	"testing"

	"github.com/swtpc/term8212/environment"
	"github.com/swtpc/term8212/hardware"
	"github.com/swtpc/term8212/hardware/memory/memorymap"
	"github.com/swtpc/term8212/hardware/memory/rom"
	"github.com/swtpc/term8212/hardware/preferences"
	"github.com/swtpc/term8212/hardware/rs232"
	"github.com/swtpc/term8212/hardware/uart"
	"github.com/swtpc/term8212/test"
)

// levels records the lines driven by the port.
type levels struct {
	rxd, cts, dsr, dcd, ri bool

	// number of calls to CTS()
	ctsCalls int

	resets int
}

func (l *levels) RXD(state bool) { l.rxd = state }
func (l *levels) DSR(state bool) { l.dsr = state }
func (l *levels) DCD(state bool) { l.dcd = state }
func (l *levels) RI(state bool)  { l.ri = state }
func (l *levels) Reset()         { l.resets++ }

func (l *levels) CTS(state bool) {
	l.cts = state
	l.ctsCalls++
}

func newEnv(t *testing.T, flow string) *environment.Environment {
	t.Helper()
	prefs, err := preferences.NewPreferencesFromFile("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.FlowControl.Set(flow))
	env, err := environment.NewEnvironment("test", prefs)
	test.DemandSuccess(t, err)
	return env
}

func newPort(t *testing.T, flow string) (*rs232.Port, *levels, *levels) {
	t.Helper()
	term := &levels{cts: true, rxd: false}
	dev := &levels{rxd: false, cts: true, dsr: true, dcd: true}
	p := rs232.NewPort(newEnv(t, flow), dev)
	p.Attach(term)
	p.Reset()
	return p, term, dev
}

func TestReset(t *testing.T) {
	_, term, dev := newPort(t, preferences.FlowDTR)
	test.ExpectEquality(t, term.resets, 1)
	test.ExpectFailure(t, term.cts)
	test.ExpectSuccess(t, dev.rxd)
	test.ExpectFailure(t, dev.dcd)
	test.ExpectFailure(t, dev.dsr)
	test.ExpectFailure(t, dev.cts)
}

func TestRTS(t *testing.T) {
	for _, flow := range []string{preferences.FlowNone, preferences.FlowDTR} {
		p, term, dev := newPort(t, flow)
		calls := dev.ctsCalls

		p.TerminalRTS(true)
		test.ExpectSuccess(t, term.cts, flow)
		p.TerminalRTS(false)
		test.ExpectFailure(t, term.cts, flow)

		// RTS never reaches the remote device
		test.ExpectEquality(t, dev.ctsCalls, calls, flow)
	}
}

func TestDTR(t *testing.T) {
	p, _, dev := newPort(t, preferences.FlowNone)
	p.TerminalDTR(true)
	test.ExpectFailure(t, dev.cts)
	test.ExpectEquality(t, dev.ctsCalls, 1)

	p, _, dev = newPort(t, preferences.FlowDTR)
	p.TerminalDTR(true)
	test.ExpectSuccess(t, dev.cts)
	p.TerminalDTR(false)
	test.ExpectFailure(t, dev.cts)
	test.ExpectEquality(t, dev.ctsCalls, 3)
}

func TestData(t *testing.T) {
	p, term, dev := newPort(t, preferences.FlowDTR)

	p.TerminalTXD(false)
	test.ExpectFailure(t, dev.rxd)
	p.TerminalTXD(true)
	test.ExpectSuccess(t, dev.rxd)

	p.TXD(true)
	test.ExpectSuccess(t, term.rxd)
	p.DTR(true)
	test.ExpectSuccess(t, term.dsr)
	p.DCD(true)
	test.ExpectSuccess(t, term.dcd)
	p.RI(true)
	test.ExpectSuccess(t, term.ri)
}

func TestNullDevice(t *testing.T) {
	p := rs232.NewPort(newEnv(t, preferences.FlowDTR), nil)

	// no terminal and no device
	p.Reset()
	p.TerminalTXD(false)
	p.TerminalDTR(false)
	p.TerminalRTS(false)
	p.TXD(false)
}

func TestTerminal(t *testing.T) {
	env := newEnv(t, preferences.FlowDTR)

	prg, err := rom.NewProgram(make([]uint8, memorymap.SizeROM))
	test.DemandSuccess(t, err)

	dev := &levels{}
	p := rs232.NewPort(env, dev)
	term := hardware.NewTerminal(env, prg, nil, nil, hardware.Connections{
		TXD: p.TerminalTXD,
		DTR: p.TerminalDTR,
		RTS: p.TerminalRTS,
	})
	p.Attach(term)
	p.Reset()

	const mcr = memorymap.OriginUART + uart.RegMCR
	const msr = memorymap.OriginUART + uart.RegMSR

	// RTS and DTR asserted. the pins are active low
	term.Mem.Write(mcr, uart.MCRDTR|uart.MCRRTS)
	test.ExpectEquality(t, term.Mem.Read(msr)&uart.MSRCTS, uart.MSRCTS)
	test.ExpectFailure(t, dev.cts)

	// RTS released. CTS follows
	term.Mem.Write(mcr, uart.MCRDTR)
	test.ExpectEquality(t, term.Mem.Read(msr)&uart.MSRCTS, uint8(0))

	// DTR released. remote CTS follows
	term.Mem.Write(mcr, 0)
	test.ExpectSuccess(t, dev.cts)
}
