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

package rs232

import (
	"fmt"

	"github.com/swtpc/term8212/environment"
	"github.com/swtpc/term8212/logger"
)

// Terminal is the equipment at the near end of the cable.
type Terminal interface {
	RXD(state bool)
	CTS(state bool)
	DSR(state bool)
	DCD(state bool)
	RI(state bool)
	Reset()
}

// Device is the equipment at the far end of the cable. The terminal's
// outputs arrive through these functions.
type Device interface {
	RXD(state bool)
	DCD(state bool)
	DSR(state bool)
	CTS(state bool)
}

// Null is a Device with nothing attached.
type Null struct{}

func (Null) RXD(_ bool) {}
func (Null) DCD(_ bool) {}
func (Null) DSR(_ bool) {}
func (Null) CTS(_ bool) {}

// Port relays line levels between the terminal and the remote device.
type Port struct {
	env  *environment.Environment
	term Terminal
	dev  Device

	// last levels of the terminal's outputs
	txd bool
	dtr bool
	rts bool
}

// NewPort is the preferred method of initialisation for the Port type. A nil
// device is the same as Null.
func NewPort(env *environment.Environment, dev Device) *Port {
	if dev == nil {
		dev = Null{}
	}
	return &Port{
		env: env,
		dev: dev,
		txd: true,
		dtr: true,
		rts: true,
	}
}

// Attach the terminal. Must be called before any line changes.
func (p *Port) Attach(term Terminal) {
	p.term = term
}

// Plug a different device into the far end of the cable. A nil device is
// the same as Null. The device sees the current levels of the terminal's
// outputs immediately.
func (p *Port) Plug(dev Device) {
	if dev == nil {
		dev = Null{}
	}
	p.dev = dev
	p.dev.RXD(p.txd)
	if p.env.Prefs.DTRFlowControl() {
		p.dev.CTS(p.dtr)
	}
}

func (p *Port) String() string {
	return fmt.Sprintf("rs232: txd=%v dtr=%v rts=%v flow=%s", p.txd, p.dtr, p.rts, p.env.Prefs.FlowControl.String())
}

// Reset the terminal and then force the lines to their reset levels.
func (p *Port) Reset() {
	if p.term != nil {
		p.term.Reset()
		p.term.CTS(false)
	}
	p.dev.RXD(true)
	p.dev.DCD(false)
	p.dev.DSR(false)
	p.dev.CTS(false)
	logger.Logf(p.env, "rs232", "reset (flow control %s)", p.env.Prefs.FlowControl.String())
}

// TerminalTXD is connected to the terminal's TXD output.
func (p *Port) TerminalTXD(state bool) {
	p.txd = state
	p.dev.RXD(state)
}

// TerminalDTR is connected to the terminal's DTR output.
func (p *Port) TerminalDTR(state bool) {
	p.dtr = state
	if p.env.Prefs.DTRFlowControl() {
		p.dev.CTS(state)
	}
}

// TerminalRTS is connected to the terminal's RTS output.
func (p *Port) TerminalRTS(state bool) {
	p.rts = state
	if p.term != nil {
		p.term.CTS(state)
	}
}

// TXD is connected to the remote device's TXD output.
func (p *Port) TXD(state bool) {
	if p.term != nil {
		p.term.RXD(state)
	}
}

// DTR is connected to the remote device's DTR output.
func (p *Port) DTR(state bool) {
	if p.term != nil {
		p.term.DSR(state)
	}
}

// DCD is connected to the remote device's DCD output.
func (p *Port) DCD(state bool) {
	if p.term != nil {
		p.term.DCD(state)
	}
}

// RI is connected to the remote device's RI output.
func (p *Port) RI(state bool) {
	if p.term != nil {
		p.term.RI(state)
	}
}
