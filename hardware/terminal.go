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

package hardware

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/swtpc/term8212/environment"
	"github.com/swtpc/term8212/hardware/bell"
	"github.com/swtpc/term8212/hardware/chargen"
	"github.com/swtpc/term8212/hardware/crtc"
	"github.com/swtpc/term8212/hardware/irq"
	"github.com/swtpc/term8212/hardware/memory"
	"github.com/swtpc/term8212/hardware/memory/memorymap"
	"github.com/swtpc/term8212/hardware/memory/rom"
	"github.com/swtpc/term8212/hardware/pia"
	"github.com/swtpc/term8212/hardware/printer"
	"github.com/swtpc/term8212/hardware/scheduler"
	"github.com/swtpc/term8212/hardware/uart"
	"github.com/swtpc/term8212/logger"
	"github.com/swtpc/term8212/television"
)

// Control latch bits.
const (
	LatchCharSet   = uint8(0x40)
	LatchCharWidth = uint8(0x80)

	// value of the latch after reset
	LatchReset = uint8(0x1f)
)

// Pixel colors.
var (
	ColorBright = color.RGBA{R: 0x10, G: 0xff, B: 0x10, A: 0xff}
	ColorNormal = color.RGBA{R: 0x00, G: 0xd0, B: 0x00, A: 0xff}
	ColorBlack  = color.RGBA{A: 0xff}
)

// Connections to the outside world. Any of the fields can be nil.
type Connections struct {
	// interrupt input of the CPU
	IRQ func(state bool)

	// serial line outputs. called only when the level changes
	TXD func(state bool)
	DTR func(state bool)
	RTS func(state bool)

	// destination for printed bytes
	Printer printer.Sink

	// destination for the raster
	TV *television.Television
}

// Terminal is the main container for the emulated components of the terminal.
type Terminal struct {
	env  *environment.Environment
	conn Connections

	Scheduler *scheduler.Scheduler
	Mem       *memory.Memory

	// keyboard and bell
	PIA0 *pia.PIA

	// printer and DIP switches
	PIA1 *pia.PIA

	UART *uart.UART
	CRTC *crtc.CRTC
	IRQ  *irq.Merger
	Bell *bell.Bell

	// selected by bit 6 of the control latch
	Chargen [2]*chargen.Generator

	latch       uint8
	kbdData     uint8
	printerData uint8

	// last level of the printer data ready line (CA2 of PIA1)
	printerReady bool

	// row of pixels sent to the television
	row []color.RGBA

	// first television error since the last call to Advance()
	err error
}

// NewTerminal is the preferred method of initialisation for the Terminal type.
// A nil program or character generator is replaced by a blank one.
//
// The Terminal is in an undefined state until Reset() is called.
func NewTerminal(env *environment.Environment, program *rom.Program, standard *chargen.Generator, alternate *chargen.Generator, conn Connections) *Terminal {
	t := &Terminal{
		env:       env,
		conn:      conn,
		Scheduler: scheduler.NewScheduler(),
		row:       make([]color.RGBA, television.Width),
	}

	if program == nil {
		program = rom.Blank()
	}
	if standard == nil {
		standard = chargen.Blank("standard")
	}
	if alternate == nil {
		alternate = chargen.Blank("alternate")
	}
	t.Chargen = [2]*chargen.Generator{standard, alternate}

	t.IRQ = irq.NewMerger(conn.IRQ)
	t.Bell = bell.NewBell(env, t.Scheduler, nil)

	t.PIA0 = pia.NewPIA("pia0", pia.Connections{
		ReadA: t.ConfigByte,
		ReadB: func() uint8 { return t.kbdData },
		CA2:   t.bellStrobe,
		IRQA:  t.IRQ.Line(irq.PIA0A),
		IRQB:  t.IRQ.Line(irq.PIA0B),
	})

	t.PIA1 = pia.NewPIA("pia1", pia.Connections{
		ReadB:  t.DIPSwitches,
		WriteA: func(data uint8) { t.printerData = data },
		CA2:    t.printerStrobe,
	})

	t.UART = uart.NewUART(env, t.Scheduler, uart.Connections{
		TXD: conn.TXD,
		DTR: conn.DTR,
		RTS: conn.RTS,
		INT: t.IRQ.Line(irq.UART),
	})

	t.CRTC = crtc.NewCRTC(env, t.Scheduler, crtc.Connections{
		Row:   t.renderRow,
		Frame: t.endFrame,
	})

	periph := map[memorymap.Area]memory.Handler{
		memorymap.PIA0: {
			Read:  func(offset uint16) uint8 { return t.PIA0.Read(uint8(offset)) },
			Write: func(offset uint16, data uint8) { t.PIA0.Write(uint8(offset), data) },
			Peek:  func(offset uint16) uint8 { return t.PIA0.Peek(uint8(offset)) },
		},
		memorymap.PIA1: {
			Read:  func(offset uint16) uint8 { return t.PIA1.Read(uint8(offset)) },
			Write: func(offset uint16, data uint8) { t.PIA1.Write(uint8(offset), data) },
			Peek:  func(offset uint16) uint8 { return t.PIA1.Peek(uint8(offset)) },
		},
		memorymap.UART: {
			Read:  func(offset uint16) uint8 { return t.UART.Read(uint8(offset)) },
			Write: func(offset uint16, data uint8) { t.UART.Write(uint8(offset), data) },
			Peek:  func(offset uint16) uint8 { return t.UART.Peek(uint8(offset)) },
		},
		memorymap.CRTCAddress: {
			Write: func(_ uint16, data uint8) { t.CRTC.AddressWrite(data) },
		},
		memorymap.CRTCData: {
			Read:  func(_ uint16) uint8 { return t.CRTC.RegisterRead() },
			Write: func(_ uint16, data uint8) { t.CRTC.RegisterWrite(data) },
			Peek:  func(_ uint16) uint8 { return t.CRTC.RegisterRead() },
		},
		memorymap.Latch: {
			Write: func(_ uint16, data uint8) { t.WriteLatch(data) },
		},
	}

	t.Mem = memory.NewMemory(env, program, periph)

	return t
}

func (t *Terminal) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("terminal: latch=%02x kbd=%02x printer=%02x ready=%v\n", t.latch, t.kbdData, t.printerData, t.printerReady))
	s.WriteString(fmt.Sprintf("%s\n", t.PIA0))
	s.WriteString(fmt.Sprintf("%s\n", t.PIA1))
	s.WriteString(fmt.Sprintf("%s\n", t.UART))
	s.WriteString(fmt.Sprintf("%s\n", t.CRTC))
	s.WriteString(fmt.Sprintf("%s\n", t.IRQ))
	s.WriteString(fmt.Sprintf("%s\n", t.Bell))
	s.WriteString(fmt.Sprintf("scheduler: %s", t.Scheduler))
	return s.String()
}

// Env returns the environment the terminal was created with.
func (t *Terminal) Env() *environment.Environment {
	return t.env
}

// Reset the terminal. The control lines are set to their reset levels before
// the chips are reset so that no interrupt flags survive the reset.
func (t *Terminal) Reset() {
	t.kbdData = 0
	t.PIA0.CB1(true)

	t.WriteLatch(LatchReset)

	t.Bell.Reset()

	t.printerData = 0
	t.printerReady = true
	t.PIA1.CA1(false)

	t.PIA0.Reset()
	t.PIA1.Reset()
	t.UART.Reset()
	t.CRTC.Reset()

	t.Mem.ROM.StopBitPatch(t.env, t.env.Prefs.OneStopBit.Get().(bool))

	logger.Log(t.env, "terminal", "reset")
}

// WriteLatch sets the value of the control latch. Bit 7 selects the width of
// the character cell and bit 6 the character generator. The other bits are
// not used by the emulation.
func (t *Terminal) WriteLatch(data uint8) {
	t.latch = data
	if data&LatchCharWidth == 0 {
		t.CRTC.SetCharWidth(9)
	} else {
		t.CRTC.SetCharWidth(8)
	}
}

// Latch returns the last value written to the control latch.
func (t *Terminal) Latch() uint8 {
	return t.latch
}

// KeyPress latches the byte from the keyboard and strobes the CB1 input of
// PIA0. The firmware is interrupted by the falling edge.
func (t *Terminal) KeyPress(data uint8) {
	t.kbdData = data
	t.PIA0.CB1(true)
	t.PIA0.CB1(false)
	t.PIA0.CB1(true)
}

// KeyboardData returns the last byte latched by KeyPress().
func (t *Terminal) KeyboardData() uint8 {
	return t.kbdData
}

// ConfigByte returns the duplex switch and jumper settings as seen on port A
// of PIA0.
func (t *Terminal) ConfigByte() uint8 {
	return t.env.Prefs.Config()
}

// DIPSwitches returns the DIP switch settings as seen on port B of PIA1.
func (t *Terminal) DIPSwitches() uint8 {
	return t.env.Prefs.DIPSwitches()
}

// the bell is triggered by the falling edge of CA2 on PIA0.
func (t *Terminal) bellStrobe(state bool) {
	if !state {
		t.Bell.Trigger()
	}
}

// CA2 of PIA1 is the printer data ready line. the byte is forwarded to the
// printer on the falling edge and the busy line (CA1) is toggled so that the
// firmware sees a falling edge.
func (t *Terminal) printerStrobe(state bool) {
	if t.printerReady && !state {
		logger.Logf(t.env, "printer", "%02x", t.printerData)
		if t.conn.Printer != nil {
			t.conn.Printer.Print(t.printerData)
		}
		t.PIA1.CA1(false)
		t.PIA1.CA1(true)
		t.PIA1.CA1(false)
	}
	t.printerReady = state
}

// PrinterReady returns the last level of the printer data ready line.
func (t *Terminal) PrinterReady() bool {
	return t.printerReady
}

// RXD sets the level of the serial receive line.
func (t *Terminal) RXD(state bool) {
	t.UART.RX(state)
}

// CTS sets the level of the clear to send line.
func (t *Terminal) CTS(state bool) {
	t.UART.CTS(state)
}

// DSR sets the level of the data set ready line.
func (t *Terminal) DSR(state bool) {
	t.UART.DSR(state)
}

// DCD sets the level of the data carrier detect line.
func (t *Terminal) DCD(state bool) {
	t.UART.DCD(state)
}

// RI sets the level of the ring indicator line.
func (t *Terminal) RI(state bool) {
	t.UART.RI(state)
}

// Advance the logical clock. Returns the first error from the television
// since the last call to Advance().
func (t *Terminal) Advance(d time.Duration) error {
	t.Scheduler.Advance(d)
	err := t.err
	t.err = nil
	return err
}

// Start the CRTC scanline driver.
func (t *Terminal) Start() {
	t.CRTC.Start()
}

// Stop the CRTC scanline driver.
func (t *Terminal) Stop() {
	t.CRTC.Stop()
}

// RenderFrame generates a complete frame immediately without advancing the
// logical clock.
func (t *Terminal) RenderFrame() error {
	t.CRTC.Frame()
	err := t.err
	t.err = nil
	return err
}

func (t *Terminal) endFrame(_ int) {
	if t.conn.TV == nil {
		return
	}
	if err := t.conn.TV.NewFrame(); err != nil && t.err == nil {
		t.err = err
	}
}
