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

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/bradleyjkemp/memviz"
	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/hardware"
	"github.com/swtpc/term8212/hardware/crtc"
	"github.com/swtpc/term8212/hardware/irq"
	"github.com/swtpc/term8212/hardware/memory/bus"
	"github.com/swtpc/term8212/hardware/memory/memorymap"
	"github.com/swtpc/term8212/hardware/pia"
	"github.com/swtpc/term8212/hardware/preferences"
	"github.com/swtpc/term8212/hardware/uart"
	"github.com/swtpc/term8212/prefs"
)

// Sentinal error patterns.
const (
	UnknownPrefs = "prefs: unknown preferences (%s)"
	DumpError    = "dump: %v"
)

type prefsCmd struct {
	Set   []string `name:"set" help:"change a stored preference. format is key::value"`
	Reset bool     `name:"reset" help:"return the stored preferences to their defaults"`
}

func (p *prefsCmd) Run(_ *kong.Context) error {
	if len(p.Set) > 0 {
		prefs.PushCommandLineStack(strings.Join(p.Set, "; "))
	}

	// values in the command line group are applied by the load
	pr, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	if len(p.Set) > 0 {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			return curated.Errorf(UnknownPrefs, unused)
		}
	}

	if p.Reset {
		pr.SetDefaults()
	}

	if len(p.Set) > 0 || p.Reset {
		if err := pr.Save(); err != nil {
			return err
		}
	}

	fmt.Print(pr)
	return nil
}

// snapshot of the terminal with the register values of each chip. the
// emulated chips refer to closures and the scheduler so they are not
// suitable for mapping directly.
type snapshot struct {
	Latch        uint8
	Keyboard     uint8
	Config       uint8
	DIPSwitches  uint8
	PrinterReady bool

	PIA0 [pia.NumRegisters]uint8
	PIA1 [pia.NumRegisters]uint8
	UART [uart.NumRegisters]uint8

	CRTC struct {
		Registers [crtc.NumRegisters]uint8
		CharWidth int
		Start     uint16
		Cursor    uint16
		Frame     int
	}

	IRQ struct {
		Asserted  bool
		Requested [irq.NumSources]bool
	}

	Bell struct {
		On       bool
		Deadline time.Duration
	}

	// first row of the display
	Row string

	Now     time.Duration
	Pending int
}

func takeSnapshot(term *hardware.Terminal) *snapshot {
	s := &snapshot{
		Latch:        term.Latch(),
		Keyboard:     term.KeyboardData(),
		Config:       term.ConfigByte(),
		DIPSwitches:  term.DIPSwitches(),
		PrinterReady: term.PrinterReady(),
		Now:          term.Scheduler.Now(),
		Pending:      term.Scheduler.Pending(),
	}

	for i := range s.PIA0 {
		s.PIA0[i] = term.PIA0.Peek(uint8(i))
		s.PIA1[i] = term.PIA1.Peek(uint8(i))
	}
	for i := range s.UART {
		s.UART[i] = term.UART.Peek(uint8(i))
	}

	for i := range s.CRTC.Registers {
		s.CRTC.Registers[i] = term.CRTC.Register(i)
	}
	s.CRTC.CharWidth = term.CRTC.CharWidth()
	s.CRTC.Start = term.CRTC.StartAddress()
	s.CRTC.Cursor = term.CRTC.CursorAddress()
	s.CRTC.Frame = term.CRTC.FrameNum()

	s.IRQ.Asserted = term.IRQ.Asserted()
	for src := irq.PIA0A; src < irq.NumSources; src++ {
		s.IRQ.Requested[src] = term.IRQ.Requested(src)
	}

	s.Bell.On = term.Bell.On()
	s.Bell.Deadline, _ = term.Bell.Deadline()

	s.Row = peekRow(term.Mem, term.CRTC.StartAddress(), int(term.CRTC.Register(crtc.RegHDisp)))

	return s
}

// peekRow returns n characters of video RAM from the start address. Control
// codes are replaced with a dot and the intensity bit is ignored.
func peekRow(mem bus.DebuggerBus, start uint16, n int) string {
	r := make([]uint8, 0, n)
	for i := 0; i < n; i++ {
		d, err := mem.Peek(memorymap.OriginVRAM + (start+uint16(i))&memorymap.MaskVRAM)
		if err != nil {
			break
		}
		d &= 0x7f
		if d < 0x20 || d == 0x7f {
			d = '.'
		}
		r = append(r, d)
	}
	return string(r)
}

type dumpCmd struct {
	machine

	Out    string `name:"out" default:"term8212.dot" help:"graphviz file to write"`
	Format string `name:"format" help:"program a screen format before the dump"`
}

func (d *dumpCmd) Run(_ *kong.Context) (rerr error) {
	term, err := d.build(hardware.Connections{})
	if err != nil {
		return err
	}
	term.Reset()

	if d.Format != "" {
		f, err := hardware.ParseFormat(d.Format)
		if err != nil {
			return err
		}
		term.SetFormat(f)
	}

	f, err := os.Create(d.Out)
	if err != nil {
		return curated.Errorf(DumpError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(DumpError, err)
		}
	}()

	memviz.Map(f, takeSnapshot(term))

	return nil
}
