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
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/environment"
	"github.com/swtpc/term8212/hardware"
	"github.com/swtpc/term8212/hardware/memory/bus"
	"github.com/swtpc/term8212/hardware/memory/memorymap"
	"github.com/swtpc/term8212/hardware/preferences"
	"github.com/swtpc/term8212/hardware/printer"
	"github.com/swtpc/term8212/hardware/rs232"
	"github.com/swtpc/term8212/hardware/rs232/hostserial"
	framing "github.com/swtpc/term8212/hardware/serial"
	"github.com/swtpc/term8212/hardware/uart"
	"github.com/swtpc/term8212/userinput"
	"github.com/swtpc/term8212/userinput/hostkeys"
)

// how often the logical clock catches up with the host clock
const serialQuantum = time.Millisecond

type serialCmd struct {
	machine

	Port    string `name:"port" required help:"host serial device"`
	Baud    int    `name:"baud" help:"rate of the host port (default is the switches.baud preference)"`
	Printer string `name:"printer" help:"copy received bytes to the printer port and save them to this file"`
}

func (s *serialCmd) Run(_ *kong.Context) error {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return err
	}

	baud := s.Baud
	if baud <= 0 {
		baud = env.Prefs.Baud.Get().(int)
	}
	if baud <= 0 {
		baud = preferences.SwitchRate(baud)
	}

	port := rs232.NewPort(env, nil)

	conn := hardware.Connections{
		TXD: port.TerminalTXD,
		DTR: port.TerminalDTR,
		RTS: port.TerminalRTS,
	}

	if s.Printer != "" {
		f, err := os.Create(s.Printer)
		if err != nil {
			return curated.Errorf("serial: %v", err)
		}
		defer f.Close()
		conn.Printer = printer.NewWriter(f)
	}

	term, err := s.buildWith(env, conn)
	if err != nil {
		return err
	}

	bridge, err := hostserial.Open(env, term.Scheduler, s.Port, baud, func() (framing.Format, time.Duration) {
		return term.UART.Format(), term.UART.BitPeriod()
	})
	if err != nil {
		return err
	}
	defer bridge.Close()

	bridge.Connect(port.TXD)
	port.Attach(term)
	port.Plug(bridge)
	port.Reset()

	programUART(term, env.Prefs, baud)

	m := &monitor{term: term, out: os.Stdout}
	if conn.Printer != nil {
		m.print = true
		setupPrinterPort(term.Mem)
	}

	var kb *hostkeys.Keyboard
	if hostkeys.IsTerminal(os.Stdin) {
		kb, err = hostkeys.Open(os.Stdin)
		if err != nil {
			return err
		}
		defer kb.Close()
		fmt.Printf("connected to %s at %d baud. ctrl-] to quit\r\n", s.Port, baud)
	} else {
		kb = hostkeys.NewKeyboard(os.Stdin)
	}

	if err := m.converse(bridge, kb); err != nil {
		return err
	}

	if w, ok := conn.Printer.(*printer.Writer); ok {
		return w.Err()
	}
	return nil
}

// programUART sets the line format from the DIP switches and jumpers and
// raises DTR and RTS. this is the UART setup performed by the firmware after
// reset.
func programUART(term *hardware.Terminal, prefs *preferences.Preferences, baud int) {
	dip := term.DIPSwitches()

	lcr := uint8(0x02)
	if term.ConfigByte()&preferences.CfgEightBit != 0 {
		lcr = 0x03
	}
	if dip&preferences.DIPParity != 0 {
		lcr |= uart.LCRParity
		if dip&preferences.DIPEven != 0 {
			lcr |= uart.LCREven
		}
	}
	if !prefs.OneStopBit.Get().(bool) {
		lcr |= uart.LCRStopBits
	}

	div := uartDivisor(baud)

	term.Mem.Write(memorymap.OriginUART+uart.RegLCR, lcr|uart.LCRDLAB)
	term.Mem.Write(memorymap.OriginUART+uart.RegDLL, uint8(div))
	term.Mem.Write(memorymap.OriginUART+uart.RegDLM, uint8(div>>8))
	term.Mem.Write(memorymap.OriginUART+uart.RegLCR, lcr)
	term.Mem.Write(memorymap.OriginUART+uart.RegMCR, uart.MCRDTR|uart.MCRRTS)
}

// uartDivisor returns the divisor latch value for the rate, limited to the
// range of the latch. Rates that are not positive use the slowest rate the
// switches can select.
func uartDivisor(baud int) uint16 {
	if baud <= 0 {
		baud = preferences.SwitchRate(baud)
	}
	div := uart.Clock / (16 * baud)
	if div < 1 {
		return 1
	}
	if div > 0xffff {
		return 0xffff
	}
	return uint16(div)
}

// control register A and data register A of the second PIA.
const (
	pia1DataA = memorymap.OriginPIA1
	pia1CtlA  = memorymap.OriginPIA1 + 1
)

// port A of the second PIA as outputs with the printer ready line (CA2) high.
func setupPrinterPort(mem bus.CPUBus) {
	mem.Write(pia1CtlA, 0x00)
	mem.Write(pia1DataA, 0xff)
	mem.Write(pia1CtlA, 0x3c)
}

// printByte puts the byte on port A of the second PIA and strobes the ready
// line. Reading the data register clears the busy flag.
func printByte(mem bus.CPUBus, d uint8) {
	mem.Write(pia1DataA, d)
	mem.Write(pia1CtlA, 0x34)
	mem.Write(pia1CtlA, 0x3c)
	mem.Read(pia1DataA)
}

// monitor moves bytes between the host keyboard, the UART and the output in
// place of the terminal firmware.
type monitor struct {
	term *hardware.Terminal
	out  io.Writer

	// received bytes are also sent to the printer port
	print bool

	// keys waiting for the transmit holding register
	pending []uint8
}

// converse runs until the quit key is pressed, the keyboard input ends or
// the process is interrupted. Keys are also latched into the keyboard port.
// The logical clock follows the host clock.
func (m *monitor) converse(bridge *hostserial.Bridge, kb *hostkeys.Keyboard) error {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	tick := time.NewTicker(serialQuantum)
	defer tick.Stop()

	var ctl userinput.Controllers
	key := func(c uint8) {
		ctl.HandleUserInput(userinput.EventByte{Data: c}, m)
	}

	last := time.Now()
	for {
		select {
		case <-intChan:
			return nil
		case <-tick.C:
		}

		now := time.Now()
		if err := m.term.Advance(now.Sub(last)); err != nil {
			return err
		}
		last = now

		if err := bridge.Poll(); err != nil {
			return err
		}

		ok, err := kb.Poll(key)
		if err != nil {
			return err
		}
		if !ok || ctl.Quit {
			return nil
		}

		if err := m.service(); err != nil {
			return err
		}
	}
}

// KeyPress implements the userinput.HandleInput interface.
func (m *monitor) KeyPress(data uint8) {
	m.term.KeyPress(data)
	m.pending = append(m.pending, data)
}

// service writes any received byte to the output and sends the next pending
// key if the transmit holding register is empty.
func (m *monitor) service() error {
	lsr := m.term.Mem.Read(memorymap.OriginUART + uart.RegLSR)

	if lsr&uart.LSRDataReady != 0 {
		d := m.term.Mem.Read(memorymap.OriginUART + uart.RegRBR)
		if _, err := m.out.Write([]uint8{d}); err != nil {
			return curated.Errorf("serial: %v", err)
		}
		if m.print {
			printByte(m.term.Mem, d)
		}
	}

	if len(m.pending) > 0 && lsr&uart.LSRTHRE != 0 {
		m.term.Mem.Write(memorymap.OriginUART+uart.RegTHR, m.pending[0])
		m.pending = m.pending[1:]
	}

	return nil
}
