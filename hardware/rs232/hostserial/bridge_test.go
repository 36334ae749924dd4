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

package hostserial_test

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/environment"
	"github.com/swtpc/term8212/hardware"
	"github.com/swtpc/term8212/hardware/memory/memorymap"
	"github.com/swtpc/term8212/hardware/memory/rom"
	"github.com/swtpc/term8212/hardware/preferences"
	"github.com/swtpc/term8212/hardware/rs232"
	"github.com/swtpc/term8212/hardware/rs232/hostserial"
	"github.com/swtpc/term8212/hardware/scheduler"
	"github.com/swtpc/term8212/hardware/serial"
	"github.com/swtpc/term8212/hardware/uart"
)

// hostPort stands in for the serial device on the host.
type hostPort struct {
	read    chan []uint8
	written chan uint8
	closed  chan struct{}
	once    sync.Once
}

func newHostPort() *hostPort {
	return &hostPort{
		read:    make(chan []uint8, 16),
		written: make(chan uint8, 16),
		closed:  make(chan struct{}),
	}
}

func (p *hostPort) Read(b []uint8) (int, error) {
	select {
	case d, ok := <-p.read:
		if !ok {
			return 0, errors.New("unplugged")
		}
		return copy(b, d), nil
	case <-p.closed:
		return 0, io.EOF
	}
}

func (p *hostPort) Write(b []uint8) (int, error) {
	for _, c := range b {
		select {
		case p.written <- c:
		case <-p.closed:
			return 0, io.EOF
		}
	}
	return len(b), nil
}

func (p *hostPort) Close() error {
	p.once.Do(func() { close(p.closed) })
	return nil
}

func (p *hostPort) next(t *testing.T) uint8 {
	t.Helper()
	select {
	case c := <-p.written:
		return c
	case <-time.After(time.Second):
		t.Fatalf("nothing written to host port")
	}
	return 0
}

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	prefs, err := preferences.NewPreferencesFromFile("")
	if err != nil {
		t.Fatal(err)
	}
	env, err := environment.NewEnvironment("test", prefs)
	if err != nil {
		t.Fatal(err)
	}
	return env
}

func TestFromHost(t *testing.T) {
	is := is.New(t)

	sch := scheduler.NewScheduler()
	hp := newHostPort()
	b := hostserial.NewBridge(newEnv(t), sch, "test", hp, nil)
	defer b.Close()

	var got []uint8
	rx := serial.NewReceiver(sch, "test", func(data uint8, status serial.Status) {
		is.Equal(status, serial.Status(0))
		got = append(got, data)
	})
	b.Connect(rx.Line)

	hp.read <- []uint8("hi")

	deadline := time.Now().Add(time.Second)
	for len(got) < 2 && time.Now().Before(deadline) {
		is.NoErr(b.Poll())
		sch.Advance(time.Millisecond)
	}
	is.Equal(string(got), "hi")
	is.Equal(b.Pending(), 0)
}

func TestToHost(t *testing.T) {
	is := is.New(t)

	sch := scheduler.NewScheduler()
	hp := newHostPort()
	b := hostserial.NewBridge(newEnv(t), sch, "test", hp, nil)
	defer b.Close()

	tx := serial.NewTransmitter(sch, "test", b.RXD, nil)
	is.True(tx.Send('x'))
	sch.Advance(2 * time.Millisecond)
	is.Equal(hp.next(t), uint8('x'))
}

func TestFlowControl(t *testing.T) {
	is := is.New(t)

	sch := scheduler.NewScheduler()
	hp := newHostPort()
	b := hostserial.NewBridge(newEnv(t), sch, "test", hp, nil)
	defer b.Close()

	// terminal not ready
	b.CTS(true)

	hp.read <- []uint8("a")
	deadline := time.Now().Add(time.Second)
	for b.Pending() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	is.NoErr(b.Poll())
	is.Equal(b.Pending(), 1)
	is.True(!b.Busy())

	b.CTS(false)
	is.True(b.Busy())
}

func TestHostError(t *testing.T) {
	is := is.New(t)

	hp := newHostPort()
	b := hostserial.NewBridge(newEnv(t), scheduler.NewScheduler(), "test", hp, nil)
	defer b.Close()

	close(hp.read)

	var err error
	deadline := time.Now().Add(time.Second)
	for err == nil && time.Now().Before(deadline) {
		err = b.Poll()
		time.Sleep(time.Millisecond)
	}
	is.True(curated.Is(err, hostserial.PortError))
}

func TestTerminal(t *testing.T) {
	is := is.New(t)

	env := newEnv(t)
	prg, err := rom.NewProgram(make([]uint8, memorymap.SizeROM))
	is.NoErr(err)

	port := rs232.NewPort(env, nil)
	term := hardware.NewTerminal(env, prg, nil, nil, hardware.Connections{
		TXD: port.TerminalTXD,
		DTR: port.TerminalDTR,
		RTS: port.TerminalRTS,
	})

	hp := newHostPort()
	b := hostserial.NewBridge(env, term.Scheduler, "test", hp, func() (serial.Format, time.Duration) {
		return term.UART.Format(), term.UART.BitPeriod()
	})
	defer b.Close()
	b.Connect(port.TXD)

	port.Attach(term)
	port.Plug(b)
	port.Reset()

	const (
		rbr = memorymap.OriginUART + uart.RegRBR
		dll = memorymap.OriginUART + uart.RegDLL
		dlm = memorymap.OriginUART + uart.RegDLM
		lcr = memorymap.OriginUART + uart.RegLCR
		lsr = memorymap.OriginUART + uart.RegLSR
	)

	// 9600 baud, eight bits, no parity, one stop bit
	term.Mem.Write(lcr, uart.LCRDLAB|0x03)
	term.Mem.Write(dll, 12)
	term.Mem.Write(dlm, 0)
	term.Mem.Write(lcr, 0x03)

	// terminal to host
	term.Mem.Write(rbr, 'A')
	is.NoErr(term.Advance(2 * time.Millisecond))
	is.Equal(hp.next(t), uint8('A'))

	// host to terminal
	hp.read <- []uint8("B")
	deadline := time.Now().Add(time.Second)
	for term.Mem.Read(lsr)&uart.LSRDataReady == 0 && time.Now().Before(deadline) {
		is.NoErr(b.Poll())
		is.NoErr(term.Advance(time.Millisecond))
	}
	is.Equal(term.Mem.Read(rbr), uint8('B'))
}
