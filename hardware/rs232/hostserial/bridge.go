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

package hostserial

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jacobsa/go-serial/serial"
	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/environment"
	"github.com/swtpc/term8212/hardware/scheduler"
	framing "github.com/swtpc/term8212/hardware/serial"
	"github.com/swtpc/term8212/logger"
)

// Sentinal error patterns.
const (
	OpenError = "hostserial: %v"
	PortError = "hostserial: %s: %v"
)

// size of the channels between the host port and the emulation.
const bufferSize = 1024

// FormatFunc returns the frame format and the bit period used between the
// bridge and the terminal.
type FormatFunc func() (framing.Format, time.Duration)

// Bridge connects a host serial port to the far end of the RS232 cable.
type Bridge struct {
	env  *environment.Environment
	name string
	port io.ReadWriteCloser

	format FormatFunc

	// the TXD output of the bridge. normally the TXD() function of an
	// rs232.Port
	line func(bool)

	tx *framing.Transmitter
	rx *framing.Receiver

	// level of the CTS input. low means the terminal is ready to receive
	cts bool
	dcd bool
	dsr bool

	// bytes waiting to be sent to the terminal
	queue []uint8

	in   chan uint8
	out  chan uint8
	errs chan error
	done chan struct{}
	wg   sync.WaitGroup
}

// Open the named host serial port and bridge it. The host side of the
// connection is always eight data bits, no parity and one stop bit.
func Open(env *environment.Environment, sch *scheduler.Scheduler, name string, baud int, format FormatFunc) (*Bridge, error) {
	port, err := serial.Open(serial.OpenOptions{
		PortName:        name,
		BaudRate:        uint(baud),
		DataBits:        8,
		StopBits:        1,
		ParityMode:      serial.PARITY_NONE,
		MinimumReadSize: 1,
	})
	if err != nil {
		return nil, curated.Errorf(OpenError, err)
	}
	logger.Logf(env, "hostserial", "opened %s at %d baud", name, baud)
	return NewBridge(env, sch, name, port, format), nil
}

// NewBridge is the preferred method of initialisation for the Bridge type.
// The name is used in log entries and errors. A nil FormatFunc means the
// default frame format at 9600 baud.
func NewBridge(env *environment.Environment, sch *scheduler.Scheduler, name string, port io.ReadWriteCloser, format FormatFunc) *Bridge {
	if format == nil {
		format = func() (framing.Format, time.Duration) {
			return framing.DefaultFormat, time.Second / 9600
		}
	}

	b := &Bridge{
		env:    env,
		name:   name,
		port:   port,
		format: format,
		line:   func(bool) {},
		in:     make(chan uint8, bufferSize),
		out:    make(chan uint8, bufferSize),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}

	b.tx = framing.NewTransmitter(sch, "hostserial tx", func(level bool) { b.line(level) }, b.kick)
	b.rx = framing.NewReceiver(sch, "hostserial rx", b.received)

	b.wg.Add(2)
	go b.read()
	go b.write()

	return b
}

// Connect the TXD output of the bridge.
func (b *Bridge) Connect(line func(bool)) {
	b.line = line
}

func (b *Bridge) String() string {
	return fmt.Sprintf("hostserial: %s %s queued=%d cts=%v", b.name, b.tx.Format(), b.Pending(), b.cts)
}

// Close the host port and wait for the I/O goroutines to finish.
func (b *Bridge) Close() error {
	close(b.done)
	err := b.port.Close()
	b.wg.Wait()
	if err != nil {
		return curated.Errorf(PortError, b.name, err)
	}
	return nil
}

// Poll moves bytes read from the host port into the transmit queue and
// starts sending them. Returns the first host I/O error.
func (b *Bridge) Poll() error {
	select {
	case err := <-b.errs:
		return curated.Errorf(PortError, b.name, err)
	default:
	}

drain:
	for {
		select {
		case c := <-b.in:
			b.queue = append(b.queue, c)
		default:
			break drain
		}
	}

	b.kick()
	return nil
}

// Pending returns the number of bytes from the host that have not yet been
// completely sent to the terminal.
func (b *Bridge) Pending() int {
	n := len(b.queue) + len(b.in)
	if b.tx.Busy() {
		n++
	}
	return n
}

// Busy returns true while a frame is being sent to the terminal.
func (b *Bridge) Busy() bool {
	return b.tx.Busy()
}

// RXD implements the rs232.Device interface.
func (b *Bridge) RXD(state bool) {
	// the format can only change between frames
	if !state && !b.rx.Busy() {
		b.updateFormat()
	}
	b.rx.Line(state)
}

// DCD implements the rs232.Device interface.
func (b *Bridge) DCD(state bool) {
	b.dcd = state
}

// DSR implements the rs232.Device interface.
func (b *Bridge) DSR(state bool) {
	b.dsr = state
}

// CTS implements the rs232.Device interface. Nothing is sent to the terminal
// while CTS is high.
func (b *Bridge) CTS(state bool) {
	b.cts = state
	if !state {
		b.kick()
	}
}

func (b *Bridge) updateFormat() {
	f, p := b.format()
	if f != b.tx.Format() || p != b.tx.Period() {
		b.tx.SetFormat(f, p)
		b.rx.SetFormat(f, p)
	}
}

// send the next byte in the queue if the terminal is ready.
func (b *Bridge) kick() {
	if b.cts || b.tx.Busy() || len(b.queue) == 0 {
		return
	}
	b.updateFormat()
	b.tx.Send(b.queue[0])
	b.queue = b.queue[1:]
}

func (b *Bridge) received(data uint8, status framing.Status) {
	if status != 0 {
		logger.Logf(b.env, "hostserial", "%s: %02x (%s)", b.name, data, status)
		if status&framing.Break != 0 {
			return
		}
	}

	select {
	case b.out <- data:
	default:
		logger.Logf(b.env, "hostserial", "%s: overrun", b.name)
	}
}

func (b *Bridge) fail(err error) {
	select {
	case <-b.done:
	case b.errs <- err:
	default:
	}
}

func (b *Bridge) read() {
	defer b.wg.Done()

	buf := make([]uint8, 256)
	for {
		n, err := b.port.Read(buf)
		for _, c := range buf[:n] {
			select {
			case b.in <- c:
			case <-b.done:
				return
			}
		}
		if err != nil {
			b.fail(err)
			return
		}
	}
}

func (b *Bridge) write() {
	defer b.wg.Done()

	for {
		select {
		case c := <-b.out:
			if _, err := b.port.Write([]uint8{c}); err != nil {
				b.fail(err)
				return
			}
		case <-b.done:
			return
		}
	}
}
