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

package serial

import (
	"time"

	"github.com/swtpc/term8212/hardware/scheduler"
)

// Receiver samples a line and assembles frames.
type Receiver struct {
	ev *scheduler.Event

	format Format
	period time.Duration

	// recv is called at the middle of the first stop bit of every frame
	recv func(data uint8, status Status)

	level bool

	// a frame is being received. samples are taken in the middle of each bit
	active  bool
	samples []bool
}

// NewReceiver is the preferred method of initialisation for the Receiver
// type.
func NewReceiver(sch *scheduler.Scheduler, label string, recv func(data uint8, status Status)) *Receiver {
	rx := &Receiver{
		format:  DefaultFormat,
		period:  time.Second / 9600,
		recv:    recv,
		level:   true,
		samples: make([]bool, 0, 11),
	}
	rx.ev = sch.NewEvent(label, rx.sample)
	return rx
}

// SetFormat changes the frame format and the bit period.
func (rx *Receiver) SetFormat(format Format, period time.Duration) {
	rx.format = format
	rx.period = period
}

// Level returns the last level given to Line().
func (rx *Receiver) Level() bool {
	return rx.level
}

// Busy returns true while a frame is being received.
func (rx *Receiver) Busy() bool {
	return rx.active
}

// Line sets the level of the line being sampled.
func (rx *Receiver) Line(level bool) {
	if rx.level == level {
		return
	}
	rx.level = level

	// falling edge while idle is the start of a start bit. check it is still
	// low in the middle of the bit
	if !level && !rx.active {
		rx.active = true
		rx.samples = rx.samples[:0]
		rx.ev.Reset(rx.period / 2)
	}
}

// Reset abandons any frame being received.
func (rx *Receiver) Reset() {
	rx.ev.Cancel()
	rx.active = false
	rx.samples = rx.samples[:0]
}

func (rx *Receiver) sample() {
	// start bit
	if len(rx.samples) == 0 && rx.level {
		rx.active = false
		return
	}

	rx.samples = append(rx.samples, rx.level)

	// start bit + data bits + parity + first stop bit
	n := 2 + rx.format.DataBits
	if rx.format.Parity != ParityNone {
		n++
	}

	if len(rx.samples) < n {
		rx.ev.Reset(rx.period)
		return
	}

	rx.active = false

	var data uint8
	allLow := true
	for i := 0; i < rx.format.DataBits; i++ {
		if rx.samples[1+i] {
			data |= 1 << i
			allLow = false
		}
	}

	var status Status

	if rx.format.Parity != ParityNone {
		p := rx.samples[1+rx.format.DataBits]
		if p {
			allLow = false
		}
		if p != rx.format.ParityBit(data) {
			status |= ParityError
		}
	}

	stop := rx.samples[n-1]
	if !stop {
		status |= FramingError
		if allLow {
			status |= Break
		}
	}

	rx.recv(data, status)
}
