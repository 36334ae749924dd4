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

// Transmitter shifts frames on to a line.
type Transmitter struct {
	ev *scheduler.Event

	format Format
	period time.Duration

	// line is called whenever the output level changes
	line  func(level bool)
	level bool

	// done is called when the last stop bit of a frame has been sent
	done func()

	levels []bool
	idx    int
	busy   bool

	// hold the line low
	brk bool
}

// NewTransmitter is the preferred method of initialisation for the
// Transmitter type. The line function is required but the done function can
// be nil.
func NewTransmitter(sch *scheduler.Scheduler, label string, line func(level bool), done func()) *Transmitter {
	tx := &Transmitter{
		format: DefaultFormat,
		period: time.Second / 9600,
		line:   line,
		done:   done,
		level:  true,
	}
	tx.ev = sch.NewEvent(label, tx.step)
	return tx
}

// SetFormat changes the frame format and the bit period. A frame being sent
// is not affected.
func (tx *Transmitter) SetFormat(format Format, period time.Duration) {
	tx.format = format
	tx.period = period
}

// Format returns the current frame format.
func (tx *Transmitter) Format() Format {
	return tx.format
}

// Period returns the current bit period.
func (tx *Transmitter) Period() time.Duration {
	return tx.period
}

// Busy returns true while a frame is being sent.
func (tx *Transmitter) Busy() bool {
	return tx.busy
}

// Send starts a new frame. Returns false if a frame is already being sent.
func (tx *Transmitter) Send(data uint8) bool {
	if tx.busy {
		return false
	}
	tx.busy = true
	tx.levels = tx.format.Levels(data)
	tx.idx = 0
	tx.drive(tx.levels[0])
	tx.ev.Reset(tx.period)
	return true
}

// Break holds the line low while on is true. Frames continue to be clocked
// out but are not seen on the line.
func (tx *Transmitter) Break(on bool) {
	tx.brk = on
	if tx.busy && tx.idx < len(tx.levels) {
		tx.drive(tx.levels[tx.idx])
	} else {
		tx.drive(true)
	}
}

// Reset abandons any frame being sent and returns the line to idle.
func (tx *Transmitter) Reset() {
	tx.ev.Cancel()
	tx.busy = false
	tx.brk = false
	tx.drive(true)
}

func (tx *Transmitter) drive(level bool) {
	level = level && !tx.brk
	if level == tx.level {
		return
	}
	tx.level = level
	tx.line(level)
}

func (tx *Transmitter) step() {
	tx.idx++

	if tx.idx < len(tx.levels) {
		tx.drive(tx.levels[tx.idx])
		tx.ev.Reset(tx.period)
		return
	}

	if tx.idx == len(tx.levels) {
		// stop bits
		tx.drive(true)
		tx.ev.Reset(tx.period * time.Duration(tx.format.StopBits) / 2)
		return
	}

	tx.busy = false
	if tx.done != nil {
		tx.done()
	}
}
