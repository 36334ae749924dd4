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

package bell

import (
	"fmt"
	"time"

	"github.com/swtpc/term8212/hardware/scheduler"
	"github.com/swtpc/term8212/logger"
)

// Duration is the time the bell sounds after being triggered.
const Duration = 250 * time.Millisecond

// Bell is the on/off state of the beeper and the timer that turns it off.
type Bell struct {
	perm  logger.Permission
	timer *scheduler.Event

	on bool

	// called whenever the on/off state changes. may be nil
	changed func(bool)
}

// NewBell is the preferred method of initialisation for the Bell type.
func NewBell(perm logger.Permission, sch *scheduler.Scheduler, changed func(bool)) *Bell {
	b := &Bell{
		perm:    perm,
		changed: changed,
	}
	b.timer = sch.NewEvent("bell", func() {
		b.set(false)
	})
	return b
}

func (b *Bell) String() string {
	if b.on {
		return fmt.Sprintf("bell: on (%v)", b.timer.Remaining())
	}
	return "bell: off"
}

func (b *Bell) set(on bool) {
	if b.on == on {
		return
	}
	b.on = on
	if on {
		logger.Log(b.perm, "bell", "on")
	} else {
		logger.Log(b.perm, "bell", "off")
	}
	if b.changed != nil {
		b.changed(on)
	}
}

// Trigger turns the bell on and (re)starts the timer.
func (b *Bell) Trigger() {
	b.set(true)
	b.timer.Reset(Duration)
}

// On returns true if the bell is sounding.
func (b *Bell) On() bool {
	return b.on
}

// Deadline returns the time on the logical clock at which the bell will turn
// off. Returns false if the bell is not on.
func (b *Bell) Deadline() (time.Duration, bool) {
	if !b.timer.Pending() {
		return 0, false
	}
	return b.timer.Deadline(), true
}

// Reset turns the bell off and cancels the timer.
func (b *Bell) Reset() {
	b.timer.Cancel()
	b.set(false)
}
