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

package scheduler

import (
	"fmt"
	"strings"
	"time"
)

// Event is a one-shot action on the logical clock.
type Event struct {
	sch *Scheduler

	// label is a short decription describing the payload
	label string

	payload func()

	pending  bool
	deadline time.Duration
	seq      uint64
}

func (ev *Event) String() string {
	label := strings.TrimSpace(ev.label)
	if label == "" {
		label = "[unlabelled event]"
	}
	if !ev.pending {
		return fmt.Sprintf("%s -> idle", label)
	}
	return fmt.Sprintf("%s -> %v", label, ev.deadline-ev.sch.now)
}

// Label returns the label given to the event when it was created.
func (ev *Event) Label() string {
	return ev.label
}

// Reset arms the event to run after the delay. If the event is already
// pending the previous deadline is forgotten.
func (ev *Event) Reset(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	if ev.pending {
		ev.sch.drop(ev)
	}
	ev.pending = true
	ev.deadline = ev.sch.now + delay
	ev.sch.arm(ev)
}

// Cancel the event. Has no effect if the event is not pending.
func (ev *Event) Cancel() {
	if !ev.pending {
		return
	}
	ev.sch.drop(ev)
	ev.pending = false
}

// Force runs the payload immediately and cancels the pending deadline. Has no
// effect if the event is not pending.
func (ev *Event) Force() {
	if !ev.pending {
		return
	}
	ev.Cancel()
	ev.payload()
}

// Pending returns true if the event is armed.
func (ev *Event) Pending() bool {
	return ev.pending
}

// Deadline returns the time on the logical clock at which the event will
// run. Only meaningful if Pending() is true.
func (ev *Event) Deadline() time.Duration {
	return ev.deadline
}

// Remaining returns the time left before the event runs. Returns zero if the
// event is not pending.
func (ev *Event) Remaining() time.Duration {
	if !ev.pending {
		return 0
	}
	return ev.deadline - ev.sch.now
}
