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

// Scheduler is the logical clock and the list of pending events.
type Scheduler struct {
	now time.Duration

	// pending events in no particular order. the number of events in the
	// terminal is small so a linear search is adequate
	pending []*Event

	// incremented every time an event is armed. used to order events with
	// the same deadline
	seq uint64
}

// NewScheduler is the preferred method of initialisation for the Scheduler type.
func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make([]*Event, 0, 8),
	}
}

func (sch *Scheduler) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("now=%v", sch.now))
	for _, ev := range sch.pending {
		s.WriteString(fmt.Sprintf(" [%s]", ev))
	}
	return s.String()
}

// Now returns the current value of the logical clock.
func (sch *Scheduler) Now() time.Duration {
	return sch.now
}

// NewEvent creates a new event attached to the scheduler. The event is not
// armed.
func (sch *Scheduler) NewEvent(label string, payload func()) *Event {
	return &Event{
		sch:     sch,
		label:   label,
		payload: payload,
	}
}

// Advance the logical clock by the duration. All events due in the period
// are run. On return Now() will be the previous value plus the duration.
func (sch *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	end := sch.now + d

	for {
		ev := sch.next(end)
		if ev == nil {
			break
		}

		sch.drop(ev)
		ev.pending = false
		sch.now = ev.deadline
		ev.payload()
	}

	sch.now = end
}

// Pending returns the number of events currently armed.
func (sch *Scheduler) Pending() int {
	return len(sch.pending)
}

// next returns the earliest event with a deadline at or before limit.
func (sch *Scheduler) next(limit time.Duration) *Event {
	var ev *Event
	for _, e := range sch.pending {
		if e.deadline > limit {
			continue
		}
		if ev == nil || e.deadline < ev.deadline || (e.deadline == ev.deadline && e.seq < ev.seq) {
			ev = e
		}
	}
	return ev
}

func (sch *Scheduler) arm(ev *Event) {
	sch.seq++
	ev.seq = sch.seq
	sch.pending = append(sch.pending, ev)
}

func (sch *Scheduler) drop(ev *Event) {
	for i, e := range sch.pending {
		if e == ev {
			sch.pending = append(sch.pending[:i], sch.pending[i+1:]...)
			return
		}
	}
}
