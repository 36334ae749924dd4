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

package scheduler_test

import (
	"testing"
	"time"

	"github.com/swtpc/term8212/hardware/scheduler"
	"github.com/swtpc/term8212/test"
)

func TestOneShot(t *testing.T) {
	sch := scheduler.NewScheduler()

	var fired int
	var at time.Duration
	ev := sch.NewEvent("test", func() {
		fired++
		at = sch.Now()
	})

	test.ExpectFailure(t, ev.Pending())
	sch.Advance(time.Second)
	test.ExpectEquality(t, fired, 0)

	ev.Reset(250 * time.Millisecond)
	test.ExpectSuccess(t, ev.Pending())
	test.ExpectEquality(t, ev.Deadline(), 1250*time.Millisecond)

	sch.Advance(249 * time.Millisecond)
	test.ExpectEquality(t, fired, 0)
	test.ExpectEquality(t, ev.Remaining(), time.Millisecond)

	sch.Advance(time.Millisecond)
	test.ExpectEquality(t, fired, 1)
	test.ExpectEquality(t, at, 1250*time.Millisecond)
	test.ExpectFailure(t, ev.Pending())

	// one-shot. nothing more happens
	sch.Advance(time.Second)
	test.ExpectEquality(t, fired, 1)
	test.ExpectEquality(t, sch.Now(), 2250*time.Millisecond)
}

func TestRetrigger(t *testing.T) {
	sch := scheduler.NewScheduler()

	var times []time.Duration
	ev := sch.NewEvent("bell", func() {
		times = append(times, sch.Now())
	})

	ev.Reset(250 * time.Millisecond)
	sch.Advance(100 * time.Millisecond)
	ev.Reset(250 * time.Millisecond)
	test.ExpectEquality(t, sch.Pending(), 1)

	sch.Advance(time.Second)
	test.ExpectEquality(t, len(times), 1)
	test.ExpectEquality(t, times[0], 350*time.Millisecond)
}

func TestCancelAndForce(t *testing.T) {
	sch := scheduler.NewScheduler()

	var fired int
	ev := sch.NewEvent("test", func() { fired++ })

	ev.Reset(time.Millisecond)
	ev.Cancel()
	sch.Advance(time.Second)
	test.ExpectEquality(t, fired, 0)

	// cancelling an idle event is harmless
	ev.Cancel()

	ev.Reset(time.Millisecond)
	ev.Force()
	test.ExpectEquality(t, fired, 1)
	test.ExpectFailure(t, ev.Pending())
	sch.Advance(time.Second)
	test.ExpectEquality(t, fired, 1)
}

func TestOrdering(t *testing.T) {
	sch := scheduler.NewScheduler()

	var order []string
	a := sch.NewEvent("a", func() { order = append(order, "a") })
	b := sch.NewEvent("b", func() { order = append(order, "b") })
	c := sch.NewEvent("c", func() { order = append(order, "c") })

	c.Reset(20 * time.Microsecond)
	b.Reset(10 * time.Microsecond)
	a.Reset(10 * time.Microsecond)

	sch.Advance(time.Millisecond)
	test.ExpectEquality(t, len(order), 3)
	test.ExpectEquality(t, order[0], "b")
	test.ExpectEquality(t, order[1], "a")
	test.ExpectEquality(t, order[2], "c")
}

// a payload that rearms its own event acts as a periodic timer.
func TestSelfRearm(t *testing.T) {
	sch := scheduler.NewScheduler()

	var ticks int
	var ev *scheduler.Event
	ev = sch.NewEvent("tick", func() {
		ticks++
		ev.Reset(10 * time.Millisecond)
	})

	ev.Reset(10 * time.Millisecond)
	sch.Advance(105 * time.Millisecond)
	test.ExpectEquality(t, ticks, 10)
	test.ExpectEquality(t, ev.Deadline(), 110*time.Millisecond)
}
