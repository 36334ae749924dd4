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

// Package scheduler implements the logical clock that drives every timed
// behaviour of the terminal. Time is measured as a time.Duration since power
// on and only moves forward when Advance() is called.
//
// Events are one-shot. An event is created once, with a label and a payload,
// and then armed as often as required with Reset():
//
//	bell := sch.NewEvent("bell", func() { ... })
//	bell.Reset(250 * time.Millisecond)
//
// Resetting an event that is already pending cancels the pending expiry. An
// event is never queued more than once.
//
// Advance() runs the payload of every event that falls due in the advanced
// period, in deadline order. Events with the same deadline run in the order
// in which they were armed. A payload may arm events, including itself, and
// those events will also run during the same call to Advance() if they fall
// due.
package scheduler
