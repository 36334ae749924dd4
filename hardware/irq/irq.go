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

// Package irq merges the interrupt request lines of the terminal onto the
// single interrupt input of the CPU.
//
// The request lines are IRQA and IRQB of the keyboard PIA and INT of the
// UART. The CPU input is asserted while any of the request lines is asserted.
// There is no masking and no priority.
package irq

import (
	"fmt"
	"strings"
)

// Source identifies one of the interrupt request lines.
type Source int

// List of valid Source values.
const (
	PIA0A Source = iota
	PIA0B
	UART
	NumSources
)

func (s Source) String() string {
	switch s {
	case PIA0A:
		return "pia0 irqa"
	case PIA0B:
		return "pia0 irqb"
	case UART:
		return "uart int"
	}
	return "unknown"
}

// Merger ORs the request lines together. The output function is called only
// when the merged state changes.
type Merger struct {
	latch  uint8
	output func(bool)
}

// NewMerger is the preferred method of initialisation for the Merger type. The
// output function may be nil.
func NewMerger(output func(bool)) *Merger {
	return &Merger{output: output}
}

// Set the state of a request line.
func (m *Merger) Set(src Source, state bool) {
	prev := m.Asserted()
	if state {
		m.latch |= 1 << src
	} else {
		m.latch &^= 1 << src
	}
	if m.output != nil && prev != m.Asserted() {
		m.output(m.Asserted())
	}
}

// Line returns a function that sets the state of the request line. Suitable
// for use as a callback in the connections of the interrupting chips.
func (m *Merger) Line(src Source) func(bool) {
	return func(state bool) {
		m.Set(src, state)
	}
}

// Asserted returns true if any request line is asserted.
func (m *Merger) Asserted() bool {
	return m.latch != 0
}

// Requested returns true if the request line is asserted.
func (m *Merger) Requested(src Source) bool {
	return m.latch&(1<<src) != 0
}

func (m *Merger) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("irq: %v", m.Asserted()))
	for src := PIA0A; src < NumSources; src++ {
		if m.Requested(src) {
			s.WriteString(fmt.Sprintf(" [%s]", src))
		}
	}
	return s.String()
}
