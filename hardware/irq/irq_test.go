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

package irq_test

import (
	"testing"

	"github.com/swtpc/term8212/hardware/irq"
	"github.com/swtpc/term8212/test"
)

func TestMerger(t *testing.T) {
	var changes []bool
	m := irq.NewMerger(func(state bool) {
		changes = append(changes, state)
	})

	test.ExpectFailure(t, m.Asserted())

	m.Set(irq.PIA0A, true)
	test.ExpectSuccess(t, m.Asserted())

	// second source does not change the output
	uart := m.Line(irq.UART)
	uart(true)
	test.ExpectEquality(t, len(changes), 1)
	test.ExpectEquality(t, m.String(), "irq: true [pia0 irqa] [uart int]")

	m.Set(irq.PIA0A, false)
	test.ExpectSuccess(t, m.Asserted())
	test.ExpectEquality(t, len(changes), 1)

	uart(false)
	test.ExpectFailure(t, m.Asserted())
	test.ExpectEquality(t, len(changes), 2)
	test.ExpectEquality(t, changes[0], true)
	test.ExpectEquality(t, changes[1], false)

	// deasserting an inactive line does nothing
	m.Set(irq.PIA0B, false)
	test.ExpectEquality(t, len(changes), 2)
	test.ExpectEquality(t, m.String(), "irq: false")
}
