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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/swtpc/term8212/hardware/preferences"
	"github.com/swtpc/term8212/prefs"
	"github.com/swtpc/term8212/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile("")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.DIPSwitches(), uint8(0x19))
	test.ExpectEquality(t, p.Config(), uint8(0x0f))
	test.ExpectSuccess(t, p.DTRFlowControl())
	test.ExpectSuccess(t, p.OneStopBit.Get().(bool))
}

func TestBaudCode(t *testing.T) {
	test.ExpectEquality(t, preferences.BaudCode(110), uint8(0x04))
	test.ExpectEquality(t, preferences.BaudCode(300), uint8(0x0a))
	test.ExpectEquality(t, preferences.BaudCode(7200), uint8(0x18))
	test.ExpectEquality(t, preferences.BaudCode(38400), uint8(0x1f))

	// out of range rates round down
	test.ExpectEquality(t, preferences.BaudCode(50), uint8(0x04))
	test.ExpectEquality(t, preferences.BaudCode(9601), uint8(0x19))
	test.ExpectEquality(t, preferences.BaudCode(115200), uint8(0x1f))

	test.ExpectEquality(t, len(preferences.BaudRates()), 10)

	test.ExpectEquality(t, preferences.SwitchRate(9601), 9600)
	test.ExpectEquality(t, preferences.SwitchRate(0), 110)
	test.ExpectEquality(t, preferences.SwitchRate(115200), 38400)
}

func TestSwitches(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile("")
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Baud.Set(300))
	test.ExpectSuccess(t, p.PageEdit.Set(true))
	test.ExpectSuccess(t, p.EvenParity.Set(true))
	test.ExpectEquality(t, p.DIPSwitches(), uint8(0x0a|0x20|0x80))

	test.ExpectSuccess(t, p.Parity.Set(true))
	test.ExpectEquality(t, p.DIPSwitches()&preferences.DIPParity, preferences.DIPParity)

	test.ExpectSuccess(t, p.HalfDuplex.Set(false))
	test.ExpectSuccess(t, p.OptionROM.Set(true))
	test.ExpectEquality(t, p.Config(), uint8(0x0c))

	test.ExpectSuccess(t, p.FlowControl.Set("NONE"))
	test.ExpectFailure(t, p.DTRFlowControl())
	test.ExpectSuccess(t, p.FlowControl.Set("DTR"))
	test.ExpectSuccess(t, p.DTRFlowControl())
}

func TestPersistence(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Baud.Set(1200))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Baud.Get().(int), 1200)
	test.ExpectEquality(t, q.DIPSwitches(), uint8(0x0f))
}
