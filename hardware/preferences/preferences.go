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

package preferences

import (
	"strings"

	"github.com/swtpc/term8212/paths"
	"github.com/swtpc/term8212/prefs"
)

// Flow control wiring options for the rs232.flowcontrol preference.
const (
	FlowNone = "none"
	FlowDTR  = "dtr"
)

// Preferences defines and collates all the preference values used by the
// terminal hardware.
type Preferences struct {
	dsk *prefs.Disk
	pth string

	// DIP switches. read by the firmware through port B of the second PIA
	Baud     prefs.Int
	PageEdit prefs.Bool

	// parity is enabled when set. the switch is labelled "No Parity" and is
	// closed (bit clear) in the no parity position
	Parity     prefs.Bool
	EvenParity prefs.Bool

	// duplex switch and jumpers. read through port A of the first PIA
	HalfDuplex prefs.Bool
	OptionROM  prefs.Bool
	MarkSpace  prefs.Bool
	EightBit   prefs.Bool

	// patch firmware on reset so that the UART uses one stop bit
	OneStopBit prefs.Bool

	// FlowNone or FlowDTR
	FlowControl prefs.String

	BellFrequency prefs.Int
	BellVolume    prefs.Int
	BellSample    prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile creates a Preferences instance backed by the named
// file. If the filename is empty the preferences are never loaded from or
// saved to disk.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{pth: pth}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, v := range []struct {
		key string
		val value
	}{
		{"switches.baud", &p.Baud},
		{"switches.pageedit", &p.PageEdit},
		{"switches.parity", &p.Parity},
		{"switches.evenparity", &p.EvenParity},
		{"config.halfduplex", &p.HalfDuplex},
		{"config.optionrom", &p.OptionROM},
		{"config.markspace", &p.MarkSpace},
		{"config.eightbit", &p.EightBit},
		{"config.onestopbit", &p.OneStopBit},
		{"rs232.flowcontrol", &p.FlowControl},
		{"bell.frequency", &p.BellFrequency},
		{"bell.volume", &p.BellVolume},
		{"bell.sample", &p.BellSample},
	} {
		if err := p.dsk.Add(v.key, v.val); err != nil {
			return nil, err
		}
	}

	if pth == "" {
		return p, nil
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// value is satisfied by all prefs value types.
type value interface {
	String() string
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// SetDefaults reverts all preferences to their default values. Defaults
// describe a terminal set for 9600 baud, eight bit data, no parity, half
// duplex and DTR flow control.
func (p *Preferences) SetDefaults() {
	p.Baud.Set(9600)
	p.PageEdit.Set(false)
	p.Parity.Set(false)
	p.EvenParity.Set(false)
	p.HalfDuplex.Set(true)
	p.OptionROM.Set(false)
	p.MarkSpace.Set(true)
	p.EightBit.Set(true)
	p.OneStopBit.Set(true)
	p.FlowControl.Set(FlowDTR)
	p.BellFrequency.Set(2000)
	p.BellVolume.Set(25)
	p.BellSample.Set("")
}

// Load preferences from disk. Does nothing if the preferences are not backed
// by a file.
func (p *Preferences) Load() error {
	if p.pth == "" {
		return nil
	}
	return p.dsk.Load(false)
}

// Save preferences to disk. Does nothing if the preferences are not backed
// by a file.
func (p *Preferences) Save() error {
	if p.pth == "" {
		return nil
	}
	return p.dsk.Save()
}

// DTRFlowControl returns true if the terminal's DTR output is wired to the
// CTS input of the remote device.
func (p *Preferences) DTRFlowControl() bool {
	return strings.EqualFold(strings.TrimSpace(p.FlowControl.String()), FlowDTR)
}
