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

package userinput

// ASCII codes for the special keys.
var specialKeys = map[string]uint8{
	"Return":    0x0d,
	"Backspace": 0x08,
	"Tab":       0x09,
	"Escape":    0x1b,
	"Delete":    0x7f,
}

// keyboard handles key presses sent from an SDL window. Printable keys
// without the control modifier are ignored because they arrive as text.
// Returns the ASCII code and true if the key has been handled.
func keyboard(ev EventKeyboard) (uint8, bool) {
	if !ev.Down {
		return 0, false
	}

	if c, ok := specialKeys[ev.Key]; ok {
		return c, true
	}

	if ev.Mod == KeyModCtrl && len(ev.Key) == 1 {
		// control codes for @ A-Z [ \ ] ^ _
		k := ev.Key[0]
		if k >= 'a' && k <= 'z' {
			k -= 'a' - 'A'
		}
		if k >= '@' && k <= '_' {
			return k & 0x1f, true
		}
	}

	return 0, false
}

// text returns the ASCII codes in the string. Characters outside of the
// ASCII range are dropped.
func text(ev EventText) []uint8 {
	d := make([]uint8, 0, len(ev.Text))
	for _, r := range ev.Text {
		if r < 0x80 {
			d = append(d, uint8(r))
		}
	}
	return d
}
