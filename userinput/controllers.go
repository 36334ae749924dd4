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

// QuitKey is the ASCII code that ends the emulation (ctrl-]). It is never
// forwarded to the terminal.
const QuitKey = 0x1d

// Controllers keeps track of host input.
type Controllers struct {
	// whether or not the last HandleUserInput() was for an event that was
	// forwarded to the terminal
	LastKeyHandled bool

	// is true if last event was a quit emulation event
	Quit bool
}

func (c *Controllers) press(data uint8, handle HandleInput) {
	if data == QuitKey {
		c.Quit = true
		return
	}
	handle.KeyPress(data)
	c.LastKeyHandled = true
}

// HandleUserInput deciphers the Event and forwards the ASCII codes to the
// keyboard port. The Quit field is set if the event should cause the
// emulation to end.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) {
	c.Quit = false
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		if d, ok := keyboard(ev); ok {
			c.press(d, handle)
		}
	case EventText:
		for _, d := range text(ev) {
			c.press(d, handle)
			if c.Quit {
				return
			}
		}
	case EventByte:
		c.press(ev.Data, handle)
	default:
	}
}
