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

// HandleInput conceptualises data being sent to the keyboard port of the
// terminal. Implemented by hardware.Terminal.
type HandleInput interface {
	KeyPress(data uint8)
}

// Event represents all the different type of events that can occur in the
// host input.
type Event interface{}

// EventQuit is sent when the host window has been closed.
type EventQuit struct{}

// KeyMod identifies the modifier key held during a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is a key that has been pressed or released. Key is the name
// of the key: an upper case letter, a punctuation character or one of the
// names of the special keys (for example "Return").
type EventKeyboard struct {
	Key    string
	Mod    KeyMod
	Down   bool
	Repeat bool
}

// EventText is text produced by the host keyboard layout. Printable
// characters normally arrive as EventText rather than EventKeyboard.
type EventText struct {
	Text string
}

// EventByte is a byte read from a host terminal in raw mode.
type EventByte struct {
	Data uint8
}
