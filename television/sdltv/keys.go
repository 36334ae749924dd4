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

package sdltv

import (
	"github.com/swtpc/term8212/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// names of the special keys.
var keyNames = map[sdl.Keycode]string{
	sdl.K_RETURN:    "Return",
	sdl.K_KP_ENTER:  "Return",
	sdl.K_BACKSPACE: "Backspace",
	sdl.K_TAB:       "Tab",
	sdl.K_ESCAPE:    "Escape",
	sdl.K_DELETE:    "Delete",
	sdl.K_SPACE:     "Space",
}

// KeyEvent converts an SDL key to a userinput.EventKeyboard. Letters are
// named in upper case.
func KeyEvent(sym sdl.Keycode, mod uint16, down bool, repeat bool) userinput.EventKeyboard {
	ev := userinput.EventKeyboard{
		Down:   down,
		Repeat: repeat,
	}

	switch {
	case mod&(sdl.KMOD_LCTRL|sdl.KMOD_RCTRL) != 0:
		ev.Mod = userinput.KeyModCtrl
	case mod&(sdl.KMOD_LALT|sdl.KMOD_RALT) != 0:
		ev.Mod = userinput.KeyModAlt
	case mod&(sdl.KMOD_LSHIFT|sdl.KMOD_RSHIFT) != 0:
		ev.Mod = userinput.KeyModShift
	}

	if n, ok := keyNames[sym]; ok {
		ev.Key = n
	} else if sym >= sdl.K_a && sym <= sdl.K_z {
		ev.Key = string(rune('A' + sym - sdl.K_a))
	} else if sym > sdl.K_SPACE && sym < sdl.K_DELETE {
		ev.Key = string(rune(sym))
	}

	return ev
}
