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

package hostkeys

import (
	"io"
	"os"

	"github.com/pkg/term/termios"
	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/userinput"
	"golang.org/x/sys/unix"
)

// Sentinal error patterns.
const (
	NotTerminal = "hostkeys: %s is not a terminal"
	ReadError   = "hostkeys: %v"
)

// Quit is the key that ends keyboard input.
const Quit = userinput.QuitKey

// Keyboard collects bytes from the host.
type Keyboard struct {
	tty     *os.File
	canAttr unix.Termios

	keys chan uint8
	errs chan error
}

// NewKeyboard reads keys from any io.Reader. The reader is not closed.
func NewKeyboard(r io.Reader) *Keyboard {
	kb := &Keyboard{
		keys: make(chan uint8, 256),
		errs: make(chan error, 1),
	}
	go kb.read(r)
	return kb
}

// Open the terminal and put it into raw mode. Close() must be called to
// restore the terminal.
func Open(tty *os.File) (*Keyboard, error) {
	if !IsTerminal(tty) {
		return nil, curated.Errorf(NotTerminal, tty.Name())
	}

	var canAttr, rawAttr unix.Termios
	if err := termios.Tcgetattr(tty.Fd(), &canAttr); err != nil {
		return nil, curated.Errorf(ReadError, err)
	}
	rawAttr = canAttr
	termios.Cfmakeraw(&rawAttr)
	if err := termios.Tcsetattr(tty.Fd(), termios.TCIFLUSH, &rawAttr); err != nil {
		return nil, curated.Errorf(ReadError, err)
	}

	kb := NewKeyboard(tty)
	kb.tty = tty
	kb.canAttr = canAttr
	return kb, nil
}

// IsTerminal returns true if the file is a terminal.
func IsTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), getTermios)
	return err == nil
}

// Close restores the terminal to the mode it was in before Open().
func (kb *Keyboard) Close() error {
	if kb.tty == nil {
		return nil
	}
	if err := termios.Tcsetattr(kb.tty.Fd(), termios.TCIFLUSH, &kb.canAttr); err != nil {
		return curated.Errorf(ReadError, err)
	}
	return nil
}

// Poll passes every key read since the last call to the key function.
// Returns false when the Quit key has been pressed or the input has ended.
func (kb *Keyboard) Poll(key func(uint8)) (bool, error) {
	if !kb.drain(key) {
		return false, nil
	}

	select {
	case err := <-kb.errs:
		// keys read before the error are still delivered
		if !kb.drain(key) {
			return false, nil
		}
		if err == io.EOF {
			return false, nil
		}
		return false, curated.Errorf(ReadError, err)
	default:
	}

	return true, nil
}

// returns false if the Quit key was found.
func (kb *Keyboard) drain(key func(uint8)) bool {
	for {
		select {
		case c := <-kb.keys:
			if c == Quit {
				return false
			}
			key(c)
		default:
			return true
		}
	}
}

func (kb *Keyboard) read(r io.Reader) {
	buf := make([]uint8, 64)
	for {
		n, err := r.Read(buf)
		for _, c := range buf[:n] {
			kb.keys <- c
		}
		if err != nil {
			kb.errs <- err
			return
		}
	}
}
