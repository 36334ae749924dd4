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

package hostkeys_test

import (
	"strings"
	"testing"
	"time"

	"github.com/swtpc/term8212/test"
	"github.com/swtpc/term8212/userinput/hostkeys"
)

func collect(t *testing.T, kb *hostkeys.Keyboard) string {
	t.Helper()

	var s strings.Builder
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		ok, err := kb.Poll(func(c uint8) { s.WriteByte(c) })
		test.DemandSuccess(t, err)
		if !ok {
			return s.String()
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("keyboard did not end")
	return ""
}

func TestQuit(t *testing.T) {
	kb := hostkeys.NewKeyboard(strings.NewReader("ab\x1dc"))
	test.ExpectEquality(t, collect(t, kb), "ab")
	test.ExpectSuccess(t, kb.Close())
}

func TestEndOfInput(t *testing.T) {
	kb := hostkeys.NewKeyboard(strings.NewReader("\r\x08z"))
	test.ExpectEquality(t, collect(t, kb), "\r\x08z")
}
