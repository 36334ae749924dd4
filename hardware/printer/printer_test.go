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

package printer_test

import (
	"errors"
	"testing"

	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/hardware/printer"
	"github.com/swtpc/term8212/test"
)

func TestBuffer(t *testing.T) {
	var p printer.Buffer
	for _, b := range []byte("hello\r\n") {
		p.Print(b)
	}
	test.ExpectEquality(t, p.String(), "hello\r\n")
	p.Clear()
	test.ExpectEquality(t, len(p.Bytes()), 0)
}

type failing struct {
	writes int
}

func (f *failing) Write(p []byte) (int, error) {
	f.writes++
	if f.writes > 2 {
		return 0, errors.New("paper out")
	}
	return len(p), nil
}

func TestWriter(t *testing.T) {
	tw := &test.Writer{}
	p := printer.NewWriter(tw)
	p.Print('o')
	p.Print('k')
	test.ExpectSuccess(t, tw.Compare("ok"))
	test.ExpectSuccess(t, p.Err())

	f := &failing{}
	p = printer.NewWriter(f)
	for i := 0; i < 5; i++ {
		p.Print('x')
	}
	test.ExpectEquality(t, f.writes, 3)
	test.ExpectSuccess(t, curated.Is(p.Err(), printer.WriteError))
	test.ExpectEquality(t, p.String(), "printer: 2 bytes")
}
