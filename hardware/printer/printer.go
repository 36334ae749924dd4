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

// Package printer defines the sink for bytes sent through the printer port of
// the terminal.
//
// The terminal forwards one byte to the Sink for every completed ready/busy
// handshake on the second PIA. Implementations must not block.
package printer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/swtpc/term8212/curated"
)

// Sentinal error patterns.
const (
	WriteError = "printer: %v"
)

// Sink receives printed bytes.
type Sink interface {
	Print(data uint8)
}

// Buffer is a Sink that keeps every printed byte.
type Buffer struct {
	buf bytes.Buffer
}

// Print implements the Sink interface.
func (p *Buffer) Print(data uint8) {
	p.buf.WriteByte(data)
}

// Bytes returns the bytes printed so far.
func (p *Buffer) Bytes() []uint8 {
	return p.buf.Bytes()
}

func (p *Buffer) String() string {
	return p.buf.String()
}

// Clear the buffer.
func (p *Buffer) Clear() {
	p.buf.Reset()
}

// Writer is a Sink that forwards printed bytes to an io.Writer. The first
// write error is kept and subsequent bytes are dropped.
type Writer struct {
	w   io.Writer
	err error
	n   int
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Print implements the Sink interface.
func (p *Writer) Print(data uint8) {
	if p.err != nil {
		return
	}
	if _, err := p.w.Write([]byte{data}); err != nil {
		p.err = curated.Errorf(WriteError, err)
		return
	}
	p.n++
}

// Err returns the first write error.
func (p *Writer) Err() error {
	return p.err
}

func (p *Writer) String() string {
	return fmt.Sprintf("printer: %d bytes", p.n)
}
