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

package chargen

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/swtpc/term8212/curated"
)

// Sentinal error patterns.
const (
	ImageSize = "chargen: image %s is %d bytes, expected %d"
	ImageLoad = "chargen: %v"
)

// Size of a character generator image.
const Size = 0x800

// MaxRows is the number of glyph rows in the image. Rows at or beyond this
// value are blank.
const MaxRows = 16

// Generator is a single character generator image.
type Generator struct {
	label string
	data  [Size]uint8
}

// NewGenerator creates a Generator from a 2k image.
func NewGenerator(label string, image []uint8) (*Generator, error) {
	if len(image) != Size {
		return nil, curated.Errorf(ImageSize, label, len(image), Size)
	}
	g := &Generator{label: label}
	copy(g.data[:], image)
	return g, nil
}

// Load a Generator from a file. The label of the Generator is the filename.
func Load(filename string) (*Generator, error) {
	d, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(ImageLoad, err)
	}
	return NewGenerator(filename, d)
}

// Blank returns a Generator with no lit pixels.
func Blank(label string) *Generator {
	return &Generator{label: label}
}

func (g *Generator) String() string {
	return fmt.Sprintf("%s: %x", g.label, sha1.Sum(g.data[:]))
}

// Label returns the label used when creating the Generator.
func (g *Generator) Label() string {
	return g.label
}

// Glyph returns the eight pixels of the glyph row for the character code. The
// most significant bit is the leftmost pixel. Bit 7 of the code is ignored.
func (g *Generator) Glyph(code uint8, row uint8) uint8 {
	if row >= MaxRows {
		return 0
	}
	return g.data[Address(code, row)]
}

// Address returns the offset into the image of the glyph row.
func Address(code uint8, row uint8) uint16 {
	return uint16(code&0x7f) | uint16(row&0x0f)<<7
}
