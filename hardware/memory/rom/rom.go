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

package rom

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/hardware/memory/memorymap"
	"github.com/swtpc/term8212/logger"
)

// Sentinal error patterns.
const (
	ImageSize  = "rom: image %s is %d bytes, expected %d"
	ImageCount = "rom: expected one or two image files, got %d"
	ImageLoad  = "rom: %v"
)

// location and value of the stop bit patch.
const (
	StopBitAddress = 0x01ad
	StopBitValue   = uint8(0x02)
)

// halfSize is the size of each EPROM.
const halfSize = memorymap.SizeROM / 2

// Program is the firmware image.
type Program struct {
	data     [memorymap.SizeROM]uint8
	pristine [memorymap.SizeROM]uint8
	patched  bool
}

// NewProgram creates a Program from a 4k image.
func NewProgram(image []uint8) (*Program, error) {
	if len(image) != memorymap.SizeROM {
		return nil, curated.Errorf(ImageSize, "data", len(image), memorymap.SizeROM)
	}
	p := &Program{}
	copy(p.data[:], image)
	copy(p.pristine[:], image)
	return p, nil
}

// Blank returns a Program with every byte set to zero.
func Blank() *Program {
	return &Program{}
}

// Load the firmware from one 4k file or from two 2k files.
func Load(filenames ...string) (*Program, error) {
	var image []uint8

	switch len(filenames) {
	case 1:
		d, err := loadFile(filenames[0], memorymap.SizeROM)
		if err != nil {
			return nil, err
		}
		image = d
	case 2:
		for _, fn := range filenames {
			d, err := loadFile(fn, halfSize)
			if err != nil {
				return nil, err
			}
			image = append(image, d...)
		}
	default:
		return nil, curated.Errorf(ImageCount, len(filenames))
	}

	return NewProgram(image)
}

func loadFile(filename string, size int) ([]uint8, error) {
	d, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(ImageLoad, err)
	}
	if len(d) != size {
		return nil, curated.Errorf(ImageSize, filename, len(d), size)
	}
	return d, nil
}

func (p *Program) String() string {
	return fmt.Sprintf("rom: %s (stop bit patch %v)", p.Hash(), p.patched)
}

// Hash returns the SHA1 of the unpatched image.
func (p *Program) Hash() string {
	return fmt.Sprintf("%x", sha1.Sum(p.pristine[:]))
}

// Read returns the byte at the offset into the image.
func (p *Program) Read(offset uint16) uint8 {
	return p.data[offset%memorymap.SizeROM]
}

// Poke changes the byte at the offset into the image. The change is lost if
// the stop bit patch is reapplied and the offset is the patch location.
func (p *Program) Poke(offset uint16, value uint8) {
	p.data[offset%memorymap.SizeROM] = value
}

// Patched returns true if the stop bit patch has been applied.
func (p *Program) Patched() bool {
	return p.patched
}

// StopBitPatch applies or removes the stop bit patch. The patch location is
// restored from the original image before the patch is (re)applied.
func (p *Program) StopBitPatch(perm logger.Permission, apply bool) {
	p.data[StopBitAddress] = p.pristine[StopBitAddress]
	p.patched = apply
	if apply {
		p.data[StopBitAddress] = StopBitValue
		logger.Logf(perm, "rom", "one stop bit patch applied at %04x", StopBitAddress)
	}
}
