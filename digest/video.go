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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image/color"
)

const pixelDepth = 3

// Video is an implementation of the television.PixelRenderer interface.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	width    int
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// Video instance must be added to a television with AddPixelRenderer().
func NewVideo() *Video {
	return &Video{}
}

func (dig *Video) String() string {
	return fmt.Sprintf("video digest: %s (frame %d)", dig.Hash(), dig.frameNum)
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Resize implements the television.PixelRenderer interface.
func (dig *Video) Resize(width, height int) error {
	// room for the previous digest value at the head of the pixel data
	dig.width = width
	dig.pixels = make([]byte, len(dig.digest)+width*height*pixelDepth)
	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (dig *Video) NewFrame(frameNum int) error {
	copy(dig.pixels, dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
	return nil
}

// SetRow implements the television.PixelRenderer interface.
func (dig *Video) SetRow(y int, row []color.RGBA) error {
	i := len(dig.digest) + y*dig.width*pixelDepth
	for x := 0; x < dig.width && x < len(row); x++ {
		if i > len(dig.pixels)-pixelDepth {
			break
		}
		dig.pixels[i] = row[x].R
		dig.pixels[i+1] = row[x].G
		dig.pixels[i+2] = row[x].B
		i += pixelDepth
	}
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
