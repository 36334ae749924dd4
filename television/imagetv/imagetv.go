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

// Package imagetv is a PixelRenderer that keeps the most recent complete
// frame and saves it to disk as a PNG file on request.
package imagetv

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/swtpc/term8212/curated"
)

// Sentinal error patterns.
const (
	NoFrame    = "imagetv: no frame to save"
	FileExists = "imagetv: image file (%s) already exists"
	SaveError  = "imagetv: %v"
)

// ImageTV implements the television.PixelRenderer interface.
type ImageTV struct {
	// the image being written to by SetRow(), until NewFrame() is called
	currFrame *image.NRGBA

	// the image saved by Save()
	lastFrame    *image.NRGBA
	lastFrameNum int
}

// NewImageTV is the preferred method of initialisation for the ImageTV type.
func NewImageTV() *ImageTV {
	return &ImageTV{}
}

// Resize implements the television.PixelRenderer interface.
func (imtv *ImageTV) Resize(width, height int) error {
	imtv.currFrame = image.NewNRGBA(image.Rect(0, 0, width, height))
	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (imtv *ImageTV) NewFrame(frameNum int) error {
	imtv.lastFrame = imtv.currFrame
	imtv.lastFrameNum = frameNum
	if imtv.lastFrame != nil {
		imtv.currFrame = image.NewNRGBA(imtv.lastFrame.Rect)
	}
	return nil
}

// SetRow implements the television.PixelRenderer interface.
func (imtv *ImageTV) SetRow(y int, row []color.RGBA) error {
	if imtv.currFrame == nil {
		return nil
	}
	w := imtv.currFrame.Rect.Dx()
	if w > len(row) {
		w = len(row)
	}
	for x := 0; x < w; x++ {
		imtv.currFrame.SetNRGBA(x, y, color.NRGBA(row[x]))
	}
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (imtv *ImageTV) EndRendering() error {
	return nil
}

// Frame returns the last complete frame and its number. The image is nil if
// no frame has been completed.
func (imtv *ImageTV) Frame() (*image.NRGBA, int) {
	return imtv.lastFrame, imtv.lastFrameNum
}

// Save the last complete frame to the named file. An existing file is never
// overwritten.
func (imtv *ImageTV) Save(filename string) error {
	if imtv.lastFrame == nil {
		return curated.Errorf(NoFrame)
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return curated.Errorf(FileExists, filename)
		}
		return curated.Errorf(SaveError, err)
	}
	defer f.Close()

	if err := png.Encode(f, imtv.lastFrame); err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}
