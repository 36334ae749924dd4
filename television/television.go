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

package television

import (
	"fmt"
	"image/color"

	"github.com/go-audio/audio"
	"github.com/swtpc/term8212/curated"
)

// Sentinal error patterns.
const (
	RendererError = "television: %v"
)

// Television forwards the output of the terminal to the attached renderers
// and mixers.
type Television struct {
	label string

	width  int
	height int

	renderers []PixelRenderer
	mixers    []AudioMixer

	// number of frames since the television was created
	frameNum int

	// number of visible rows received since the last frame
	rows int
}

// NewTelevision is the preferred method of initialisation for the Television
// type.
func NewTelevision(label string) *Television {
	return &Television{
		label:  label,
		width:  Width,
		height: Height,
	}
}

func (tv *Television) String() string {
	return fmt.Sprintf("%s: frame %d, %dx%d", tv.label, tv.frameNum, tv.width, tv.height)
}

// AddPixelRenderer registers an (additional) implementation of PixelRenderer.
func (tv *Television) AddPixelRenderer(r PixelRenderer) error {
	tv.renderers = append(tv.renderers, r)
	if err := r.Resize(tv.width, tv.height); err != nil {
		return curated.Errorf(RendererError, err)
	}
	return nil
}

// AddAudioMixer registers an (additional) implementation of AudioMixer.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	tv.mixers = append(tv.mixers, m)
}

// Resize changes the size of the display area. The width and height are
// clamped to the visible area of the monitor.
func (tv *Television) Resize(width, height int) error {
	if width > Width {
		width = Width
	}
	if height > Height {
		height = Height
	}
	if width == tv.width && height == tv.height {
		return nil
	}

	tv.width = width
	tv.height = height
	for _, r := range tv.renderers {
		if err := r.Resize(width, height); err != nil {
			return curated.Errorf(RendererError, err)
		}
	}
	return nil
}

// Size returns the current size of the display area.
func (tv *Television) Size() (int, int) {
	return tv.width, tv.height
}

// FrameNum returns the number of frames since the television was created.
func (tv *Television) FrameNum() int {
	return tv.frameNum
}

// SetRow sends a row of pixels to the renderers. Rows outside of the display
// area are ignored.
func (tv *Television) SetRow(y int, row []color.RGBA) error {
	if y < 0 || y >= tv.height {
		return nil
	}
	tv.rows++
	for _, r := range tv.renderers {
		if err := r.SetRow(y, row); err != nil {
			return curated.Errorf(RendererError, err)
		}
	}
	return nil
}

// NewFrame indicates that the current frame is complete.
func (tv *Television) NewFrame() error {
	tv.frameNum++
	tv.rows = 0
	for _, r := range tv.renderers {
		if err := r.NewFrame(tv.frameNum); err != nil {
			return curated.Errorf(RendererError, err)
		}
	}
	return nil
}

// SetAudio sends PCM data to the mixers.
func (tv *Television) SetAudio(buf *audio.IntBuffer) error {
	for _, m := range tv.mixers {
		if err := m.SetAudio(buf); err != nil {
			return curated.Errorf(RendererError, err)
		}
	}
	return nil
}

// End calls EndRendering() and EndMixing() on all renderers and mixers. The
// first error is returned but every renderer and mixer is ended.
func (tv *Television) End() error {
	var err error
	for _, r := range tv.renderers {
		if e := r.EndRendering(); e != nil && err == nil {
			err = curated.Errorf(RendererError, e)
		}
	}
	for _, m := range tv.mixers {
		if e := m.EndMixing(); e != nil && err == nil {
			err = curated.Errorf(RendererError, e)
		}
	}
	return err
}
