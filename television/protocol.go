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
	"image/color"

	"github.com/go-audio/audio"
)

// PixelRenderer implementations display, or otherwise work with, visual
// information from a television. For example digest.Video.
type PixelRenderer interface {
	// Resize is called when the size of the display area changes. It is
	// always called once when the renderer is added to the television
	Resize(width, height int) error

	// NewFrame is called at the end of every frame. The renderer should
	// present the frame that has been built by SetRow()
	NewFrame(frameNum int) error

	// SetRow is called once for every visible scanline. The length of the
	// row is always Width. The renderer must not keep a reference to the
	// slice
	SetRow(y int, row []color.RGBA) error

	// some renderers may need to conclude and/or dispose of resources gently.
	// for simplicity, the PixelRenderer should be considered unusable after
	// EndRendering() has been called
	EndRendering() error
}

// AudioMixer implementations work with sound; most probably playing it. The
// wavwriter package is an example of a mixer that does not play sound.
type AudioMixer interface {
	SetAudio(buf *audio.IntBuffer) error

	// some mixers may need to conclude and/or dispose of resources gently.
	// for simplicity, the AudioMixer should be considered unusable after
	// EndMixing() has been called
	EndMixing() error
}
