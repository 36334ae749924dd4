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

package sdltv

import (
	"image/color"
	"strings"

	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error patterns.
const (
	SDLError = "sdltv: %v"
)

// bytes per pixel in the texture.
const pixelDepth = 4

// SDLTV implements the television.PixelRenderer interface.
type SDLTV struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int32
	height int32
	scale  float32

	// the frame being built by SetRow() and the frame last presented
	pixels  []uint8
	present []uint8

	// receives the input events of the window
	events func(userinput.Event)

	closed bool
}

// NewSDLTV is the preferred method of initialisation for the SDLTV type. The
// scale value is applied to the height of each scanline. Characters typed
// into the window, and the closing of the window, are passed to the events
// function.
func NewSDLTV(title string, scale float32, events func(userinput.Event)) (*SDLTV, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	tv := &SDLTV{
		scale:  scale,
		events: events,
	}

	var err error

	tv.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, 0, 0, sdl.WINDOW_HIDDEN)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	tv.renderer, err = sdl.CreateRenderer(tv.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	sdl.StartTextInput()

	return tv, nil
}

// Resize implements the television.PixelRenderer interface.
func (tv *SDLTV) Resize(width, height int) error {
	if tv.texture != nil {
		tv.texture.Destroy()
	}

	tv.width = int32(width)
	tv.height = int32(height)

	var err error
	tv.texture, err = tv.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), tv.width, tv.height)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	tv.pixels = make([]uint8, width*height*pixelDepth)
	tv.present = make([]uint8, width*height*pixelDepth)

	// the display has more columns than rows so scanlines are doubled
	tv.window.SetSize(tv.width, int32(float32(tv.height)*tv.scale*2))
	tv.window.Show()

	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (tv *SDLTV) NewFrame(_ int) error {
	tv.pixels, tv.present = tv.present, tv.pixels
	return tv.update()
}

// SetRow implements the television.PixelRenderer interface.
func (tv *SDLTV) SetRow(y int, row []color.RGBA) error {
	if y < 0 || int32(y) >= tv.height {
		return nil
	}
	i := y * int(tv.width) * pixelDepth
	for x := 0; x < int(tv.width) && x < len(row); x++ {
		tv.pixels[i] = row[x].R
		tv.pixels[i+1] = row[x].G
		tv.pixels[i+2] = row[x].B
		tv.pixels[i+3] = row[x].A
		i += pixelDepth
	}
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (tv *SDLTV) EndRendering() error {
	sdl.StopTextInput()
	if tv.texture != nil {
		tv.texture.Destroy()
	}
	if err := tv.renderer.Destroy(); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := tv.window.Destroy(); err != nil {
		return curated.Errorf(SDLError, err)
	}
	sdl.Quit()
	return nil
}

func (tv *SDLTV) update() error {
	if tv.texture == nil {
		return nil
	}

	tv.renderer.SetDrawColor(0, 0, 0, 255)
	if err := tv.renderer.Clear(); err != nil {
		return curated.Errorf(SDLError, err)
	}

	if err := tv.texture.Update(nil, tv.present, int(tv.width*pixelDepth)); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := tv.renderer.Copy(tv.texture, nil, nil); err != nil {
		return curated.Errorf(SDLError, err)
	}

	tv.renderer.Present()

	return nil
}

// Service the SDL event queue. Returns false once the window has been
// closed.
func (tv *SDLTV) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			tv.closed = true
			tv.event(userinput.EventQuit{})

		case *sdl.TextInputEvent:
			tv.event(userinput.EventText{
				Text: strings.TrimRight(string(ev.Text[:]), "\x00"),
			})

		case *sdl.KeyboardEvent:
			tv.event(KeyEvent(ev.Keysym.Sym, ev.Keysym.Mod, ev.Type == sdl.KEYDOWN, ev.Repeat != 0))
		}
	}

	return !tv.closed
}

func (tv *SDLTV) event(ev userinput.Event) {
	if tv.events != nil {
		tv.events(ev)
	}
}
