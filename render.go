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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/digest"
	"github.com/swtpc/term8212/hardware"
	"github.com/swtpc/term8212/hardware/memory/bus"
	"github.com/swtpc/term8212/hardware/memory/memorymap"
	"github.com/swtpc/term8212/paths"
	"github.com/swtpc/term8212/television"
	"github.com/swtpc/term8212/television/imagetv"
	"github.com/swtpc/term8212/television/sdltv"
	"github.com/swtpc/term8212/userinput"
)

type renderCmd struct {
	machine

	VRAM   string `name:"vram" help:"file copied to the start of video RAM"`
	Text   string `name:"text" help:"text written to the start of video RAM"`
	Format string `name:"format" default:"I" help:"screen format: I, II, III, IV or G"`
	Cursor int    `name:"cursor" default:"0" help:"cursor address"`

	PNG    string  `name:"png" help:"save the frame to a PNG file"`
	Window bool    `name:"window" help:"show the display in a window"`
	Scale  float32 `name:"scale" default:"2" help:"height of each scanline in the window"`
}

func (r *renderCmd) Run(_ *kong.Context) error {
	f, err := hardware.ParseFormat(r.Format)
	if err != nil {
		return err
	}

	tv := television.NewTelevision("render")

	dig := digest.NewVideo()
	if err := tv.AddPixelRenderer(dig); err != nil {
		return err
	}

	imtv := imagetv.NewImageTV()
	if err := tv.AddPixelRenderer(imtv); err != nil {
		return err
	}

	var term *hardware.Terminal
	var ctl userinput.Controllers

	var win *sdltv.SDLTV
	if r.Window {
		// keys typed into the window are latched into the keyboard port
		win, err = sdltv.NewSDLTV(fmt.Sprintf("term8212 format %s", f), r.Scale, func(ev userinput.Event) {
			ctl.HandleUserInput(ev, term)
		})
		if err != nil {
			return err
		}
		if err := tv.AddPixelRenderer(win); err != nil {
			return err
		}
	}

	term, err = r.build(hardware.Connections{TV: tv})
	if err != nil {
		return err
	}
	term.Reset()
	term.SetFormat(f)

	if r.VRAM != "" {
		data, err := os.ReadFile(r.VRAM)
		if err != nil {
			return curated.Errorf("render: %v", err)
		}
		writeVRAM(term.Mem, data)
	}
	if r.Text != "" {
		writeVRAM(term.Mem, []uint8(r.Text))
	}

	term.SetCursor(uint16(r.Cursor))

	if err := term.RenderFrame(); err != nil {
		return err
	}
	fmt.Printf("frame digest: %s\n", dig.Hash())

	if r.PNG != "" {
		if err := imtv.Save(r.PNG); err != nil {
			return err
		}
	} else if !r.Window {
		fn := paths.UniqueFilename("frame", f.String(), "png")
		if err := imtv.Save(fn); err != nil {
			return err
		}
		fmt.Printf("frame saved to %s\n", fn)
	}

	if win != nil {
		if err := showWindow(term, win, &ctl); err != nil {
			tv.End()
			return err
		}
	}

	return tv.End()
}

// writeVRAM copies data to the start of video RAM through the bus.
func writeVRAM(mem bus.CPUBus, data []uint8) {
	for i, d := range data {
		mem.Write(memorymap.OriginVRAM+uint16(i%memorymap.SizeVRAM), d)
	}
}

// run the scanline driver in real time until the window is closed or the
// quit key is pressed.
func showWindow(term *hardware.Terminal, win *sdltv.SDLTV, ctl *userinput.Controllers) error {
	term.Start()
	defer term.Stop()

	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()

	last := time.Now()
	for win.Service() && !ctl.Quit {
		<-tick.C
		now := time.Now()
		if err := term.Advance(now.Sub(last)); err != nil {
			return err
		}
		last = now
	}

	return nil
}
