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
	"time"

	"github.com/alecthomas/kong"
	"github.com/swtpc/term8212/hardware"
	"github.com/swtpc/term8212/hardware/bell"
	"github.com/swtpc/term8212/hardware/memory/bus"
	"github.com/swtpc/term8212/hardware/memory/memorymap"
	"github.com/swtpc/term8212/television"
	"github.com/swtpc/term8212/television/sdltv"
	"github.com/swtpc/term8212/wavwriter"
)

// control register A of the first PIA. CA2 drives the bell
const pia0CtlA = memorymap.OriginPIA0 + 1

// samples rendered between checks for the retrigger time
const bellChunk = 441

type bellCmd struct {
	machine

	WAV       string        `name:"wav" required help:"WAV file to record to"`
	Length    time.Duration `name:"length" default:"500ms" help:"length of the recording"`
	Retrigger time.Duration `name:"retrigger" help:"strobe the bell again after this long"`
	Play      bool          `name:"play" help:"play the bell through the host audio device"`
}

func (b *bellCmd) Run(_ *kong.Context) error {
	tv := television.NewTelevision("bell")

	term, err := b.build(hardware.Connections{TV: tv})
	if err != nil {
		return err
	}
	term.Reset()

	synth, err := bell.NewSynth(term.Env(), term.Bell, term.Env().Prefs, bell.SampleRate)
	if err != nil {
		return err
	}

	ww, err := wavwriter.New(b.WAV, synth.SampleRate())
	if err != nil {
		return err
	}
	tv.AddAudioMixer(ww)

	if b.Play {
		aud, err := sdltv.NewAudio(synth.SampleRate())
		if err != nil {
			return err
		}
		tv.AddAudioMixer(aud)
	}

	if err := recordBell(term, synth, tv, b.Length, b.Retrigger); err != nil {
		tv.End()
		return err
	}

	if err := tv.End(); err != nil {
		return err
	}

	fmt.Printf("%d samples written to %s\n", ww.Len(), b.WAV)
	return nil
}

// strobe CA2 of the first PIA in the same way as the firmware. the falling
// edge triggers the bell.
func strobeBell(mem bus.CPUBus) {
	mem.Write(pia0CtlA, 0x3c)
	mem.Write(pia0CtlA, 0x34)
}

// recordBell strobes the bell and sends the synthesised audio to the
// television. A retrigger of zero means the bell is strobed only once.
func recordBell(term *hardware.Terminal, synth *bell.Synth, tv *television.Television, length time.Duration, retrigger time.Duration) error {
	strobeBell(term.Mem)
	start := term.Scheduler.Now()
	retriggered := retrigger <= 0

	var err error
	advance := func(d time.Duration) {
		if e := term.Advance(d); e != nil && err == nil {
			err = e
		}
	}

	total := int(length / synth.Period())
	for n := 0; n < total; n += bellChunk {
		if !retriggered && term.Scheduler.Now()-start >= retrigger {
			strobeBell(term.Mem)
			retriggered = true
		}

		c := bellChunk
		if total-n < c {
			c = total - n
		}
		if e := tv.SetAudio(synth.Render(c, advance)); e != nil {
			return e
		}
		if err != nil {
			return err
		}
	}

	return nil
}
