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
	"runtime"

	"github.com/alecthomas/kong"
	"github.com/swtpc/term8212/environment"
	"github.com/swtpc/term8212/hardware"
	"github.com/swtpc/term8212/hardware/chargen"
	"github.com/swtpc/term8212/hardware/memory/rom"
	"github.com/swtpc/term8212/logger"
	"github.com/swtpc/term8212/prefs"
	"github.com/swtpc/term8212/statsview"
)

// SDL requires that window events are handled by the main thread.
func init() {
	runtime.LockOSThread()
}

type cli struct {
	Log       bool   `help:"echo log entries to stderr"`
	Statsview bool   `help:"launch the runtime statistics server (requires the statsview build tag)"`
	Opts      string `help:"preference overrides for this run. format is key::value; key::value"`

	Render renderCmd `cmd help:"render one frame of video RAM"`
	Bell   bellCmd   `cmd help:"record the bell to a WAV file"`
	Serial serialCmd `cmd help:"connect the terminal to a host serial port"`
	Prefs  prefsCmd  `cmd help:"list or change the stored preferences"`
	Dump   dumpCmd   `cmd help:"write the state of the terminal as a graphviz file"`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("term8212"),
		kong.Description("emulation of the SWTPC 8212 terminal"),
	)

	if c.Log {
		logger.SetEcho(os.Stderr)
	}

	if c.Statsview {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Fprintln(os.Stderr, "* statsview not available in this build")
		}
	}

	if c.Opts != "" {
		prefs.PushCommandLineStack(c.Opts)
	}

	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}

// machine holds the flags that describe the terminal's ROMs. It is embedded in
// every command that creates a terminal.
type machine struct {
	ROM      []string `name:"rom" help:"firmware: one 4k image or two 2k images (ic1,ic2)"`
	Chargen1 string   `name:"chargen1" help:"standard character generator image (2k)"`
	Chargen2 string   `name:"chargen2" help:"alternate character generator image (2k)"`
}

// build a terminal using the main emulation environment. the terminal is not
// reset.
func (m *machine) build(conn hardware.Connections) (*hardware.Terminal, error) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}
	return m.buildWith(env, conn)
}

func (m *machine) buildWith(env *environment.Environment, conn hardware.Connections) (*hardware.Terminal, error) {
	var program *rom.Program
	var err error

	if len(m.ROM) > 0 {
		program, err = rom.Load(m.ROM...)
		if err != nil {
			return nil, err
		}
	}

	var standard, alternate *chargen.Generator

	if m.Chargen1 != "" {
		standard, err = chargen.Load(m.Chargen1)
		if err != nil {
			return nil, err
		}
	}

	if m.Chargen2 != "" {
		alternate, err = chargen.Load(m.Chargen2)
		if err != nil {
			return nil, err
		}
	}

	return hardware.NewTerminal(env, program, standard, alternate, conn), nil
}
