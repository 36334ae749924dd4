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

package memory

import (
	"fmt"

	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/environment"
	"github.com/swtpc/term8212/hardware/memory/memorymap"
	"github.com/swtpc/term8212/hardware/memory/rom"
	"github.com/swtpc/term8212/logger"
)

// Sentinal error patterns.
const (
	MissingHandler = "memory: no handler for %s"
	NotPeekable    = "memory: cannot peek %s at %04x"
	NotPokable     = "memory: cannot poke %s at %04x"
)

// Handler connects an area of memory to the component that implements it.
// The offset argument is the address with the area origin and any mirroring
// removed. A nil Read means the area is write-only and a nil Write means the
// area is read-only. A nil Peek means the area cannot be peeked.
type Handler struct {
	Read  func(offset uint16) uint8
	Write func(offset uint16, data uint8)
	Peek  func(offset uint16) uint8
}

// Memory is the address decoder of the terminal.
type Memory struct {
	env *environment.Environment

	RAM  *RAM
	VRAM *VRAM
	ROM  *rom.Program

	handlers [memorymap.NumAreas]Handler

	// addresses that have been logged as bad accesses
	logged map[uint16]bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The periph argument must contain a handler for every area that is not
// owned by the Memory type.
//
// Panics if the address table is not valid or if a handler is missing.
func NewMemory(env *environment.Environment, program *rom.Program, periph map[memorymap.Area]Handler) *Memory {
	if err := memorymap.Validate(memorymap.Table); err != nil {
		panic(err)
	}

	mem := &Memory{
		env:    env,
		RAM:    &RAM{},
		VRAM:   &VRAM{},
		ROM:    program,
		logged: make(map[uint16]bool),
	}

	mem.handlers[memorymap.RAM] = Handler{
		Read:  mem.RAM.Read,
		Write: mem.RAM.Write,
		Peek:  mem.RAM.Read,
	}
	mem.handlers[memorymap.VRAM] = Handler{
		Read:  mem.VRAM.Read,
		Write: mem.VRAM.Write,
		Peek:  mem.VRAM.Read,
	}

	if program != nil {
		mem.handlers[memorymap.ROMLow] = Handler{Read: program.Read, Peek: program.Read}
		mem.handlers[memorymap.ROMHigh] = Handler{Read: program.Read, Peek: program.Read}
	}

	for area, h := range periph {
		mem.handlers[area] = h
	}

	for _, r := range memorymap.Table {
		if r.Area == memorymap.Unmapped {
			continue
		}
		h := mem.handlers[r.Area]
		if h.Read == nil && h.Write == nil {
			panic(curated.Errorf(MissingHandler, r.Area))
		}
	}

	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%s\n%s", memorymap.Summary(), mem.RAM)
}

func (mem *Memory) bad(address uint16, area memorymap.Area, write bool) {
	if mem.logged[address] {
		return
	}
	mem.logged[address] = true

	op := "read"
	if write {
		op = "write"
	}
	logger.Logf(mem.env, "bus", "%s of %s at %04x ignored", op, area, address)
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) uint8 {
	offset, area := memorymap.MapAddress(address)
	h := mem.handlers[area]
	if h.Read == nil {
		mem.bad(address, area, false)
		return 0
	}
	return h.Read(offset)
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) {
	offset, area := memorymap.MapAddress(address)
	h := mem.handlers[area]
	if h.Write == nil {
		mem.bad(address, area, true)
		return
	}
	h.Write(offset, data)
}

// Peek implements the bus.DebuggerBus interface.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	offset, area := memorymap.MapAddress(address)
	h := mem.handlers[area]
	if h.Peek == nil {
		return 0, curated.Errorf(NotPeekable, area, address)
	}
	return h.Peek(offset), nil
}

// Poke implements the bus.DebuggerBus interface. Only RAM, Video RAM and ROM
// can be poked.
func (mem *Memory) Poke(address uint16, value uint8) error {
	offset, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		mem.RAM.Write(offset, value)
	case memorymap.VRAM:
		mem.VRAM.Write(offset, value)
	case memorymap.ROMLow, memorymap.ROMHigh:
		if mem.ROM == nil {
			return curated.Errorf(NotPokable, area, address)
		}
		mem.ROM.Poke(offset, value)
	default:
		return curated.Errorf(NotPokable, area, address)
	}
	return nil
}
