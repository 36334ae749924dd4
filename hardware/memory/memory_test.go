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

package memory_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/environment"
	"github.com/swtpc/term8212/hardware/memory"
	"github.com/swtpc/term8212/hardware/memory/memorymap"
	"github.com/swtpc/term8212/hardware/memory/rom"
	"github.com/swtpc/term8212/hardware/preferences"
	"github.com/swtpc/term8212/logger"
	"github.com/swtpc/term8212/test"
)

// records accesses to one peripheral area.
type periph struct {
	reads  []uint16
	writes []uint16
	data   []uint8
}

func (p *periph) handler(writeOnly bool) memory.Handler {
	h := memory.Handler{
		Write: func(offset uint16, data uint8) {
			p.writes = append(p.writes, offset)
			p.data = append(p.data, data)
		},
	}
	if !writeOnly {
		h.Read = func(offset uint16) uint8 {
			p.reads = append(p.reads, offset)
			return uint8(offset) | 0x80
		}
		h.Peek = func(offset uint16) uint8 {
			return uint8(offset) | 0x80
		}
	}
	return h
}

func newMemory(t *testing.T, label environment.Label) (*memory.Memory, map[memorymap.Area]*periph) {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile("")
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(label, p)
	test.DemandSuccess(t, err)

	img := make([]uint8, memorymap.SizeROM)
	for i := range img {
		img[i] = uint8(i >> 8)
	}
	prg, err := rom.NewProgram(img)
	test.DemandSuccess(t, err)

	periphs := make(map[memorymap.Area]*periph)
	handlers := make(map[memorymap.Area]memory.Handler)
	for _, a := range []memorymap.Area{memorymap.PIA0, memorymap.CRTCAddress, memorymap.CRTCData, memorymap.Latch, memorymap.UART, memorymap.PIA1} {
		periphs[a] = &periph{}
		handlers[a] = periphs[a].handler(a == memorymap.Latch || a == memorymap.CRTCAddress)
	}

	return memory.NewMemory(env, prg, handlers), periphs
}

func TestRAM(t *testing.T) {
	mem, _ := newMemory(t, "test")

	mem.Write(0x0000, 0x12)
	mem.Write(0x007f, 0x34)
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x12))
	test.ExpectEquality(t, mem.Read(0x007f), uint8(0x34))
}

func TestVRAMWrap(t *testing.T) {
	mem, _ := newMemory(t, "test")

	mem.Write(0x4000, 0x41)
	test.ExpectEquality(t, mem.Read(0x4800), uint8(0x41))
	test.ExpectEquality(t, mem.Read(0x5000), uint8(0x41))
	test.ExpectEquality(t, mem.Read(0x5800), uint8(0x41))

	// offset 0x0800 reads back offset 0x0000
	test.ExpectEquality(t, mem.VRAM.Read(0x0800), uint8(0x41))

	mem.Write(0x5fff, 0xc2)
	test.ExpectEquality(t, mem.VRAM.Read(0x07ff), uint8(0xc2))
}

func TestROM(t *testing.T) {
	mem, _ := newMemory(t, "test")

	test.ExpectEquality(t, mem.Read(0xb800), uint8(0x00))
	test.ExpectEquality(t, mem.Read(0xbfff), uint8(0x07))
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0x08))
	test.ExpectEquality(t, mem.Read(0xc7ff), uint8(0x0f))

	// mirrors of the upper ROM
	test.ExpectEquality(t, mem.Read(0xf800), uint8(0x08))
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0x0f))

	// writes to ROM are ignored
	mem.Write(0xc000, 0xff)
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0x08))

	// but pokes are not
	test.ExpectSuccess(t, mem.Poke(0xf800, 0xff) == nil)
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0xff))
}

func TestPeripherals(t *testing.T) {
	mem, p := newMemory(t, "test")

	test.ExpectEquality(t, mem.Read(0x0082), uint8(0x82))
	test.ExpectEquality(t, mem.Read(0x0097), uint8(0x87))
	test.ExpectEquality(t, mem.Read(0x009b), uint8(0x83))
	mem.Write(0x0088, 0x0e)
	mem.Write(0x0089, 0x12)
	mem.Write(0x008c, 0x40)

	test.ExpectEquality(t, len(p[memorymap.PIA0].reads), 1)
	test.ExpectEquality(t, p[memorymap.UART].reads[0], uint16(7))
	test.ExpectEquality(t, p[memorymap.CRTCAddress].data[0], uint8(0x0e))
	test.ExpectEquality(t, p[memorymap.CRTCData].data[0], uint8(0x12))
	test.ExpectEquality(t, p[memorymap.Latch].data[0], uint8(0x40))

	// latch is write only
	test.ExpectEquality(t, mem.Read(0x008c), uint8(0))

	// peek does not reach the read handler
	v, err := mem.Peek(0x0080)
	test.ExpectSuccess(t, err == nil)
	test.ExpectEquality(t, v, uint8(0x80))
	test.ExpectEquality(t, len(p[memorymap.PIA0].reads), 1)

	_, err = mem.Peek(0x008c)
	test.ExpectSuccess(t, curated.Is(err, memory.NotPeekable))

	err = mem.Poke(0x0090, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.NotPokable))
}

func TestUnmapped(t *testing.T) {
	mem, _ := newMemory(t, environment.MainEmulation)

	logger.Clear()
	test.ExpectEquality(t, mem.Read(0x1000), uint8(0))
	test.ExpectEquality(t, mem.Read(0x1000), uint8(0))
	mem.Write(0x0085, 0xff)
	test.ExpectEquality(t, mem.Read(0x0085), uint8(0))

	// first access to each address only
	b := &bytes.Buffer{}
	logger.Write(b)
	test.ExpectEquality(t, strings.Count(b.String(), "\n"), 2)
	test.ExpectSuccess(t, strings.Contains(b.String(), "read of unmapped at 1000 ignored"))
	test.ExpectSuccess(t, strings.Contains(b.String(), "write of unmapped at 0085 ignored"))
}

func TestMissingHandler(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile("")
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)
	prg, err := rom.NewProgram(make([]uint8, memorymap.SizeROM))
	test.DemandSuccess(t, err)

	defer func() {
		r := recover()
		test.DemandSuccess(t, r != nil)
		err, ok := r.(error)
		test.DemandSuccess(t, ok)
		test.ExpectSuccess(t, curated.Is(err, memory.MissingHandler))
	}()

	memory.NewMemory(env, prg, nil)
}
