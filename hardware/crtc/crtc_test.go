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

package crtc_test

import (
	"testing"

	"github.com/swtpc/term8212/environment"
	"github.com/swtpc/term8212/hardware/crtc"
	"github.com/swtpc/term8212/hardware/preferences"
	"github.com/swtpc/term8212/hardware/scheduler"
	"github.com/swtpc/term8212/test"
)

type row struct {
	ma      uint16
	ra      uint8
	y       int
	xCount  int
	cursorX int
	de      bool
}

type harness struct {
	sch      *scheduler.Scheduler
	c        *crtc.CRTC
	rows     []row
	frames   int
	geometry int
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile("")
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", p)
	test.DemandSuccess(t, err)

	h := &harness{sch: scheduler.NewScheduler()}
	h.c = crtc.NewCRTC(env, h.sch, crtc.Connections{
		Row: func(ma uint16, ra uint8, y int, xCount int, cursorX int, de bool) {
			h.rows = append(h.rows, row{ma, ra, y, xCount, cursorX, de})
		},
		Frame:    func(_ int) { h.frames++ },
		Geometry: func() { h.geometry++ },
	})

	return h
}

func (h *harness) program(regs []uint8) {
	for i, v := range regs {
		h.c.AddressWrite(uint8(i))
		h.c.RegisterWrite(v)
	}
}

// the 82x20 format with 14 scanlines per character row.
var formatI = []uint8{101, 82, 86, 10, 21, 2, 20, 21, 0, 13, 0x00, 13, 0x00, 0x00, 0x00, 0x00}

func TestRegisters(t *testing.T) {
	h := newHarness(t)

	// write masks
	h.c.AddressWrite(crtc.RegVTotal)
	h.c.RegisterWrite(0xff)
	test.ExpectEquality(t, h.c.Register(crtc.RegVTotal), uint8(0x7f))

	// write only registers read as zero
	test.ExpectEquality(t, h.c.RegisterRead(), uint8(0))

	h.c.AddressWrite(crtc.RegCursorH)
	h.c.RegisterWrite(0xff)
	test.ExpectEquality(t, h.c.RegisterRead(), uint8(0x3f))
	h.c.AddressWrite(crtc.RegCursorL)
	h.c.RegisterWrite(0x12)
	test.ExpectEquality(t, h.c.RegisterRead(), uint8(0x12))
	test.ExpectEquality(t, h.c.CursorAddress(), uint16(0x3f12))

	// light pen registers are read only
	h.c.SetLightPen(0x1234)
	h.c.AddressWrite(crtc.RegLightPenH)
	h.c.RegisterWrite(0)
	test.ExpectEquality(t, h.c.RegisterRead(), uint8(0x12))

	// address register is five bits
	h.c.AddressWrite(0xee)
	test.ExpectEquality(t, h.c.Address(), uint8(0x0e))
}

func TestGeometry(t *testing.T) {
	h := newHarness(t)
	h.program(formatI)

	test.ExpectSuccess(t, h.geometry > 0)
	test.ExpectEquality(t, h.c.ScanlinesPerRow(), 14)
	test.ExpectEquality(t, h.c.ScanlinesPerFrame(), 310)
	test.ExpectEquality(t, h.c.DisplayWidth(), 738)
	test.ExpectEquality(t, h.c.DisplayHeight(), 280)

	h.geometry = 0
	h.c.SetCharWidth(8)
	test.ExpectEquality(t, h.geometry, 1)
	test.ExpectEquality(t, h.c.DisplayWidth(), 656)
	h.c.SetCharWidth(8)
	test.ExpectEquality(t, h.geometry, 1)
}

func TestFrame(t *testing.T) {
	h := newHarness(t)
	h.program(formatI)

	h.c.Frame()
	test.ExpectEquality(t, h.frames, 1)
	test.DemandEquality(t, len(h.rows), 310)

	var de int
	for _, r := range h.rows {
		if r.de {
			de++
		}
	}
	test.ExpectEquality(t, de, 280)

	// second character row
	r := h.rows[14]
	test.ExpectEquality(t, r.ma, uint16(82))
	test.ExpectEquality(t, r.ra, uint8(0))
	test.ExpectEquality(t, r.xCount, 82)

	// adjust scanlines follow the last row
	test.ExpectFailure(t, h.rows[309].de)
	test.ExpectEquality(t, h.rows[309].y, 309)
}

func TestCursor(t *testing.T) {
	h := newHarness(t)
	h.program(formatI)

	// cursor on the second row, fifth column, scanlines 11 to 13
	h.c.AddressWrite(crtc.RegCursorL)
	h.c.RegisterWrite(82 + 4)
	h.c.AddressWrite(crtc.RegCurStart)
	h.c.RegisterWrite(11)

	h.c.Frame()
	for _, r := range h.rows {
		if r.y >= 14+11 && r.y <= 14+13 {
			test.ExpectEquality(t, r.cursorX, 4, r.y)
		} else {
			test.ExpectEquality(t, r.cursorX, -1, r.y)
		}
	}

	// cursor off
	h.rows = h.rows[:0]
	h.c.AddressWrite(crtc.RegCurStart)
	h.c.RegisterWrite(0x20 | 11)
	test.ExpectEquality(t, h.c.CursorMode(), crtc.CursorOff)
	h.c.Frame()
	for _, r := range h.rows {
		test.ExpectEquality(t, r.cursorX, -1)
	}
}

func TestCursorBlink(t *testing.T) {
	h := newHarness(t)
	h.program(formatI)

	h.c.AddressWrite(crtc.RegCurStart)
	h.c.RegisterWrite(0x40)
	test.ExpectEquality(t, h.c.CursorMode(), crtc.CursorBlink16)

	visible := func() bool {
		h.rows = h.rows[:0]
		h.c.Frame()
		return h.rows[0].cursorX == 0
	}

	// the cursor is visible for eight frames and hidden for eight frames
	var on, off int
	for i := 0; i < 16; i++ {
		if visible() {
			on++
		} else {
			off++
		}
	}
	test.ExpectEquality(t, on, 8)
	test.ExpectEquality(t, off, 8)
}

func TestScanlineDriver(t *testing.T) {
	h := newHarness(t)
	h.program(formatI)

	h.c.Start()
	h.sch.Advance(h.c.FrameDuration())
	test.ExpectEquality(t, h.frames, 1)
	test.ExpectEquality(t, len(h.rows), 310)

	h.c.Stop()
	h.sch.Advance(h.c.FrameDuration())
	test.ExpectEquality(t, h.frames, 1)
}
