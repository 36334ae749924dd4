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

package crtc

import (
	"fmt"
	"strings"
	"time"

	"github.com/swtpc/term8212/environment"
	"github.com/swtpc/term8212/hardware/scheduler"
	"github.com/swtpc/term8212/logger"
)

// DotClock is the frequency of the video crystal.
const DotClock = 17074800

// CharClock is the frequency of the character clock. The character clock
// does not change when the character width is reduced to eight dots.
const CharClock = DotClock / 9

// NumRegisters is the number of registers in the CRTC.
const NumRegisters = 18

// write masks for each register. the MC6845 ignores the unused upper bits of
// most registers.
var registerMask = [NumRegisters]uint8{
	0xff, 0xff, 0xff, 0xff, 0x7f, 0x1f, 0x7f, 0x7f,
	0x03, 0x1f, 0x7f, 0x1f, 0x3f, 0xff, 0x3f, 0xff,
	0x3f, 0xff,
}

// register names for the String() function.
var registerNames = [NumRegisters]string{
	"htotal", "hdisp", "hsync", "swidth", "vtotal", "vadj", "vdisp", "vsync",
	"ilace", "maxra", "cstart", "cend", "starth", "startl", "curh", "curl",
	"lpenh", "lpenl",
}

// Register numbers.
const (
	RegHTotal    = 0
	RegHDisp     = 1
	RegHSync     = 2
	RegSyncWidth = 3
	RegVTotal    = 4
	RegVAdjust   = 5
	RegVDisp     = 6
	RegVSync     = 7
	RegInterlace = 8
	RegMaxRA     = 9
	RegCurStart  = 10
	RegCurEnd    = 11
	RegStartH    = 12
	RegStartL    = 13
	RegCursorH   = 14
	RegCursorL   = 15
	RegLightPenH = 16
	RegLightPenL = 17
)

// CursorMode is selected by bits 5 and 6 of the cursor start register.
type CursorMode int

// List of valid CursorMode values.
const (
	CursorSteady CursorMode = iota
	CursorOff
	CursorBlink16
	CursorBlink32
)

func (m CursorMode) String() string {
	switch m {
	case CursorSteady:
		return "steady"
	case CursorOff:
		return "off"
	case CursorBlink16:
		return "blink/16"
	case CursorBlink32:
		return "blink/32"
	}
	return "?"
}

// RowFunc is called once per scanline. The ma argument is the memory address
// of the first character in the row and ra the scanline within the character
// row. The y argument is the raster line counted from the start of the
// frame. The cursorX argument is the column of the cursor in the row or -1
// if the cursor is not visible on this scanline.
type RowFunc func(ma uint16, ra uint8, y int, xCount int, cursorX int, de bool)

// Connections to the outside world. Any of the fields can be nil.
type Connections struct {
	Row RowFunc

	// Frame is called at the end of every frame
	Frame func(frameNum int)

	// Geometry is called when a register that changes the size of the
	// display is written to
	Geometry func()
}

// CRTC represents an MC6845.
type CRTC struct {
	env  *environment.Environment
	conn Connections

	ev *scheduler.Event

	address uint8
	regs    [NumRegisters]uint8

	// width of character cell in pixels. changed by the terminal's latch and
	// used to report the size of the display
	charWidth int

	// raster position
	y        int
	frameNum int
}

// NewCRTC is the preferred method of initialisation for the CRTC type.
func NewCRTC(env *environment.Environment, sch *scheduler.Scheduler, conn Connections) *CRTC {
	c := &CRTC{
		env:       env,
		conn:      conn,
		charWidth: 9,
	}
	c.ev = sch.NewEvent("crtc scanline", c.scanline)
	return c
}

func (c *CRTC) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("crtc: %dx%d @ %d", c.regs[RegHDisp], c.regs[RegVDisp], c.ScanlinesPerRow()))
	for i, v := range c.regs {
		s.WriteString(fmt.Sprintf(" %s=%02x", registerNames[i], v))
	}
	return s.String()
}

// Reset the raster position. Register values are unaffected.
func (c *CRTC) Reset() {
	c.y = 0
	c.frameNum = 0
}

// Start the scanline driver. Has no effect if the driver is already running.
func (c *CRTC) Start() {
	if !c.ev.Pending() {
		c.ev.Reset(c.LinePeriod())
	}
}

// Stop the scanline driver.
func (c *CRTC) Stop() {
	c.ev.Cancel()
}

// AddressWrite selects the register accessed by the data register.
func (c *CRTC) AddressWrite(data uint8) {
	c.address = data & 0x1f
}

// Address returns the value of the address register.
func (c *CRTC) Address() uint8 {
	return c.address
}

// RegisterRead returns the value of the register selected by the address
// register. Only the cursor and light pen registers can be read.
func (c *CRTC) RegisterRead() uint8 {
	switch c.address {
	case RegCursorH, RegCursorL, RegLightPenH, RegLightPenL:
		return c.regs[c.address]
	}
	return 0
}

// RegisterWrite writes to the register selected by the address register.
func (c *CRTC) RegisterWrite(data uint8) {
	// light pen registers and unused addresses
	if c.address >= RegLightPenH {
		return
	}

	data &= registerMask[c.address]
	old := c.regs[c.address]
	c.regs[c.address] = data

	if old == data {
		return
	}

	switch c.address {
	case RegHTotal, RegHDisp, RegVTotal, RegVAdjust, RegVDisp, RegMaxRA:
		logger.Logf(c.env, "crtc", "display %dx%d, %d scanlines per row, %d scanlines per frame",
			c.regs[RegHDisp], c.regs[RegVDisp], c.ScanlinesPerRow(), c.ScanlinesPerFrame())
		if c.conn.Geometry != nil {
			c.conn.Geometry()
		}
	}
}

// Register returns the value of any register regardless of whether it can be
// read by the CPU.
func (c *CRTC) Register(reg int) uint8 {
	if reg < 0 || reg >= NumRegisters {
		return 0
	}
	return c.regs[reg]
}

// SetLightPen latches the light pen address.
func (c *CRTC) SetLightPen(address uint16) {
	c.regs[RegLightPenH] = uint8(address>>8) & registerMask[RegLightPenH]
	c.regs[RegLightPenL] = uint8(address)
}

// SetCharWidth sets the width of a character cell in pixels.
func (c *CRTC) SetCharWidth(width int) {
	if width == c.charWidth {
		return
	}
	c.charWidth = width
	if c.conn.Geometry != nil {
		c.conn.Geometry()
	}
}

// CharWidth returns the width of a character cell in pixels.
func (c *CRTC) CharWidth() int {
	return c.charWidth
}

// StartAddress returns the 14 bit address of the first character on the
// screen.
func (c *CRTC) StartAddress() uint16 {
	return uint16(c.regs[RegStartH])<<8 | uint16(c.regs[RegStartL])
}

// CursorAddress returns the 14 bit address of the cursor.
func (c *CRTC) CursorAddress() uint16 {
	return uint16(c.regs[RegCursorH])<<8 | uint16(c.regs[RegCursorL])
}

// CursorMode returns the blink mode of the cursor.
func (c *CRTC) CursorMode() CursorMode {
	return CursorMode((c.regs[RegCurStart] >> 5) & 0x03)
}

// ScanlinesPerRow returns the number of scanlines in a character row.
func (c *CRTC) ScanlinesPerRow() int {
	return int(c.regs[RegMaxRA]) + 1
}

// ScanlinesPerFrame returns the total number of scanlines in a frame,
// including the vertical total adjust.
func (c *CRTC) ScanlinesPerFrame() int {
	return (int(c.regs[RegVTotal])+1)*c.ScanlinesPerRow() + int(c.regs[RegVAdjust])
}

// DisplayWidth returns the width of the displayed area in pixels.
func (c *CRTC) DisplayWidth() int {
	return int(c.regs[RegHDisp]) * c.charWidth
}

// DisplayHeight returns the height of the displayed area in scanlines.
func (c *CRTC) DisplayHeight() int {
	return int(c.regs[RegVDisp]) * c.ScanlinesPerRow()
}

// LinePeriod returns the duration of one scanline.
func (c *CRTC) LinePeriod() time.Duration {
	return time.Duration(float64(int(c.regs[RegHTotal])+1) * float64(time.Second) / CharClock)
}

// FrameDuration returns the duration of one frame.
func (c *CRTC) FrameDuration() time.Duration {
	return c.LinePeriod() * time.Duration(c.ScanlinesPerFrame())
}

// FrameNum returns the number of frames completed since reset.
func (c *CRTC) FrameNum() int {
	return c.frameNum
}

// cursorVisible returns true if the cursor is shown on scanline ra of a
// character row.
func (c *CRTC) cursorVisible(ra int) bool {
	switch c.CursorMode() {
	case CursorOff:
		return false
	case CursorBlink16:
		if c.frameNum&0x08 != 0 {
			return false
		}
	case CursorBlink32:
		if c.frameNum&0x10 != 0 {
			return false
		}
	}

	start := int(c.regs[RegCurStart] & 0x1f)
	end := int(c.regs[RegCurEnd])
	return ra >= start && ra <= end
}

// Scanline generates the next scanline immediately. The scanline driver
// calls this function at the correct time but it can also be called directly
// when the driver is stopped.
func (c *CRTC) Scanline() {
	total := c.ScanlinesPerFrame()
	if c.y >= total {
		c.endFrame()
	}

	per := c.ScanlinesPerRow()
	row := c.y / per
	ra := c.y % per
	xCount := int(c.regs[RegHDisp])

	// the adjust scanlines follow the last character row
	adjust := row > int(c.regs[RegVTotal])
	de := !adjust && row < int(c.regs[RegVDisp])

	ma := (c.StartAddress() + uint16(row*xCount)) & 0x3fff

	cursorX := -1
	if de && c.cursorVisible(ra) {
		cur := int(c.CursorAddress())
		if cur >= int(ma) && cur < int(ma)+xCount {
			cursorX = cur - int(ma)
		}
	}

	if c.conn.Row != nil {
		c.conn.Row(ma, uint8(ra), c.y, xCount, cursorX, de)
	}

	c.y++
	if c.y >= total {
		c.endFrame()
	}
}

func (c *CRTC) endFrame() {
	c.y = 0
	c.frameNum++
	if c.conn.Frame != nil {
		c.conn.Frame(c.frameNum)
	}
}

// Frame generates an entire frame immediately, starting from the current
// raster position.
func (c *CRTC) Frame() {
	n := c.frameNum
	for n == c.frameNum {
		c.Scanline()
	}
}

func (c *CRTC) scanline() {
	c.Scanline()
	c.ev.Reset(c.LinePeriod())
}
