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

package preferences

// baud rate selections on DIP switches 0 to 4. the list is in ascending order
// of rate.
var baudCodes = []struct {
	rate int
	code uint8
}{
	{110, 0x04},
	{300, 0x0a},
	{600, 0x0d},
	{1200, 0x0f},
	{2400, 0x12},
	{4800, 0x16},
	{7200, 0x18},
	{9600, 0x19},
	{19200, 0x1c},
	{38400, 0x1f},
}

// BaudRates returns the list of rates that can be selected with the DIP
// switches.
func BaudRates() []int {
	r := make([]int, len(baudCodes))
	for i := range baudCodes {
		r[i] = baudCodes[i].rate
	}
	return r
}

// BaudCode returns the switch setting for the rate. Rates that the switches
// cannot select are rounded down to the nearest selectable rate. Rates below
// the slowest rate select the slowest rate.
func BaudCode(rate int) uint8 {
	return baudCodes[selectRate(rate)].code
}

// SwitchRate returns the rate the switches select for the rate, using the
// same rounding as BaudCode().
func SwitchRate(rate int) int {
	return baudCodes[selectRate(rate)].rate
}

func selectRate(rate int) int {
	idx := 0
	for i, b := range baudCodes {
		if rate < b.rate {
			break
		}
		idx = i
	}
	return idx
}

// Bits in the DIP switch byte.
const (
	MaskBaud     = uint8(0x1f)
	DIPPageEdit  = uint8(0x20)
	DIPParity    = uint8(0x40)
	DIPEven      = uint8(0x80)
	CfgHalf      = uint8(0x01)
	CfgOptionOff = uint8(0x02)
	CfgMarkSpace = uint8(0x04)
	CfgEightBit  = uint8(0x08)
)

// DIPSwitches returns the value of the DIP switch bank as seen by the
// firmware.
func (p *Preferences) DIPSwitches() uint8 {
	v := BaudCode(p.Baud.Get().(int))
	if p.PageEdit.Get().(bool) {
		v |= DIPPageEdit
	}
	if p.Parity.Get().(bool) {
		v |= DIPParity
	}
	if p.EvenParity.Get().(bool) {
		v |= DIPEven
	}
	return v
}

// Config returns the value of the duplex switch and jumpers as seen by the
// firmware. The option ROM bit is active low.
func (p *Preferences) Config() uint8 {
	var v uint8
	if p.HalfDuplex.Get().(bool) {
		v |= CfgHalf
	}
	if !p.OptionROM.Get().(bool) {
		v |= CfgOptionOff
	}
	if p.MarkSpace.Get().(bool) {
		v |= CfgMarkSpace
	}
	if p.EightBit.Get().(bool) {
		v |= CfgEightBit
	}
	return v
}
