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

package serial

import (
	"fmt"
	"math/bits"
	"time"
)

// Parity of a frame.
type Parity int

// List of valid Parity values.
const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
	ParityMark
	ParitySpace
)

func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "N"
	case ParityOdd:
		return "O"
	case ParityEven:
		return "E"
	case ParityMark:
		return "M"
	case ParitySpace:
		return "S"
	}
	return "?"
}

// StopBits is the number of stop bits measured in half bits.
type StopBits int

// List of valid StopBits values.
const (
	StopOne        StopBits = 2
	StopOneAndHalf StopBits = 3
	StopTwo        StopBits = 4
)

func (s StopBits) String() string {
	switch s {
	case StopOne:
		return "1"
	case StopOneAndHalf:
		return "1.5"
	case StopTwo:
		return "2"
	}
	return "?"
}

// Format describes the shape of a frame.
type Format struct {
	DataBits int
	Parity   Parity
	StopBits StopBits
}

// DefaultFormat is eight data bits, no parity and one stop bit.
var DefaultFormat = Format{DataBits: 8, Parity: ParityNone, StopBits: StopOne}

func (f Format) String() string {
	return fmt.Sprintf("%d%s%s", f.DataBits, f.Parity, f.StopBits)
}

// Mask returns the bits of a byte that are used by the format.
func (f Format) Mask() uint8 {
	return uint8(0xff >> (8 - f.DataBits))
}

// ParityBit returns the level of the parity bit for the data. Returns false
// if the format has no parity.
func (f Format) ParityBit(data uint8) bool {
	odd := bits.OnesCount8(data&f.Mask())%2 == 1
	switch f.Parity {
	case ParityOdd:
		return !odd
	case ParityEven:
		return odd
	case ParityMark:
		return true
	}
	return false
}

// Levels returns the line levels of the start bit, the data bits and the
// parity bit (if any) for the data. Stop bits are not included.
func (f Format) Levels(data uint8) []bool {
	l := make([]bool, 0, 10)
	l = append(l, false)
	for i := 0; i < f.DataBits; i++ {
		l = append(l, data&(1<<i) != 0)
	}
	if f.Parity != ParityNone {
		l = append(l, f.ParityBit(data))
	}
	return l
}

// FrameBits returns the length of a frame in bit periods.
func (f Format) FrameBits() float64 {
	n := 1 + f.DataBits
	if f.Parity != ParityNone {
		n++
	}
	return float64(n) + float64(f.StopBits)/2
}

// FrameDuration returns the time taken to send one frame.
func (f Format) FrameDuration(period time.Duration) time.Duration {
	return time.Duration(f.FrameBits() * float64(period))
}

// Status flags reported by the Receiver with each frame.
type Status uint8

// List of Status flags.
const (
	ParityError  Status = 0x01
	FramingError Status = 0x02
	Break        Status = 0x04
)

func (s Status) String() string {
	if s == 0 {
		return "ok"
	}
	str := ""
	if s&ParityError != 0 {
		str += "parity "
	}
	if s&FramingError != 0 {
		str += "framing "
	}
	if s&Break != 0 {
		str += "break "
	}
	return str[:len(str)-1]
}
