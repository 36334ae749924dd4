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

package television

import "time"

// DotClock is the pixel clock of the terminal in Hz.
const DotClock = 17074800

// Raster geometry of the monitor. Values are in pixel clocks and scanlines.
const (
	ClocksPerScanline = 918
	ScanlinesTotal    = 310

	// the visible area of the screen. the first visible pixel and scanline
	// are at position zero
	Width  = 738
	Height = 280
)

// ScanlineDuration is the time taken by one scanline of the monitor.
const ScanlineDuration = time.Second * ClocksPerScanline / DotClock

// FrameDuration is the time taken by one frame of the monitor.
const FrameDuration = ScanlineDuration * ScanlinesTotal
