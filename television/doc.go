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

// Package television is the output device of the emulated terminal. The
// Television type does not present any information itself. Instead,
// PixelRenderers and AudioMixers are added to perform those tasks.
//
// The terminal sends one row of pixels per scanline with SetRow() and calls
// NewFrame() at the end of each frame. Rows outside of the visible area are
// discarded by the Television before they reach the renderers. The visible
// area is described by the Width and Height constants.
//
// The digest package is an example of a PixelRenderer that does not display
// anything. It produces a SHA1 value that is useful for testing.
package television
