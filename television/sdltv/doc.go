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

// Package sdltv displays the terminal in an SDL window and plays the bell
// through the SDL audio device.
//
// SDL requires that windows are serviced from the main thread. The Service()
// function should be called regularly from the same goroutine that advances
// the terminal, which means the goroutine that created the SDLTV.
package sdltv
