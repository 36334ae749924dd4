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

// Package userinput handles input from real hardware that the user of the
// emulator is using to type on the emulated terminal.
//
// It can be thought of as a translation layer between the host input (an SDL
// window or the host terminal) and the keyboard port of the terminal. Events
// are produced by the host implementation and passed to
// Controllers.HandleUserInput(), which forwards ASCII codes to an
// implementation of HandleInput.
//
// The SDL window was the first host implementation and so there will be a
// bias towards the way SDL names keys.
package userinput
