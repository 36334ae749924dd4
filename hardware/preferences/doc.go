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

// Package preferences holds the configuration of the terminal hardware: the
// DIP switches on the logic board, the jumpers, the duplex switch on the
// case, the serial flow control wiring and the bell.
//
// All values are prefs values registered with a prefs.Disk so that they
// persist between runs and can be overridden from the command line.
package preferences
