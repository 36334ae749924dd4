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

// Package prefs facilitates the storage of preference values on disk.
//
// Preference values are declared with one of the value types (Bool, Int,
// String) and registered with a Disk instance under a unique key:
//
//	var baud prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("switches.baud", &baud)
//	dsk.Load(true)
//
// The preferences file is a plain text file. The first line is a warning
// and the remaining lines are key/value pairs:
//
//	switches.baud :: 9600
//
// Values can be overridden for the duration of a program run by pushing a
// group of values on to the command line stack. Command line values take
// priority over the values in the preferences file when Load() is called.
//
//	prefs.PushCommandLineStack("switches.baud::300; rs232.flowcontrol::none")
package prefs
