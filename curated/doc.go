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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with Errorf(). The first argument is a pattern
// and the pattern, rather than the formatted message, identifies the error.
// Packages that produce curated errors export their patterns as string
// constants so that callers can test for them:
//
//	err := rom.Load(filename)
//	if curated.Is(err, rom.ImageSize) {
//		...
//	}
//
// Has() is the same as Is() except that it searches the entire chain of
// wrapped curated errors:
//
//	e := curated.Errorf(rom.ImageSize, 100)
//	f := curated.Errorf("terminal: %v", e)
//
//	curated.Has(f, rom.ImageSize) // true
//	curated.Is(f, rom.ImageSize)  // false
//
// IsAny() answers whether an error was created by Errorf() at all. In this
// project an uncurated error reaching the top of the program indicates
// something unexpected (a host I/O failure for example) while a curated
// error is one that we anticipated.
//
// The Error() implementation collapses adjacent duplicate parts of the message
// chain. Parts are separated by the sub-string ": ". This means that wrapping
// an error with the same prefix more than once is harmless.
package curated
