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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The ExpectSuccess and ExpectFailure functions test for success and failure
// under generic conditions. Currently, bool and error values are supported. A
// nil value is considered a success because of how errors are usually
// returned (nil to indicate no error).
//
// ExpectEquality and ExpectInequality compare like-typed values. The Demand
// variants do the same but stop the test immediately on failure.
//
// All functions take an optional list of tags. The tags are printed at the
// start of any failure message and are useful to identify the iteration of a
// loop that failed:
//
//	for i, v := range values {
//		test.ExpectEquality(t, v, want[i], "index", i)
//	}
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
