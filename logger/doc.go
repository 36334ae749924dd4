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

// Package logger is the central log for the emulation. Every component logs
// through the package level functions Log() and Logf(), supplying a tag (the
// name of the component) and a detail string.
//
// Both functions take a Permission argument. Use logger.Allow when an entry
// should always be made. The environment.Environment type also implements the
// Permission interface, which means that log entries from a particular
// emulation instance can be suppressed. This is useful for tests that create
// many short lived terminals.
//
// Identical consecutive entries are folded into a single entry with a repeat
// count. The log is capped and the oldest entries are discarded first.
package logger
