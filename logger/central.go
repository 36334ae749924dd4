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

package logger

import (
	"fmt"
	"io"
	"sync"
)

// maximum number of entries in the central log.
const maxCentral = 256

// there is only one log for the entire application. access is serialised
// because the host serial goroutines log alongside the emulation.
var (
	crit    sync.Mutex
	central = newLogger(maxCentral)
)

// Log adds an entry to the central log if the Permission allows it.
func Log(perm Permission, tag, detail string) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	crit.Lock()
	defer crit.Unlock()
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central log if the Permission allows
// it. The detail string is not formatted unless the entry is made.
func Logf(perm Permission, tag, detail string, args ...interface{}) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	crit.Lock()
	defer crit.Unlock()
	central.log(tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from the central log.
func Clear() {
	crit.Lock()
	defer crit.Unlock()
	central.clear()
}

// Write every entry in the central log to io.Writer.
func Write(output io.Writer) {
	crit.Lock()
	defer crit.Unlock()
	central.tail(output, len(central.entries))
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	crit.Lock()
	defer crit.Unlock()
	central.tail(output, number)
}

// SetEcho prints new log entries to io.Writer as they are added. A nil writer
// stops the echo.
func SetEcho(output io.Writer) {
	crit.Lock()
	defer crit.Unlock()
	central.echo = output
}
