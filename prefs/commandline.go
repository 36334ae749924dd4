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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// group is one set of key/value pairs from the command line.
type group map[string]string

// String returns the group in the same format as accepted by
// PushCommandLineStack(). Keys are sorted.
func (g group) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s::%s", k, g[k])
	}
	return strings.Join(parts, "; ")
}

// only the group at the top of the stack is consulted.
var commandLine struct {
	sync.Mutex
	stack []group
}

// PushCommandLineStack parses a command line and adds it as a new group. The
// format of the string is:
//
//	key::value; key::value
//
// Entries without a separator are ignored.
func PushCommandLineStack(prefs string) {
	g := make(group)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if ok {
			g[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}

	commandLine.Lock()
	defer commandLine.Unlock()
	commandLine.stack = append(commandLine.stack, g)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the entries of the group that were never
// used, in the same format as accepted by PushCommandLineStack().
func PopCommandLineStack() string {
	commandLine.Lock()
	defer commandLine.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return ""
	}
	g := commandLine.stack[n-1]
	commandLine.stack = commandLine.stack[:n-1]

	return g.String()
}

// GetCommandLinePref returns the value for the key from the group at the top
// of the stack. The value is removed from the group when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.Lock()
	defer commandLine.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return false, nil
	}
	g := commandLine.stack[n-1]

	v, ok := g[key]
	if !ok {
		return false, nil
	}
	delete(g, key)
	return true, v
}
