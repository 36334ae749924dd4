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

package hardware

import (
	"time"

	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/govern"
)

// Run the emulation, advancing the logical clock by the quantum for every
// iteration of the loop. The continueCheck function is called after every
// iteration and decides whether the loop continues. A Paused state keeps the
// loop alive without advancing the clock.
//
// Run does not pace the emulation. The continueCheck function should sleep
// if the emulation is to run in real time.
func (t *Terminal) Run(quantum time.Duration, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			if err := t.Advance(quantum); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("terminal: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the emulation until the CRTC has completed the
// number of frames. The scanline driver is started if necessary.
func (t *Terminal) RunForFrameCount(numFrames int) error {
	t.Start()
	target := t.CRTC.FrameNum() + numFrames
	return t.Run(t.CRTC.LinePeriod(), func() (govern.State, error) {
		if t.CRTC.FrameNum() >= target {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
}
