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

// Package bell implements the beeper of the terminal.
//
// The bell is triggered by a falling edge on the CA2 output of the keyboard
// PIA. Triggering the bell turns it on and arms a one-shot timer. When the
// timer expires the bell is turned off. Triggering the bell while it is
// already on restarts the timer, so the bell turns off once, Duration after
// the last trigger.
//
// The Synth type turns the state of the bell into PCM audio, either as a
// square wave tone of the configured frequency and volume or by playing a
// sample loaded from a WAV or MP3 file.
package bell
