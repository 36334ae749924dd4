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

// Package digest contains implementations of the television.PixelRenderer and
// television.AudioMixer interfaces that produce a SHA1 value from the output
// of the terminal.
//
// The value of a Video digest at the end of a frame is the SHA1 of the frame's
// pixels prefixed by the value at the end of the previous frame. Two runs of
// the terminal that produce the same sequence of frames will therefore
// produce the same digest. The Audio digest is chained in the same way for
// every buffer of PCM data.
package digest

// Digest implementations produce a SHA1 value that can be reset.
type Digest interface {
	Hash() string
	ResetDigest()
}
