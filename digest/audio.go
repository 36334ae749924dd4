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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"
)

// Audio is an implementation of the television.AudioMixer interface.
type Audio struct {
	digest [sha1.Size]byte
	buffer []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{}
}

func (dig *Audio) String() string {
	return fmt.Sprintf("audio digest: %s", dig.Hash())
}

// Hash implements the digest.Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// SetAudio implements the television.AudioMixer interface.
func (dig *Audio) SetAudio(buf *audio.IntBuffer) error {
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	for _, v := range buf.Data {
		dig.buffer = binary.LittleEndian.AppendUint16(dig.buffer, uint16(int16(v)))
	}
	dig.digest = sha1.Sum(dig.buffer)
	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	return nil
}
