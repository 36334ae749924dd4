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

package sdltv

import (
	"encoding/binary"

	"github.com/go-audio/audio"
	"github.com/swtpc/term8212/curated"
	"github.com/veandco/go-sdl2/sdl"
)

// the maximum amount of audio queued before new samples are dropped. about a
// fifth of a second at 44.1kHz.
const maxQueued = 8192 * 2

// Audio implements the television.AudioMixer interface. Samples are signed
// 16 bit mono.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
	buf  []uint8
}

// NewAudio is the preferred method of initialisation for the Audio type.
// SDL must have been initialised with audio support, which NewSDLTV() does.
func NewAudio(sampleRate int) (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  1024,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the television.AudioMixer interface.
func (aud *Audio) SetAudio(buf *audio.IntBuffer) error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		return nil
	}

	aud.buf = aud.buf[:0]
	for _, s := range buf.Data {
		aud.buf = binary.LittleEndian.AppendUint16(aud.buf, uint16(int16(s)))
	}

	if err := sdl.QueueAudio(aud.id, aud.buf); err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.CloseAudioDevice(aud.id)
	return nil
}
