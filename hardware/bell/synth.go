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

package bell

import (
	"time"

	"github.com/go-audio/audio"
	"github.com/swtpc/term8212/hardware/preferences"
	"github.com/swtpc/term8212/logger"
)

// SampleRate is the default output rate of the Synth.
const SampleRate = 44100

// BitDepth of the PCM data produced by the Synth.
const BitDepth = 16

const maxAmplitude = 32767

// Synth produces PCM audio for the Bell.
type Synth struct {
	bell  *Bell
	prefs *preferences.Preferences

	sampleRate int

	// phase of the square wave in the range 0.0 to 1.0
	phase float64

	// sample replacing the square wave. played from the start every time the
	// bell turns on. silence when the sample is exhausted
	sample *Sample
	pos    float64
	wasOn  bool
}

// NewSynth is the preferred method of initialisation for the Synth type. If
// the bell.sample preference is set then the sample is loaded.
func NewSynth(perm logger.Permission, b *Bell, prefs *preferences.Preferences, sampleRate int) (*Synth, error) {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}

	s := &Synth{
		bell:       b,
		prefs:      prefs,
		sampleRate: sampleRate,
	}

	if fn := prefs.BellSample.String(); fn != "" {
		smp, err := LoadSample(perm, fn)
		if err != nil {
			return nil, err
		}
		s.sample = &smp
	}

	return s, nil
}

// SampleRate returns the output rate of the Synth.
func (s *Synth) SampleRate() int {
	return s.sampleRate
}

// Period is the duration of one PCM sample.
func (s *Synth) Period() time.Duration {
	return time.Second / time.Duration(s.sampleRate)
}

func (s *Synth) volume() float64 {
	v := s.prefs.BellVolume.Get().(int)
	if v < 0 {
		v = 0
	} else if v > 100 {
		v = 100
	}
	return float64(v) / 100
}

// Next returns the next PCM sample for the current state of the bell.
func (s *Synth) Next() int {
	on := s.bell.On()
	defer func() {
		s.wasOn = on
	}()

	if !on {
		s.phase = 0
		return 0
	}

	if s.sample != nil {
		if !s.wasOn {
			s.pos = 0
		}
		i := int(s.pos)
		if i >= len(s.sample.Data) {
			return 0
		}
		s.pos += s.sample.SampleRate / float64(s.sampleRate)
		return int(float64(s.sample.Data[i]) * s.volume() * maxAmplitude)
	}

	amp := int(s.volume() * maxAmplitude)
	v := amp
	if s.phase >= 0.5 {
		v = -amp
	}

	freq := s.prefs.BellFrequency.Get().(int)
	s.phase += float64(freq) / float64(s.sampleRate)
	for s.phase >= 1.0 {
		s.phase -= 1.0
	}

	return v
}

// Render n samples of mono PCM data. The advance function is called with
// the duration of one sample before each sample is produced. It should
// advance the logical clock so that the bell timer can expire part way
// through the buffer. The advance function may be nil.
func (s *Synth) Render(n int, advance func(time.Duration)) *audio.IntBuffer {
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  s.sampleRate,
		},
		Data:           make([]int, n),
		SourceBitDepth: BitDepth,
	}

	p := s.Period()
	for i := range buf.Data {
		if advance != nil {
			advance(p)
		}
		buf.Data[i] = s.Next()
	}

	return buf
}
