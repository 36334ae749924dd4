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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/logger"
)

// Sentinal error patterns.
const (
	SampleLoad   = "bell: sample: %v"
	SampleFormat = "bell: sample: unsupported file type (%s)"
)

// Sample is mono PCM data normalised to the range -1.0 to 1.0.
type Sample struct {
	SampleRate float64
	Data       []float32
}

// LoadSample reads a WAV or MP3 file. Only the first channel of a multi
// channel file is kept.
func LoadSample(perm logger.Permission, filename string) (Sample, error) {
	s := Sample{}

	f, err := os.Open(filename)
	if err != nil {
		return s, curated.Errorf(SampleLoad, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if !dec.IsValidFile() {
			return s, curated.Errorf(SampleLoad, "not a valid wav file")
		}

		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return s, curated.Errorf(SampleLoad, err)
		}

		chans := int(dec.NumChans)
		if chans < 1 {
			chans = 1
		}
		scale := float32(32768)
		if buf.SourceBitDepth > 0 {
			scale = float32(int(1) << (buf.SourceBitDepth - 1))
		}

		s.Data = make([]float32, 0, len(buf.Data)/chans)
		for i := 0; i < len(buf.Data); i += chans {
			s.Data = append(s.Data, float32(buf.Data[i])/scale)
		}
		s.SampleRate = float64(dec.SampleRate)

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return s, curated.Errorf(SampleLoad, err)
		}

		// the decoded stream is always 16bit little endian stereo
		chunk := make([]byte, 4096)
		for {
			n, err := dec.Read(chunk)
			for i := 0; i+1 < n; i += 4 {
				v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
				s.Data = append(s.Data, float32(v)/32768)
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return s, curated.Errorf(SampleLoad, err)
			}
		}
		s.SampleRate = float64(dec.SampleRate())

	default:
		return s, curated.Errorf(SampleFormat, filepath.Ext(filename))
	}

	logger.Logf(perm, "bell", "sample %s: %d samples at %0.0fHz", filepath.Base(filename), len(s.Data), s.SampleRate)

	return s, nil
}
