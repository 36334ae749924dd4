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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when mixing ends. It is therefore only suitable for short recordings.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/swtpc/term8212/curated"
	"github.com/swtpc/term8212/logger"
)

// Sentinal error patterns.
const (
	WriteError = "wavwriter: %v"
)

// WavWriter implements the television.AudioMixer interface.
type WavWriter struct {
	filename   string
	sampleRate int
	bitDepth   int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
// Samples are written as 16 bit mono.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf(WriteError, "no filename")
	}
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		bitDepth:   16,
	}, nil
}

// Len returns the number of samples buffered so far.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// SetAudio implements the television.AudioMixer interface.
func (aw *WavWriter) SetAudio(buf *audio.IntBuffer) error {
	aw.buffer = append(aw.buffer, buf.Data...)
	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WriteError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WriteError, err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, aw.bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: aw.sampleRate},
		Data:           aw.buffer,
		SourceBitDepth: aw.bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WriteError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(WriteError, err)
	}

	logger.Logf(logger.Allow, "wavwriter", "wrote %d samples to %s", len(aw.buffer), aw.filename)

	return nil
}
