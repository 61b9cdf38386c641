// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of the buzzer audio to disk as a WAV
// file. Note that audio data is buffered in memory in its entirety, and
// written to disk on program end. It is therefore probably only suitable
// for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/buzzer"
	"github.com/jetsetilly/gopher8/logger"
)

// WavWriter implements the buzzer.Mixer interface.
type WavWriter struct {
	filename string
	gen      *buzzer.Generator
	frame    [buzzer.SamplesPerFrame]uint8
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		gen:      buzzer.NewGenerator(),
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// SetBuzzer implements the buzzer.Mixer interface. One call is one frame's
// worth of samples.
func (aw *WavWriter) SetBuzzer(active bool) error {
	aw.gen.Fill(aw.frame[:], active)
	for _, s := range aw.frame {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// EndMixing implements the buzzer.Mixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// unsigned 8-bit mono PCM, matching the buzzer generator
	enc := wav.NewEncoder(f, buzzer.SampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  buzzer.SampleFreq,
		},
		SourceBitDepth: 8,
		Data:           aw.buffer,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
