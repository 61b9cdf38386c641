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

// Package buzzer generates the PCM data for the single-tone buzzer of the
// CHIP-8 machine. The machine has no other sound: the buzzer sounds for as
// long as the sound timer is running.
//
// The hardware package pushes the buzzer state to registered Mixer
// implementations once per frame. Each mixer synthesises its own PCM
// stream with a Generator. The SDL audio device, the wavwriter package and
// the audio digest are all mixers.
package buzzer

// SampleFreq is the frequency of the buzzer PCM stream in samples per
// second.
const SampleFreq = 44100

// ToneFreq is the frequency of the buzzer tone in Hz.
const ToneFreq = 440

// SamplesPerFrame is the number of samples that cover one 60Hz frame.
const SamplesPerFrame = SampleFreq / 60

// Mixer implementations sound (or record) the buzzer.
type Mixer interface {
	// SetBuzzer is called once per frame with the current state of the
	// buzzer
	SetBuzzer(active bool) error

	// EndMixing is called at the end of an emulation session
	EndMixing() error
}

// amplitude of the high phase of the square wave, in unsigned 8-bit PCM
const amplitude = 96

// silence value of the stream. the low phase of the square wave
const silence = 0

// Generator synthesises the buzzer square wave as unsigned 8-bit mono PCM.
// The phase of the wave is carried between calls to Fill() so the tone is
// continuous across frame boundaries.
type Generator struct {
	phase int
}

// NewGenerator is the preferred method of initialisation for the Generator
// type.
func NewGenerator() *Generator {
	return &Generator{}
}

// Fill the entirety of p with PCM data. Silence if the buzzer is not
// active, otherwise a square wave at ToneFreq.
func (gen *Generator) Fill(p []uint8, active bool) {
	if !active {
		for i := range p {
			p[i] = silence
		}
		gen.phase = 0
		return
	}

	const halfCycle = SampleFreq / (2 * ToneFreq)

	for i := range p {
		if (gen.phase/halfCycle)%2 == 0 {
			p[i] = amplitude
		} else {
			p[i] = silence
		}
		gen.phase++
	}
}
