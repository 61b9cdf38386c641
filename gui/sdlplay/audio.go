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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/buzzer"

	"github.com/veandco/go-sdl2/sdl"
)

// if the queue grows beyond this then we skip queueing for a frame. the
// buzzer is a single continuous tone so dropped samples are inaudible;
// unbounded queue growth on the other hand is audible as ever-increasing
// lag
const maxQueuedBytes = 4 * buzzer.SamplesPerFrame

// Audio outputs the buzzer through SDL's queueing audio API. It implements
// the buzzer.Mixer interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	gen   *buzzer.Generator
	frame [buzzer.SamplesPerFrame]uint8
}

// NewAudio is the preferred method of initialisation for the Audio type.
//
// Prerequisite: SDL_INIT_AUDIO must be included in the call to sdl.Init().
func NewAudio() (*Audio, error) {
	aud := &Audio{
		gen: buzzer.NewGenerator(),
	}

	spec := &sdl.AudioSpec{
		Freq:     buzzer.SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(buzzer.SamplesPerFrame),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetBuzzer implements the buzzer.Mixer interface. One call is one frame's
// worth of samples.
func (aud *Audio) SetBuzzer(active bool) error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueuedBytes {
		return nil
	}

	aud.gen.Fill(aud.frame[:], active)

	if err := sdl.QueueAudio(aud.id, aud.frame[:]); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	return nil
}

// EndMixing implements the buzzer.Mixer interface.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
