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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/buzzer"
)

// Audio is an implementation of the buzzer.Mixer interface. It generates a
// SHA-1 value of the buzzer PCM stream, one frame's worth of samples at a
// time. It does not sound the buzzer anywhere.
type Audio struct {
	digest [sha1.Size]byte
	gen    *buzzer.Generator

	// as with Video, the previous digest chains into the next
	work []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
// Register the result with the machine's AttachAudioMixer().
func NewAudio() *Audio {
	return &Audio{
		gen:  buzzer.NewGenerator(),
		work: make([]byte, sha1.Size+buzzer.SamplesPerFrame),
	}
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// SetBuzzer implements the buzzer.Mixer interface.
func (dig *Audio) SetBuzzer(active bool) error {
	copy(dig.work, dig.digest[:])
	dig.gen.Fill(dig.work[sha1.Size:], active)
	dig.digest = sha1.Sum(dig.work)
	return nil
}

// EndMixing implements the buzzer.Mixer interface.
func (dig *Audio) EndMixing() error {
	return nil
}
