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

	"github.com/jetsetilly/gopher8/hardware/display"
)

// Video is an implementation of the display.PixelRenderer interface. It
// generates a SHA-1 value of the framebuffer on every rendered frame. It
// does not display the image anywhere.
type Video struct {
	digest [sha1.Size]byte
	frames int

	// working area. the previous digest value at the head, followed by the
	// frame's pixels, so that fingerprints chain from frame to frame
	work []byte
}

// NewVideo is the preferred method of initialisation for the Video type.
// Register the result with the display's AddPixelRenderer().
func NewVideo() *Video {
	return &Video{
		work: make([]byte, sha1.Size+display.Width*display.Height),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames that have contributed to the current
// hash value.
func (dig *Video) Frames() int {
	return dig.frames
}

// SetPixels implements the display.PixelRenderer interface.
func (dig *Video) SetPixels(pixels []uint8) error {
	copy(dig.work, dig.digest[:])
	copy(dig.work[sha1.Size:], pixels)
	dig.digest = sha1.Sum(dig.work)
	dig.frames++
	return nil
}
