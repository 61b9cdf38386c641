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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

// a program that draws the glyph for zero and spins
var drawROM = []byte{
	0x61, 0x00, // LD V1, 0x00
	0xf1, 0x29, // LD F, V1
	0xd2, 0x35, // DRW V2, V3, 0x5
	0x12, 0x06, // JP 0x206
}

func run(t *testing.T, rom []byte, numFrames int) (string, string) {
	t.Helper()

	ch8 := hardware.NewChip8()
	ch8.Rnd.ZeroSeed = true

	vid := digest.NewVideo()
	ch8.Scr.AddPixelRenderer(vid)

	aud := digest.NewAudio()
	ch8.AttachAudioMixer(aud)

	err := ch8.AttachROM(romloader.Loader{Filename: "test.ch8", Data: rom})
	test.ExpectedSuccess(t, err)

	test.ExpectedSuccess(t, ch8.RunForFrameCount(numFrames))

	return vid.Hash(), aud.Hash()
}

func TestReproducibility(t *testing.T) {
	v1, a1 := run(t, drawROM, 10)
	v2, a2 := run(t, drawROM, 10)
	test.Equate(t, v1, v2)
	test.Equate(t, a1, a2)
}

func TestDivergence(t *testing.T) {
	// same program but drawing the glyph for one instead of zero
	otherROM := make([]byte, len(drawROM))
	copy(otherROM, drawROM)
	otherROM[1] = 0x01

	v1, _ := run(t, drawROM, 10)
	v2, _ := run(t, otherROM, 10)

	if v1 == v2 {
		t.Errorf("video digests of different programs unexpectedly match")
	}
}

func TestResetDigest(t *testing.T) {
	vid := digest.NewVideo()
	zero := vid.Hash()

	test.ExpectedSuccess(t, vid.SetPixels(make([]uint8, 64*32)))
	if vid.Hash() == zero {
		t.Errorf("digest unchanged after frame")
	}
	test.Equate(t, vid.Frames(), 1)

	vid.ResetDigest()
	test.Equate(t, vid.Hash(), zero)
	test.Equate(t, vid.Frames(), 0)
}
