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

package display_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

// a 2x2 block in the top-left corner of the sprite
var block = []uint8{0xc0, 0xc0}

func TestDrawFlag(t *testing.T) {
	scr := display.NewDisplay()

	// a fresh display counts as changed
	test.ExpectedSuccess(t, scr.TakeDrawFlag())
	test.ExpectedFailure(t, scr.TakeDrawFlag())

	scr.DrawSprite(0, 0, block)
	test.ExpectedSuccess(t, scr.TakeDrawFlag())
	test.ExpectedFailure(t, scr.TakeDrawFlag())

	scr.Clear()
	test.ExpectedSuccess(t, scr.TakeDrawFlag())
}

func TestXORCollision(t *testing.T) {
	scr := display.NewDisplay()

	// first draw of a sprite onto an empty framebuffer never collides
	test.ExpectedFailure(t, scr.DrawSprite(0, 0, block))

	pixels := scr.Pixels()
	test.Equate(t, pixels[0], 1)
	test.Equate(t, pixels[1], 1)
	test.Equate(t, pixels[display.Width], 1)
	test.Equate(t, pixels[display.Width+1], 1)
	test.Equate(t, pixels[2], 0)

	// drawing the same sprite in the same place self-cancels and collides
	test.ExpectedSuccess(t, scr.DrawSprite(0, 0, block))

	pixels = scr.Pixels()
	for i := range pixels {
		test.Equate(t, pixels[i], 0)
	}
}

func TestWrap(t *testing.T) {
	scr := display.NewDisplay()

	// a sprite drawn at the far corner wraps to the opposite edges
	scr.DrawSprite(display.Width-1, display.Height-1, block)

	pixels := scr.Pixels()
	test.Equate(t, pixels[(display.Height-1)*display.Width+display.Width-1], 1)
	test.Equate(t, pixels[(display.Height-1)*display.Width], 1)
	test.Equate(t, pixels[display.Width-1], 1)
	test.Equate(t, pixels[0], 1)
}

func TestStartCoordsWrap(t *testing.T) {
	scr := display.NewDisplay()

	// start coordinates are taken modulo the framebuffer dimensions
	scr.DrawSprite(display.Width, display.Height, block)

	pixels := scr.Pixels()
	test.Equate(t, pixels[0], 1)
	test.Equate(t, pixels[1], 1)
}

type renderer struct {
	frames int
	pixels []uint8
}

func (r *renderer) SetPixels(pixels []uint8) error {
	r.frames++
	r.pixels = pixels
	return nil
}

func TestEndFrame(t *testing.T) {
	scr := display.NewDisplay()
	rnd := &renderer{}
	scr.AddPixelRenderer(rnd)

	// the initial blank frame is pushed to renderers
	test.ExpectedSuccess(t, scr.EndFrame())
	test.Equate(t, rnd.frames, 1)

	// nothing drawn, nothing pushed
	test.ExpectedSuccess(t, scr.EndFrame())
	test.Equate(t, rnd.frames, 1)

	scr.DrawSprite(0, 0, block)
	test.ExpectedSuccess(t, scr.EndFrame())
	test.Equate(t, rnd.frames, 2)
	test.Equate(t, rnd.pixels[0], 1)
}
