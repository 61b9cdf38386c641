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

// Package display implements the 64×32 monochrome framebuffer of the CHIP-8
// machine. Sprites are composited onto the framebuffer with XOR; a draw
// flag records that the framebuffer has changed since the host last
// consumed a frame.
//
// There are two ways for a host to get pixels out of the display. A
// headless host (the performance and test packages for example) can poll
// with TakeDrawFlag() and Pixels(). A GUI implements the PixelRenderer
// interface and registers itself with AddPixelRenderer(); registered
// renderers receive a copy of the framebuffer on every EndFrame() in which
// something was drawn.
package display

import (
	"sync"
)

// Width and Height of the framebuffer in pixels.
const (
	Width  = 64
	Height = 32
)

// PixelRenderer implementations displays, or otherwise works with, the
// pixels of a completed frame.
type PixelRenderer interface {
	// SetPixels is called with a copy of the framebuffer whenever a frame
	// ends with the draw flag raised. The slice is in row-major order,
	// index = y*Width+x, one byte per pixel, each byte either 0 or 1.
	SetPixels(pixels []uint8) error
}

// Display is the 64×32 monochrome framebuffer.
type Display struct {
	crit sync.Mutex

	// one byte per pixel, each byte either 0 or 1. row-major order
	pixels [Width * Height]uint8

	// the framebuffer has changed since the host last consumed a frame
	drawFlag bool

	renderers []PixelRenderer
}

// NewDisplay is the preferred method of initialisation for the Display
// type.
func NewDisplay() *Display {
	return &Display{
		// a freshly created (or reset) display counts as changed so that
		// the host draws the initial blank frame
		drawFlag: true,
	}
}

// AddPixelRenderer registers an implementation of PixelRenderer with the
// display.
func (scr *Display) AddPixelRenderer(r PixelRenderer) {
	scr.renderers = append(scr.renderers, r)
}

// Clear the framebuffer to black and raise the draw flag.
func (scr *Display) Clear() {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.pixels = [Width * Height]uint8{}
	scr.drawFlag = true
}

// DrawSprite XOR-composites a sprite onto the framebuffer at coordinates
// (x mod Width, y mod Height). The sprite is eight pixels wide and one row
// per byte, most-significant bit leftmost. Every plotted pixel wraps by
// modulo in both axes.
//
// Returns true if any pixel was turned from 1 to 0 (a collision). The draw
// flag is raised unconditionally.
func (scr *Display) DrawSprite(x uint8, y uint8, sprite []uint8) bool {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	collision := false

	for r, row := range sprite {
		py := (int(y) + r) % Height
		for c := 0; c < 8; c++ {
			if row&(0x80>>c) == 0 {
				continue
			}
			px := (int(x) + c) % Width
			idx := py*Width + px
			if scr.pixels[idx] == 1 {
				collision = true
			}
			scr.pixels[idx] ^= 1
		}
	}

	scr.drawFlag = true

	return collision
}

// Pixels returns a copy of the framebuffer in row-major order, one byte per
// pixel.
func (scr *Display) Pixels() []uint8 {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	p := make([]uint8, len(scr.pixels))
	copy(p, scr.pixels[:])
	return p
}

// Restore replaces the entire framebuffer and raises the draw flag. Used
// when plumbing a previously snapshotted machine state.
func (scr *Display) Restore(pixels []uint8) {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	copy(scr.pixels[:], pixels)
	scr.drawFlag = true
}

// TakeDrawFlag returns the draw flag and clears it. A true return value
// means the framebuffer has changed since the last call.
func (scr *Display) TakeDrawFlag() bool {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	f := scr.drawFlag
	scr.drawFlag = false
	return f
}

// EndFrame services registered pixel renderers. If the draw flag is raised
// it is cleared and every renderer receives a copy of the framebuffer.
// Called by the hardware at the end of every frame's worth of cycles.
func (scr *Display) EndFrame() error {
	if !scr.TakeDrawFlag() {
		return nil
	}

	pixels := scr.Pixels()
	for _, r := range scr.renderers {
		if err := r.SetPixels(pixels); err != nil {
			return err
		}
	}

	return nil
}
