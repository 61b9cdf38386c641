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

// Package sdlplay is the SDL window used in playmode. It implements the
// gui.GUI interface for feature requests and the display.PixelRenderer
// interface for the framebuffer itself.
//
// With the exception of the event channel, everything in this package MUST
// be run from the same goroutine, the one that called NewSdlPlay(). SDL
// requires it.
package sdlplay

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

// pixels are stored as RGBA
const pixelDepth = 4

// SdlPlay is a simple SDL implementation of the gui.GUI interface, showing
// the CHIP-8 framebuffer in a window.
type SdlPlay struct {
	// connects SDL with the parent process. events are pushed by the
	// Service() function
	eventChannel chan gui.Event

	// all audio is handled by the Audio type
	aud *Audio

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// to the renderer. it is display.Width * display.Height * pixelDepth
	pixels []byte
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. scale
// is the size of a CHIP-8 pixel in host pixels.
func NewSdlPlay(eventChannel chan gui.Event, scale int) (*SdlPlay, error) {
	scr := &SdlPlay{
		eventChannel: eventChannel,
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// note that we've elected not to show the window on startup. the
	// window is instead opened on a ReqSetVisibility request
	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(display.Width*scale), int32(display.Height*scale),
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the renderer scales the logical 64×32 frame to whatever size the
	// window is
	err = scr.renderer.SetLogicalSize(display.Width, display.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is applied to the renderer to show the image. we copy the
	// pixels to it on every SetPixels()
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Width, display.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, display.Width*display.Height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	// initialise the sound system
	scr.aud, err = NewAudio()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	setupService()

	return scr, nil
}

// AudioMixer returns the buzzer.Mixer implementation of the window's sound
// system.
func (scr *SdlPlay) AudioMixer() *Audio {
	return scr.aud
}

// SetPixels implements the display.PixelRenderer interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) SetPixels(pixels []uint8) error {
	for i, p := range pixels {
		var v byte
		if p != 0 {
			v = 255
		}
		o := i * pixelDepth
		scr.pixels[o] = v
		scr.pixels[o+1] = v
		scr.pixels[o+2] = v
	}

	err := scr.texture.Update(nil, scr.pixels, display.Width*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// Destroy ends the SDL session and releases the window.
func (scr *SdlPlay) Destroy() {
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}
