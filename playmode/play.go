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

// Package playmode is the normal, windowed way of running the emulator. It
// glues the hardware package to the SDL window, limits the frame rate to
// 60Hz and maps host keyboard input to the CHIP-8 keypad.
package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/wavwriter"
)

type playmode struct {
	ch8 *hardware.Chip8
	scr *sdlplay.SdlPlay

	guiChannel chan gui.Event
	intChan    chan os.Signal

	// a paused machine still services the window and the keypad, it just
	// doesn't run any frames. also entered when the guest program halts
	paused bool
}

func (pl *playmode) setCaption() {
	caption := pl.ch8.ShortName()
	if pl.paused {
		caption += " [paused]"
	}
	_ = pl.scr.SetFeature(gui.ReqSetCaption, caption)
}

// Play sets the emulation running in an SDL window - without any debugging
// features. The function returns when the user closes the window.
func Play(cartload romloader.Loader, scale int, cyclesPerFrame int, wavFile string, stateGraphFile string) error {
	// the channel must be able to absorb every event of a single Service()
	// pass. events are not drained until after the pass has finished
	pl := &playmode{
		guiChannel: make(chan gui.Event, 64),
	}

	var err error

	pl.scr, err = sdlplay.NewSdlPlay(pl.guiChannel, scale)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer pl.scr.Destroy()

	pl.ch8 = hardware.NewChip8()
	if cyclesPerFrame > 0 {
		pl.ch8.CyclesPerFrame = cyclesPerFrame
	}

	pl.ch8.Scr.AddPixelRenderer(pl.scr)
	pl.ch8.AttachAudioMixer(pl.scr.AudioMixer())

	if wavFile != "" {
		aw, err := wavwriter.New(wavFile)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
		pl.ch8.AttachAudioMixer(aw)
	}

	defer func() {
		if err := pl.ch8.EndMixing(); err != nil {
			logger.Logf("playmode", "%v", err)
		}
	}()

	if err := pl.ch8.AttachROM(cartload); err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	if stateGraphFile != "" {
		if err := writeStateGraph(pl.ch8, stateGraphFile); err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	pl.setCaption()

	if err := pl.scr.SetFeature(gui.ReqSetVisibility, true); err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// redirect interrupt signal to an os.Signal channel so that ctrl-c
	// takes the deferred teardown path
	pl.intChan = make(chan os.Signal, 1)
	signal.Notify(pl.intChan, os.Interrupt)

	lmtr, err := limiter.NewFPSLimiter(hardware.FramesPerSecond)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	for {
		lmtr.Wait()
		pl.scr.Service()

		if err := pl.eventHandler(); err != nil {
			if curated.Is(err, quitEvent) {
				return nil
			}
			return curated.Errorf("playmode: %v", err)
		}

		if pl.paused {
			continue
		}

		if err := pl.ch8.RunForFrame(); err != nil {
			// a guest program error is not fatal to the session. report it
			// and pause; the user can reset (F2) or quit
			logger.Logf("playmode", "%v", err)
			pl.paused = true
			pl.setCaption()
		}
	}
}

func writeStateGraph(ch8 *hardware.Chip8, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	ch8.WriteStateGraph(f)
	logger.Logf("playmode", "state graph written to %s", filename)
	return nil
}
