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
	"github.com/jetsetilly/gopher8/gui"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and there
	// is nothing in the emulated machine that wants them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service translates pending SDL events and pushes them onto the event
// channel. Call once per frame from the playmode loop.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve. servicing just one
	// event per frame is not enough: queued events would take one frame or
	// longer to resolve
	empty := false
	for !empty {
		// check for SDL events, timing out straight away if there's nothing
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.eventChannel <- gui.Event{ID: gui.EventWindowClose}

		case *sdl.KeyboardEvent:
			switch ev.Type {
			case sdl.KEYDOWN:
				if ev.Repeat == 0 {
					scr.eventChannel <- gui.Event{
						ID: gui.EventKeyboard,
						Data: gui.EventDataKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Down: true}}
				}
			case sdl.KEYUP:
				if ev.Repeat == 0 {
					scr.eventChannel <- gui.Event{
						ID: gui.EventKeyboard,
						Data: gui.EventDataKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Down: false}}
				}
			}

		case nil:
			// a nil value means WaitEventTimeout has timed out and we can
			// say that the event queue is empty
			empty = true
		}
	}
}
