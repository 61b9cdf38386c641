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

package playmode

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
)

// sentinel error returned when the user has asked to quit, by any means.
const quitEvent = "user input quit event"

// service every pending gui event and the interrupt signal. returns a
// quitEvent error when the session should end.
func (pl *playmode) eventHandler() error {
	for {
		select {
		case <-pl.intChan:
			return curated.Errorf(quitEvent)

		case ev := <-pl.guiChannel:
			switch ev.ID {
			case gui.EventWindowClose:
				return curated.Errorf(quitEvent)

			case gui.EventKeyboard:
				if err := pl.keyboardEventHandler(ev.Data.(gui.EventDataKeyboard)); err != nil {
					return err
				}
			}

		default:
			return nil
		}
	}
}
