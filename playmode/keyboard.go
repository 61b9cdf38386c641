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

// the left hand side of the host keyboard stands in for the 4x4 hex keypad:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keypadMap = map[string]uint8{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// keyboardEventHandler handles keypresses for play mode. Keypad keys are
// forwarded to the machine; a handful of keys control the emulation
// itself.
func (pl *playmode) keyboardEventHandler(ev gui.EventDataKeyboard) error {
	if key, ok := keypadMap[ev.Key]; ok {
		return pl.ch8.Keys.SetKey(key, ev.Down)
	}

	// emulation controls act on key-down only
	if !ev.Down {
		return nil
	}

	switch ev.Key {
	case "Escape":
		return curated.Errorf(quitEvent)

	case "P":
		pl.paused = !pl.paused
		pl.setCaption()

	case "F2":
		// reset keeps the attached program, like the reset switch on a real
		// console
		pl.ch8.Reset()
		pl.paused = false
		pl.setCaption()
	}

	return nil
}
