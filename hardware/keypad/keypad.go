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

// Package keypad implements the sixteen-key input latch of the CHIP-8
// machine. The host writes key state from platform input events with
// SetKey(); the CPU reads it with IsPressed() and State().
//
// The host and the CPU may live on different goroutines so the latch is
// guarded by a single mutex. It is the only point of contact between
// platform input and the emulation.
package keypad

import (
	"sync"

	"github.com/jetsetilly/gopher8/curated"
)

// NumKeys is the number of keys on the keypad, labelled 0 to F.
const NumKeys = 16

// InvalidKey is returned by SetKey() for keys outside of the keypad.
// Out-of-range keys from the host are a caller contract violation and are
// rejected rather than silently ignored.
const InvalidKey = "keypad: invalid key (%#02x)"

// Keypad is the sixteen-key input latch.
type Keypad struct {
	crit sync.Mutex
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset releases all keys.
func (pad *Keypad) Reset() {
	pad.crit.Lock()
	defer pad.crit.Unlock()
	pad.keys = [NumKeys]bool{}
}

// SetKey sets the pressed state of the specified key. The key must be in
// the range 0 to 15 or the function fails with InvalidKey.
func (pad *Keypad) SetKey(key uint8, pressed bool) error {
	if key >= NumKeys {
		return curated.Errorf(InvalidKey, key)
	}

	pad.crit.Lock()
	defer pad.crit.Unlock()
	pad.keys[key] = pressed

	return nil
}

// IsPressed returns the pressed state of the specified key. Only the low
// nibble of the key is significant: the CPU's key-test instructions take
// their key from a register that may hold any 8-bit value.
func (pad *Keypad) IsPressed(key uint8) bool {
	pad.crit.Lock()
	defer pad.crit.Unlock()
	return pad.keys[key&0x0f]
}

// State returns a copy of the pressed state of every key. Used by the CPU
// to detect key transitions during the FX0A wait-for-key instruction.
func (pad *Keypad) State() [NumKeys]bool {
	pad.crit.Lock()
	defer pad.crit.Unlock()
	return pad.keys
}
