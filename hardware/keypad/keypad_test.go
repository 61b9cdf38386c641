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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestSetKey(t *testing.T) {
	pad := keypad.NewKeypad()

	test.ExpectedFailure(t, pad.IsPressed(0x5))
	test.ExpectedSuccess(t, pad.SetKey(0x5, true))
	test.ExpectedSuccess(t, pad.IsPressed(0x5))
	test.ExpectedSuccess(t, pad.SetKey(0x5, false))
	test.ExpectedFailure(t, pad.IsPressed(0x5))

	// keys outside of the keypad are a contract violation
	err := pad.SetKey(0x10, true)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, keypad.InvalidKey))
}

func TestKeyNibble(t *testing.T) {
	pad := keypad.NewKeypad()

	// key-test instructions take their key from a register that may hold
	// any 8-bit value. only the low nibble is significant
	test.ExpectedSuccess(t, pad.SetKey(0xa, true))
	test.ExpectedSuccess(t, pad.IsPressed(0xfa))
}

func TestState(t *testing.T) {
	pad := keypad.NewKeypad()

	test.ExpectedSuccess(t, pad.SetKey(0x0, true))
	test.ExpectedSuccess(t, pad.SetKey(0xf, true))

	state := pad.State()
	test.ExpectedSuccess(t, state[0x0])
	test.ExpectedFailure(t, state[0x1])
	test.ExpectedSuccess(t, state[0xf])

	// state is a copy, not a reference
	state[0x1] = true
	test.ExpectedFailure(t, pad.IsPressed(0x1))

	pad.Reset()
	test.ExpectedFailure(t, pad.IsPressed(0x0))
}
