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

// Package timer implements the two 8-bit countdown timers of the CHIP-8
// machine. Both timers decrement towards zero once per 60Hz tick,
// regardless of how many CPU cycles have run in that interval. The tick is
// driven externally (see the Tick() function); if the host never ticks,
// the timers never advance.
package timer

import "fmt"

// Timer is the delay/sound timer pair.
type Timer struct {
	// both timers are freely readable and writable. the CPU sets them with
	// FX15 and FX18 and reads the delay timer with FX07
	Delay uint8
	Sound uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("delay=%#02x sound=%#02x", tmr.Delay, tmr.Sound)
}

// Reset both timers to zero.
func (tmr *Timer) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

// Snapshot creates a copy of the Timer in its current state.
func (tmr *Timer) Snapshot() *Timer {
	n := *tmr
	return &n
}

// Tick decrements both timers by one, flooring at zero. To keep the
// emulation synchronised with wall-clock time the host must call Tick()
// exactly once per 60Hz interval, however many CPU cycles it chooses to run
// in that interval.
func (tmr *Timer) Tick() {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
}

// SoundActive returns true if the sound timer is running. The host should
// play a tone for as long as this is true.
func (tmr *Timer) SoundActive() bool {
	return tmr.Sound > 0
}
