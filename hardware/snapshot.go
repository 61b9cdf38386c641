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

package hardware

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
)

// State stores the CHIP-8 sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// Note that the keypad is not part of the snapshot process. It is live
// input state owned by the host, not machine state.
type State struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Timers *timer.Timer
	Pixels []uint8
}

// Snapshot creates a copy of a previously snapshotted machine State.
func (s *State) Snapshot() *State {
	pixels := make([]uint8, len(s.Pixels))
	copy(pixels, s.Pixels)

	return &State{
		CPU:    s.CPU.Snapshot(),
		Mem:    s.Mem.Snapshot(),
		Timers: s.Timers.Snapshot(),
		Pixels: pixels,
	}
}

// Snapshot the state of the CHIP-8 sub-systems.
func (ch8 *Chip8) Snapshot() *State {
	return &State{
		CPU:    ch8.CPU.Snapshot(),
		Mem:    ch8.Mem.Snapshot(),
		Timers: ch8.Timers.Snapshot(),
		Pixels: ch8.Scr.Pixels(),
	}
}

// Plumb a previously snapshotted state into the machine.
func (ch8 *Chip8) Plumb(state *State) {
	if state == nil {
		panic("chip8: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. the machine must
	// not change what the caller has stored in their state array
	ch8.CPU = state.CPU.Snapshot()
	ch8.Mem = state.Mem.Snapshot()
	ch8.Timers = state.Timers.Snapshot()
	ch8.Scr.Restore(state.Pixels)

	ch8.CPU.Plumb(ch8.Mem, ch8.Scr, ch8.Keys, ch8.Timers, ch8.Rnd)

	ch8.haltErr = nil
}

// WriteStateGraph writes a graphviz visualisation of the machine's
// component graph to the specified writer. A development aid; render the
// output with the dot tool.
func (ch8 *Chip8) WriteStateGraph(w io.Writer) {
	memviz.Map(w, ch8)
}
