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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/buzzer"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/romloader"
)

// FramesPerSecond is the display and timer rate of the machine. Timers
// always decrement at this rate, however many CPU cycles run per frame.
const FramesPerSecond = 60

// DefCyclesPerFrame is the default number of CPU cycles per 60Hz frame. The
// original interpreters had no defined clock speed; this value gives a
// comfortable speed for most programs and can be changed per session
// through the Chip8.CyclesPerFrame field.
const DefCyclesPerFrame = 10

// ROMTooLarge is returned by AttachROM() when the program does not fit in
// the address space. The machine state is untouched when this error is
// returned.
const ROMTooLarge = "chip8: program too large (%d bytes, %d byte maximum)"

// Chip8 is the main container for the emulated components of the CHIP-8
// machine.
type Chip8 struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Scr    *display.Display
	Keys   *keypad.Keypad
	Timers *timer.Timer

	// the number of CPU cycles run by each call to RunForFrame()
	CyclesPerFrame int

	// the source of randomness for the CXNN instruction. exposed so that
	// regression tests can zero-seed it
	Rnd *random.Random

	// the most recently attached program. Reset() reloads it
	loader   romloader.Loader
	attached bool

	// registered audio mixers. serviced once per frame
	mixers []buzzer.Mixer

	// a guest program error is sticky. once the machine has halted every
	// subsequent Step() returns the same error until Reset() is called
	haltErr error
}

// NewChip8 is the preferred method of initialisation for the Chip8 type.
func NewChip8() *Chip8 {
	ch8 := &Chip8{
		Mem:            memory.NewMemory(),
		Scr:            display.NewDisplay(),
		Keys:           keypad.NewKeypad(),
		Timers:         timer.NewTimer(),
		Rnd:            random.NewRandom(),
		CyclesPerFrame: DefCyclesPerFrame,
	}

	ch8.CPU = cpu.NewCPU(ch8.Mem, ch8.Scr, ch8.Keys, ch8.Timers, ch8.Rnd)

	return ch8
}

// AttachROM loads a program into the machine and resets it. The program
// must fit in the address space above the load address; if it does not,
// the function fails with ROMTooLarge and no machine state is changed.
func (ch8 *Chip8) AttachROM(loader romloader.Loader) error {
	if err := loader.Load(); err != nil {
		return err
	}

	if len(loader.Data) > memory.MaxROMSize {
		return curated.Errorf(ROMTooLarge, len(loader.Data), memory.MaxROMSize)
	}

	ch8.loader = loader
	ch8.attached = true

	logger.Logf("chip8", "attached %s (%s)", loader.ShortName(), loader.Hash)

	ch8.Reset()

	return nil
}

// Reset the machine to its power-on state and reload the attached program,
// if there is one. Keys are released, timers are zeroed and any sticky
// halt error is cleared.
func (ch8 *Chip8) Reset() {
	ch8.Mem.Reset()
	if ch8.attached {
		ch8.Mem.CopyROM(ch8.loader.Data)
	}
	ch8.CPU.Reset()
	ch8.Scr.Clear()
	ch8.Keys.Reset()
	ch8.Timers.Reset()
	ch8.haltErr = nil
}

// Step the machine one CPU cycle. Errors are guest program errors and are
// sticky: once a step has failed, every subsequent step fails with the
// same error until Reset() is called.
func (ch8 *Chip8) Step() error {
	if ch8.haltErr != nil {
		return ch8.haltErr
	}

	if err := ch8.CPU.ExecuteInstruction(); err != nil {
		ch8.haltErr = err
		logger.Logf("chip8", "halted: %v", err)
		return err
	}

	return nil
}

// ShortName returns the short name of the attached program, or the empty
// string if no program has been attached.
func (ch8 *Chip8) ShortName() string {
	if !ch8.attached {
		return ""
	}
	return ch8.loader.ShortName()
}

// Halted returns the sticky guest program error, or nil if the machine is
// runnable.
func (ch8 *Chip8) Halted() error {
	return ch8.haltErr
}

// TickTimers decrements the delay and sound timers. Must be called exactly
// once per 60Hz interval to keep timers synchronised to wall-clock time.
// RunForFrame() calls this; hosts driving Step() directly must call it
// themselves.
func (ch8 *Chip8) TickTimers() {
	ch8.Timers.Tick()
}

// SoundActive returns true if the buzzer should be sounding.
func (ch8 *Chip8) SoundActive() bool {
	return ch8.Timers.SoundActive()
}

// AttachAudioMixer registers an implementation of buzzer.Mixer with the
// machine. Mixers are serviced once per frame by RunForFrame().
func (ch8 *Chip8) AttachAudioMixer(m buzzer.Mixer) {
	ch8.mixers = append(ch8.mixers, m)
}

// EndMixing tells every registered audio mixer that the session is over.
// The first error encountered is returned but every mixer is ended
// regardless.
func (ch8 *Chip8) EndMixing() error {
	var rerr error
	for _, m := range ch8.mixers {
		if err := m.EndMixing(); err != nil && rerr == nil {
			rerr = err
		}
	}
	return rerr
}
