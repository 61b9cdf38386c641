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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/random"
)

// NumRegisters is the number of general purpose registers, V0 to VF.
const NumRegisters = 16

// StackDepth is the call depth of the original hardware.
const StackDepth = 16

// ResetPC is the value of the program counter after a reset: the address
// at which program data is loaded.
const ResetPC = memory.OriginROM

// error patterns raised by the ExecuteInstruction() function. all of them
// are guest program errors: fatal to the guest, recoverable for the host.
const (
	// the program counter has run off the end of memory
	FetchOutOfRange = "cpu: program counter out of range (%#04x)"

	// a subroutine call has exceeded the call stack
	StackOverflow = "cpu: stack overflow (calling %#03x)"

	// a return instruction has been executed with an empty call stack
	StackUnderflow = "cpu: return with empty call stack"
)

// mode records whether the CPU is running normally or suspended inside the
// FX0A wait-for-key instruction.
type mode int

const (
	running mode = iota
	awaitingKey
)

// CPU implements the CHIP-8 fetch-decode-execute engine and register file.
type CPU struct {
	// general purpose registers. VF doubles as the carry/borrow/collision
	// flag for specific instructions
	V [NumRegisters]uint8

	// the index register addresses memory for indirect loads/stores and
	// sprite draws. only the low 12 bits are meaningful once it is used as
	// an address
	I uint16

	// the program counter is even-aligned after every cycle under normal
	// program flow since every instruction is exactly two bytes
	PC uint16

	// the call stack and the number of occupied levels
	Stack [StackDepth]uint16
	SP    int

	// the most recently executed instruction. valid after any successful
	// call to ExecuteInstruction()
	LastResult instructions.Instruction

	// the rest of the machine, as seen from the CPU
	mem    *memory.Memory
	scr    *display.Display
	keys   *keypad.Keypad
	timers *timer.Timer
	rnd    *random.Random

	// FX0A suspension state. keySnapshot is the keypad state observed when
	// the instruction began; only a key that is pressed now but was not
	// pressed in the snapshot completes the wait
	mode        mode
	waitReg     uint8
	keySnapshot [keypad.NumKeys]bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem *memory.Memory, scr *display.Display, keys *keypad.Keypad, timers *timer.Timer, rnd *random.Random) *CPU {
	return &CPU{
		mem:    mem,
		scr:    scr,
		keys:   keys,
		timers: timers,
		rnd:    rnd,
		PC:     ResetPC,
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a previously snapshotted CPU into a machine. The references to the
// other components of the machine are not part of the snapshot and must be
// reattached before the CPU can run.
func (mc *CPU) Plumb(mem *memory.Memory, scr *display.Display, keys *keypad.Keypad, timers *timer.Timer, rnd *random.Random) {
	mc.mem = mem
	mc.scr = scr
	mc.keys = keys
	mc.timers = timers
	mc.rnd = rnd
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%#04x I=%#04x SP=%d", mc.PC, mc.I, mc.SP))
	for i, v := range mc.V {
		s.WriteString(fmt.Sprintf(" V%X=%#02x", i, v))
	}
	return s.String()
}

// Reset reinitialises all registers, empties the call stack and leaves the
// awaiting-key mode if it was active.
func (mc *CPU) Reset() {
	mc.V = [NumRegisters]uint8{}
	mc.I = 0
	mc.PC = ResetPC
	mc.Stack = [StackDepth]uint16{}
	mc.SP = 0
	mc.LastResult = instructions.Instruction{}
	mc.mode = running
	mc.waitReg = 0
}

// AwaitingKey returns true if the CPU is suspended inside the FX0A
// wait-for-key instruction.
func (mc *CPU) AwaitingKey() bool {
	return mc.mode == awaitingKey
}

// ExecuteInstruction runs one cycle: a single fetch-decode-execute pass
// producing exactly one instruction's effect. If the CPU is suspended in
// the FX0A wait-for-key instruction the cycle polls the keypad instead;
// the program counter does not advance until a key transitions to
// pressed.
func (mc *CPU) ExecuteInstruction() error {
	if mc.mode == awaitingKey {
		mc.pollKeys()
		return nil
	}

	// the fetch guard should not trip under normal program flow but a
	// guest program can jump close to the top of memory and run off the
	// end
	if mc.PC >= memory.Size {
		return curated.Errorf(FetchOutOfRange, mc.PC)
	}

	opcode := mc.mem.Read16(mc.PC)

	// advance the program counter before executing the instruction body.
	// jumps, calls and skips can then simply assign or adjust the final
	// value
	mc.PC += 2

	ins, err := instructions.Decode(opcode)
	if err != nil {
		return err
	}

	if err := mc.execute(ins); err != nil {
		return err
	}

	mc.LastResult = ins

	return nil
}

// one poll of the keypad while suspended in FX0A. edge-triggered: the key
// must transition from not-pressed to pressed while the CPU is waiting
func (mc *CPU) pollKeys() {
	state := mc.keys.State()

	for k := range state {
		if state[k] && !mc.keySnapshot[k] {
			mc.V[mc.waitReg] = uint8(k)
			mc.mode = running
			mc.PC += 2
			return
		}
	}

	// record releases so that a key that was held when the wait began can
	// complete it after being released and pressed again
	mc.keySnapshot = state
}
