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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// apply the instruction's effect to the machine. the program counter has
// already been advanced past the instruction
func (mc *CPU) execute(ins instructions.Instruction) error {
	switch ins.Operator {
	case instructions.Cls:
		mc.scr.Clear()

	case instructions.Ret:
		if mc.SP == 0 {
			return curated.Errorf(StackUnderflow)
		}
		mc.SP--
		mc.PC = mc.Stack[mc.SP]

	case instructions.Jump:
		mc.PC = ins.NNN

	case instructions.Call:
		if mc.SP >= StackDepth {
			return curated.Errorf(StackOverflow, ins.NNN)
		}
		mc.Stack[mc.SP] = mc.PC
		mc.SP++
		mc.PC = ins.NNN

	case instructions.SkipEqual:
		if mc.V[ins.X] == ins.NN {
			mc.PC += 2
		}

	case instructions.SkipNotEqual:
		if mc.V[ins.X] != ins.NN {
			mc.PC += 2
		}

	case instructions.SkipEqualReg:
		if mc.V[ins.X] == mc.V[ins.Y] {
			mc.PC += 2
		}

	case instructions.Load:
		mc.V[ins.X] = ins.NN

	case instructions.Add:
		// plain addition wraps at 8-bits and does not touch the flag
		// register
		mc.V[ins.X] += ins.NN

	case instructions.Move:
		mc.V[ins.X] = mc.V[ins.Y]

	case instructions.Or:
		mc.V[ins.X] |= mc.V[ins.Y]

	case instructions.And:
		mc.V[ins.X] &= mc.V[ins.Y]

	case instructions.Xor:
		mc.V[ins.X] ^= mc.V[ins.Y]

	case instructions.AddReg:
		sum := uint16(mc.V[ins.X]) + uint16(mc.V[ins.Y])
		mc.V[ins.X] = uint8(sum)
		// the flag write must come after the result write: when X is F the
		// flag wins
		if sum > 0xff {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case instructions.SubReg:
		noBorrow := mc.V[ins.X] >= mc.V[ins.Y]
		mc.V[ins.X] -= mc.V[ins.Y]
		if noBorrow {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case instructions.ShiftRight:
		lsb := mc.V[ins.X] & 0x01
		mc.V[ins.X] >>= 1
		mc.V[0xf] = lsb

	case instructions.SubReverse:
		noBorrow := mc.V[ins.Y] >= mc.V[ins.X]
		mc.V[ins.X] = mc.V[ins.Y] - mc.V[ins.X]
		if noBorrow {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case instructions.ShiftLeft:
		msb := mc.V[ins.X] >> 7
		mc.V[ins.X] <<= 1
		mc.V[0xf] = msb

	case instructions.SkipNotEqualReg:
		if mc.V[ins.X] != mc.V[ins.Y] {
			mc.PC += 2
		}

	case instructions.LoadIndex:
		mc.I = ins.NNN

	case instructions.JumpOffset:
		mc.PC = ins.NNN + uint16(mc.V[0x0])

	case instructions.Random:
		mc.V[ins.X] = uint8(mc.rnd.Intn(256)) & ins.NN

	case instructions.Draw:
		sprite := make([]uint8, ins.N)
		for r := range sprite {
			sprite[r] = mc.mem.Read8(mc.I + uint16(r))
		}
		if mc.scr.DrawSprite(mc.V[ins.X], mc.V[ins.Y], sprite) {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case instructions.SkipKeyPressed:
		if mc.keys.IsPressed(mc.V[ins.X]) {
			mc.PC += 2
		}

	case instructions.SkipKeyNotPressed:
		if !mc.keys.IsPressed(mc.V[ins.X]) {
			mc.PC += 2
		}

	case instructions.LoadDelay:
		mc.V[ins.X] = mc.timers.Delay

	case instructions.WaitKey:
		// suspend rather than block. the program counter is rewound so
		// that it observably stands still until a key arrives; subsequent
		// cycles poll the keypad (see pollKeys)
		mc.mode = awaitingKey
		mc.waitReg = ins.X
		mc.keySnapshot = mc.keys.State()
		mc.PC -= 2

	case instructions.SetDelay:
		mc.timers.Delay = mc.V[ins.X]

	case instructions.SetSound:
		mc.timers.Sound = mc.V[ins.X]

	case instructions.AddIndex:
		// 16-bit addition with no carry flag. the index register is only
		// masked to the 12-bit address space when it is used as an address
		mc.I += uint16(mc.V[ins.X])

	case instructions.LoadGlyph:
		mc.I = memory.GlyphAddress(mc.V[ins.X])

	case instructions.StoreBCD:
		v := mc.V[ins.X]
		mc.mem.Write8(mc.I, v/100)
		mc.mem.Write8(mc.I+1, (v/10)%10)
		mc.mem.Write8(mc.I+2, v%10)

	case instructions.StoreRegs:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			mc.mem.Write8(mc.I+i, mc.V[i])
		}

	case instructions.LoadRegs:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			mc.V[i] = mc.mem.Read8(mc.I + i)
		}

	default:
		return curated.Errorf(instructions.IllegalOpcode, ins.Opcode)
	}

	return nil
}
