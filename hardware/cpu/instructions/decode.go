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

package instructions

import (
	"github.com/jetsetilly/gopher8/curated"
)

// IllegalOpcode is returned by Decode() for opcode patterns that are not
// part of the instruction set. There are no defined semantics for
// continuing after an illegal opcode so the error is fatal to the guest
// program (but not to the host).
const IllegalOpcode = "instructions: illegal opcode (%#04x)"

// Decode a 16-bit opcode into an Instruction. Fails with IllegalOpcode for
// patterns outside of the instruction set.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode>>8) & 0x0f,
		Y:      uint8(opcode>>4) & 0x0f,
		N:      uint8(opcode) & 0x0f,
		NN:     uint8(opcode),
		NNN:    opcode & 0x0fff,
	}

	// decode by the top nibble first. the 0, 5, 8, 9, E and F groups need
	// further dispatch on the low byte or low nibble
	switch opcode & 0xf000 {
	case 0x0000:
		// the 0NNN machine-code-call instruction of the original COSMAC VIP
		// is not part of the instruction set. only the two 00Ex opcodes are
		// recognised
		switch opcode {
		case 0x00e0:
			ins.Operator = Cls
		case 0x00ee:
			ins.Operator = Ret
		default:
			return Instruction{}, curated.Errorf(IllegalOpcode, opcode)
		}

	case 0x1000:
		ins.Operator = Jump
	case 0x2000:
		ins.Operator = Call
	case 0x3000:
		ins.Operator = SkipEqual
	case 0x4000:
		ins.Operator = SkipNotEqual

	case 0x5000:
		if ins.N != 0x0 {
			return Instruction{}, curated.Errorf(IllegalOpcode, opcode)
		}
		ins.Operator = SkipEqualReg

	case 0x6000:
		ins.Operator = Load
	case 0x7000:
		ins.Operator = Add

	case 0x8000:
		switch ins.N {
		case 0x0:
			ins.Operator = Move
		case 0x1:
			ins.Operator = Or
		case 0x2:
			ins.Operator = And
		case 0x3:
			ins.Operator = Xor
		case 0x4:
			ins.Operator = AddReg
		case 0x5:
			ins.Operator = SubReg
		case 0x6:
			ins.Operator = ShiftRight
		case 0x7:
			ins.Operator = SubReverse
		case 0xe:
			ins.Operator = ShiftLeft
		default:
			return Instruction{}, curated.Errorf(IllegalOpcode, opcode)
		}

	case 0x9000:
		if ins.N != 0x0 {
			return Instruction{}, curated.Errorf(IllegalOpcode, opcode)
		}
		ins.Operator = SkipNotEqualReg

	case 0xa000:
		ins.Operator = LoadIndex
	case 0xb000:
		ins.Operator = JumpOffset
	case 0xc000:
		ins.Operator = Random
	case 0xd000:
		ins.Operator = Draw

	case 0xe000:
		switch ins.NN {
		case 0x9e:
			ins.Operator = SkipKeyPressed
		case 0xa1:
			ins.Operator = SkipKeyNotPressed
		default:
			return Instruction{}, curated.Errorf(IllegalOpcode, opcode)
		}

	case 0xf000:
		switch ins.NN {
		case 0x07:
			ins.Operator = LoadDelay
		case 0x0a:
			ins.Operator = WaitKey
		case 0x15:
			ins.Operator = SetDelay
		case 0x18:
			ins.Operator = SetSound
		case 0x1e:
			ins.Operator = AddIndex
		case 0x29:
			ins.Operator = LoadGlyph
		case 0x33:
			ins.Operator = StoreBCD
		case 0x55:
			ins.Operator = StoreRegs
		case 0x65:
			ins.Operator = LoadRegs
		default:
			return Instruction{}, curated.Errorf(IllegalOpcode, opcode)
		}
	}

	return ins, nil
}
