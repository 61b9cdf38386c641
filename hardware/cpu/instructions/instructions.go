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

import "fmt"

// Operator identifies the effect of an instruction, distinct from the
// operands it carries.
type Operator int

// List of valid Operator values. The comment gives the opcode pattern in
// the conventional notation: X and Y are register operands, NNN a 12-bit
// address, NN an 8-bit literal and N a 4-bit literal.
const (
	Cls               Operator = iota // 00E0
	Ret                               // 00EE
	Jump                              // 1NNN
	Call                              // 2NNN
	SkipEqual                         // 3XNN
	SkipNotEqual                      // 4XNN
	SkipEqualReg                      // 5XY0
	Load                              // 6XNN
	Add                               // 7XNN
	Move                              // 8XY0
	Or                                // 8XY1
	And                               // 8XY2
	Xor                               // 8XY3
	AddReg                            // 8XY4
	SubReg                            // 8XY5
	ShiftRight                        // 8XY6
	SubReverse                        // 8XY7
	ShiftLeft                         // 8XYE
	SkipNotEqualReg                   // 9XY0
	LoadIndex                         // ANNN
	JumpOffset                        // BNNN
	Random                            // CXNN
	Draw                              // DXYN
	SkipKeyPressed                    // EX9E
	SkipKeyNotPressed                 // EXA1
	LoadDelay                         // FX07
	WaitKey                           // FX0A
	SetDelay                          // FX15
	SetSound                          // FX18
	AddIndex                          // FX1E
	LoadGlyph                         // FX29
	StoreBCD                          // FX33
	StoreRegs                         // FX55
	LoadRegs                          // FX65
)

func (op Operator) String() string {
	switch op {
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Jump, JumpOffset:
		return "JP"
	case Call:
		return "CALL"
	case SkipEqual, SkipEqualReg:
		return "SE"
	case SkipNotEqual, SkipNotEqualReg:
		return "SNE"
	case Load, Move, LoadIndex, LoadDelay, WaitKey, SetDelay, SetSound, LoadGlyph, StoreBCD, StoreRegs, LoadRegs:
		return "LD"
	case Add, AddReg, AddIndex:
		return "ADD"
	case Or:
		return "OR"
	case And:
		return "AND"
	case Xor:
		return "XOR"
	case SubReg:
		return "SUB"
	case ShiftRight:
		return "SHR"
	case SubReverse:
		return "SUBN"
	case ShiftLeft:
		return "SHL"
	case Random:
		return "RND"
	case Draw:
		return "DRW"
	case SkipKeyPressed:
		return "SKP"
	case SkipKeyNotPressed:
		return "SKNP"
	}
	panic("unknown operator")
}

// Instruction is a decoded opcode: the operator tag plus every operand
// field the opcode carries. Fields that have no meaning for a particular
// operator are zero.
type Instruction struct {
	// the opcode the instruction was decoded from
	Opcode uint16

	Operator Operator

	// register operands
	X uint8
	Y uint8

	// literal operands: 4-bit, 8-bit and 12-bit
	N   uint8
	NN  uint8
	NNN uint16
}

// String returns the instruction in the conventional CHIP-8 assembly
// notation.
func (ins Instruction) String() string {
	switch ins.Operator {
	case Cls, Ret:
		return ins.Operator.String()
	case Jump, Call:
		return fmt.Sprintf("%s %#03x", ins.Operator, ins.NNN)
	case JumpOffset:
		return fmt.Sprintf("%s V0, %#03x", ins.Operator, ins.NNN)
	case SkipEqual, SkipNotEqual, Load, Add, Random:
		return fmt.Sprintf("%s V%X, %#02x", ins.Operator, ins.X, ins.NN)
	case SkipEqualReg, SkipNotEqualReg, Move, Or, And, Xor, AddReg, SubReg, SubReverse:
		return fmt.Sprintf("%s V%X, V%X", ins.Operator, ins.X, ins.Y)
	case ShiftRight, ShiftLeft:
		return fmt.Sprintf("%s V%X", ins.Operator, ins.X)
	case LoadIndex:
		return fmt.Sprintf("%s I, %#03x", ins.Operator, ins.NNN)
	case Draw:
		return fmt.Sprintf("%s V%X, V%X, %#x", ins.Operator, ins.X, ins.Y, ins.N)
	case SkipKeyPressed, SkipKeyNotPressed:
		return fmt.Sprintf("%s V%X", ins.Operator, ins.X)
	case LoadDelay:
		return fmt.Sprintf("%s V%X, DT", ins.Operator, ins.X)
	case WaitKey:
		return fmt.Sprintf("%s V%X, K", ins.Operator, ins.X)
	case SetDelay:
		return fmt.Sprintf("%s DT, V%X", ins.Operator, ins.X)
	case SetSound:
		return fmt.Sprintf("%s ST, V%X", ins.Operator, ins.X)
	case AddIndex:
		return fmt.Sprintf("%s I, V%X", ins.Operator, ins.X)
	case LoadGlyph:
		return fmt.Sprintf("%s F, V%X", ins.Operator, ins.X)
	case StoreBCD:
		return fmt.Sprintf("%s B, V%X", ins.Operator, ins.X)
	case StoreRegs:
		return fmt.Sprintf("%s [I], V%X", ins.Operator, ins.X)
	case LoadRegs:
		return fmt.Sprintf("%s V%X, [I]", ins.Operator, ins.X)
	}
	panic("unknown operator")
}
