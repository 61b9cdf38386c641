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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecode(t *testing.T) {
	table := []struct {
		opcode   uint16
		operator instructions.Operator
	}{
		{0x00e0, instructions.Cls},
		{0x00ee, instructions.Ret},
		{0x123a, instructions.Jump},
		{0x2abc, instructions.Call},
		{0x3b42, instructions.SkipEqual},
		{0x4b42, instructions.SkipNotEqual},
		{0x5ab0, instructions.SkipEqualReg},
		{0x6c99, instructions.Load},
		{0x7c01, instructions.Add},
		{0x8120, instructions.Move},
		{0x8121, instructions.Or},
		{0x8122, instructions.And},
		{0x8123, instructions.Xor},
		{0x8124, instructions.AddReg},
		{0x8125, instructions.SubReg},
		{0x8126, instructions.ShiftRight},
		{0x8127, instructions.SubReverse},
		{0x812e, instructions.ShiftLeft},
		{0x9ab0, instructions.SkipNotEqualReg},
		{0xa400, instructions.LoadIndex},
		{0xb123, instructions.JumpOffset},
		{0xc5ff, instructions.Random},
		{0xd125, instructions.Draw},
		{0xe29e, instructions.SkipKeyPressed},
		{0xe2a1, instructions.SkipKeyNotPressed},
		{0xf107, instructions.LoadDelay},
		{0xf10a, instructions.WaitKey},
		{0xf115, instructions.SetDelay},
		{0xf118, instructions.SetSound},
		{0xf11e, instructions.AddIndex},
		{0xf129, instructions.LoadGlyph},
		{0xf133, instructions.StoreBCD},
		{0xf155, instructions.StoreRegs},
		{0xf165, instructions.LoadRegs},
	}

	for _, e := range table {
		ins, err := instructions.Decode(e.opcode)
		test.ExpectedSuccess(t, err)
		if ins.Operator != e.operator {
			t.Errorf("opcode %#04x decoded to the wrong operator (%s)", e.opcode, ins.Operator)
		}
	}
}

func TestOperands(t *testing.T) {
	ins, err := instructions.Decode(0xd125)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.X, 0x1)
	test.Equate(t, ins.Y, 0x2)
	test.Equate(t, ins.N, 0x5)

	ins, err = instructions.Decode(0x6c99)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.X, 0xc)
	test.Equate(t, ins.NN, 0x99)

	ins, err = instructions.Decode(0x2abc)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.NNN, 0x0abc)
}

func TestIllegalOpcodes(t *testing.T) {
	// undefined patterns in every group that requires secondary dispatch
	illegal := []uint16{
		0x0000, 0x0123, 0x00e1, // 0NNN machine code call is not supported
		0x5ab1, 0x5abf,
		0x8128, 0x812f,
		0x9ab5,
		0xe200, 0xe29f, 0xe2a2,
		0xf100, 0xf101, 0xf116, 0xf130, 0xf156, 0xf166, 0xf1ff,
	}

	for _, opcode := range illegal {
		_, err := instructions.Decode(opcode)
		if !test.ExpectedFailure(t, err) {
			t.Errorf("opcode %#04x unexpectedly decoded", opcode)
			continue
		}
		test.ExpectedSuccess(t, curated.Is(err, instructions.IllegalOpcode))
	}
}

func TestMnemonics(t *testing.T) {
	table := []struct {
		opcode   uint16
		mnemonic string
	}{
		{0x00e0, "CLS"},
		{0x123a, "JP 0x23a"},
		{0x8125, "SUB V1, V2"},
		{0xd125, "DRW V1, V2, 0x5"},
		{0xf133, "LD B, V1"},
		{0xf165, "LD V1, [I]"},
	}

	for _, e := range table {
		ins, err := instructions.Decode(e.opcode)
		test.ExpectedSuccess(t, err)
		test.Equate(t, ins.String(), e.mnemonic)
	}
}
