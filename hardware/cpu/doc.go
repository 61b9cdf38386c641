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

// Package cpu implements the fetch-decode-execute engine of the CHIP-8
// machine, along with the register file: the sixteen 8-bit V registers,
// the 16-bit index register, the program counter and the sixteen-level
// call stack.
//
// One call to ExecuteInstruction() is one cycle: exactly one instruction's
// effect. The program counter is advanced before the instruction body is
// executed, so jump, call and skip instructions simply assign or adjust
// the final value rather than special-casing the default increment.
//
// The FX0A wait-for-key instruction is the one suspension point in the
// instruction set. Rather than blocking inside ExecuteInstruction() the
// CPU enters an awaiting-key mode: subsequent cycles poll the keypad for a
// key transitioning to pressed (edge-triggered, so a key already held when
// FX0A executes does not count) and the program counter stands still until
// one arrives. The host keeps driving cycles as normal.
package cpu
