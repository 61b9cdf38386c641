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

// Package instructions defines the CHIP-8 instruction set.
//
// The CHIP-8 encoding is irregular: some opcodes are fully determined by
// the top nibble, others require inspecting the low byte or low nibble.
// Rather than spreading that irregularity through the execution code, the
// Decode() function resolves a 16-bit opcode into an Instruction value - an
// Operator tag plus the operand fields the opcode carries. Execution in the
// cpu package is then a single switch over the Operator.
//
// Opcode patterns that do not resolve to an operator fail with the
// IllegalOpcode error rather than silently doing nothing.
package instructions
