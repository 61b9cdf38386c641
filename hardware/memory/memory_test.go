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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestAddressWrap(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write8(0x0fff, 0xab)
	test.Equate(t, mem.Read8(0x0fff), 0xab)

	// addresses beyond the 12-bit address space wrap rather than error
	test.Equate(t, mem.Read8(0x1fff), 0xab)
	mem.Write8(0x1234, 0xcd)
	test.Equate(t, mem.Read8(0x0234), 0xcd)
}

func TestRead16(t *testing.T) {
	mem := memory.NewMemory()

	// 16-bit reads are big-endian
	mem.Write8(0x0200, 0x12)
	mem.Write8(0x0201, 0x34)
	test.Equate(t, mem.Read16(0x0200), 0x1234)

	// the second byte of a 16-bit read at the top of memory wraps to
	// address zero, which holds the first byte of the fontset
	mem.Write8(0x0fff, 0x56)
	test.Equate(t, mem.Read16(0x0fff), uint16(0x5600|uint16(mem.Read8(0x0000))))
}

func TestFontset(t *testing.T) {
	mem := memory.NewMemory()

	// glyph for digit 0 lives at the very bottom of memory
	test.Equate(t, memory.GlyphAddress(0x0), 0x0000)
	test.Equate(t, mem.Read8(memory.GlyphAddress(0x0)), 0xf0)

	// glyph for digit F
	test.Equate(t, memory.GlyphAddress(0xf), 0x004b)
	test.Equate(t, mem.Read8(memory.GlyphAddress(0xf)), 0xf0)

	// only the low nibble of the digit is significant
	test.Equate(t, memory.GlyphAddress(0x1f), memory.GlyphAddress(0xf))

	// fontset survives a reset
	mem.Write8(0x0000, 0x00)
	mem.Reset()
	test.Equate(t, mem.Read8(0x0000), 0xf0)
}

func TestCopyROM(t *testing.T) {
	mem := memory.NewMemory()

	rom := []byte{0x60, 0x05, 0x61, 0x0b}
	mem.CopyROM(rom)

	for i := range rom {
		test.Equate(t, mem.Read8(uint16(memory.OriginROM+i)), rom[i])
	}
}
