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

package memory

// Size of the CHIP-8 address space in bytes.
const Size = 4096

// OriginROM is the address at which program data is loaded.
const OriginROM = 0x200

// MaxROMSize is the largest program that can fit in the address space.
const MaxROMSize = Size - OriginROM

// addresses are 12 bits wide. all access functions mask their address
// argument with addressMask
const addressMask = Size - 1

// Memory is the 4KB address space of the CHIP-8 machine.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset zeroes the entire address space and reinstalls the fontset at
// address 0x000.
func (mem *Memory) Reset() {
	mem.data = [Size]uint8{}
	copy(mem.data[originFont:], fontset[:])
}

// Snapshot creates a copy of the memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Read8 returns the byte at the specified address. The address wraps at the
// limit of the address space.
func (mem *Memory) Read8(address uint16) uint8 {
	return mem.data[address&addressMask]
}

// Write8 writes a byte to the specified address. The address wraps at the
// limit of the address space.
func (mem *Memory) Write8(address uint16, data uint8) {
	mem.data[address&addressMask] = data
}

// Read16 returns the big-endian 16-bit value starting at the specified
// address. Both byte addresses wrap at the limit of the address space.
func (mem *Memory) Read16(address uint16) uint16 {
	hi := mem.data[address&addressMask]
	lo := mem.data[(address+1)&addressMask]
	return (uint16(hi) << 8) | uint16(lo)
}

// CopyROM copies program data into memory starting at OriginROM. The caller
// is responsible for making sure the data fits; the hardware package checks
// against MaxROMSize before touching any machine state.
func (mem *Memory) CopyROM(data []byte) {
	copy(mem.data[OriginROM:], data)
}
