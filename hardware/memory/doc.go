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

// Package memory implements the 4KB address space of the CHIP-8 machine.
//
// Addresses 0x000 to 0x1ff are reserved for the interpreter. The only thing
// the emulation keeps there is the built-in fontset, copied to address 0x000
// on initialisation and on every Reset(). Program data is loaded at
// OriginROM (0x200) and runs to the top of memory.
//
// All access functions mask their address argument to the 12-bit address
// space. Out-of-range addresses wrap rather than error, mirroring the
// permissive behaviour of the original interpreters. This is a deliberate,
// test-visible policy and not a crash path.
package memory
