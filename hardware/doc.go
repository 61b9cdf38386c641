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

// Package hardware is the container package for the emulated components of
// the CHIP-8 machine: the CPU, the 4KB address space, the framebuffer, the
// keypad and the countdown timers. The Chip8 type is the root of the
// machine and the only type a host needs to hold.
//
// The machine is driven in units of cycles and frames. Step() runs one CPU
// cycle; RunForFrame() runs a frame's worth of cycles, ticks the timers
// once and services the display and audio mixers. A host that calls
// RunForFrame() at 60Hz gets an emulation synchronised to wall-clock time.
// Run() loops frames forever with a continueCheck callback for hosts that
// limit the frame rate themselves.
//
// Errors returned from Step() (and so from the frame functions) are guest
// program errors and are sticky: the machine refuses to run until Reset()
// is called. The host decides whether that means quit or report-and-wait.
package hardware
