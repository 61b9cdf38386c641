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

// Package digest is used to create mathematical hashes of the emulator's
// video and audio output. The hashes are chained from frame to frame so a
// single value fingerprints an entire emulation run. Useful for comparing
// two runs of the same program without storing or eyeballing the output.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
package digest

// Digest implementations compute a running hash of an output stream.
type Digest interface {
	// Hash returns the current value of the digest as a printable string
	Hash() string

	// ResetDigest resets the digest to its zero value
	ResetDigest()
}
