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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true

	// two zero-seeded generators produce the same sequence
	for i := 1; i < 256; i++ {
		test.Equate(t, a.Intn(i), b.Intn(i))
	}
}

func TestRange(t *testing.T) {
	rnd := random.NewRandom()
	for i := 0; i < 1000; i++ {
		n := rnd.Intn(256)
		if n < 0 || n > 255 {
			t.Fatalf("random number out of range (%d)", n)
		}
	}
}
