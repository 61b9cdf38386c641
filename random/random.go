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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is the random number generator used inside the emulation.
type Random struct {
	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable. must be set
	// before the first number is requested
	ZeroSeed bool

	src *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// the source is created on first use so that the ZeroSeed field can be set
// after initialisation
func (rnd *Random) rand() *rand.Rand {
	if rnd.src == nil {
		if rnd.ZeroSeed {
			rnd.src = rand.New(rand.NewSource(0))
		} else {
			rnd.src = rand.New(rand.NewSource(baseSeed))
		}
	}
	return rnd.src
}

// Intn returns a random number between 0 and n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
