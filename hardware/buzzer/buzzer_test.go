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

package buzzer_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/buzzer"
	"github.com/jetsetilly/gopher8/test"
)

func TestSilence(t *testing.T) {
	gen := buzzer.NewGenerator()

	p := make([]uint8, buzzer.SamplesPerFrame)
	gen.Fill(p, false)

	for i := range p {
		if p[i] != 0 {
			t.Fatalf("expected silence at sample %d", i)
		}
	}
}

func TestSquareWave(t *testing.T) {
	gen := buzzer.NewGenerator()

	p := make([]uint8, buzzer.SamplesPerFrame)
	gen.Fill(p, true)

	// the stream alternates between exactly two levels
	levels := make(map[uint8]int)
	for i := range p {
		levels[p[i]]++
	}
	test.Equate(t, len(levels), 2)

	// the wave changes level at the half-cycle boundary
	halfCycle := buzzer.SampleFreq / (2 * buzzer.ToneFreq)
	if p[0] == p[halfCycle] {
		t.Error("expected level change at half-cycle boundary")
	}

	// phase is continuous across calls to Fill()
	q := make([]uint8, 1)
	gen.Fill(q, true)
	test.Equate(t, q[0], p[buzzer.SamplesPerFrame%(2*halfCycle)])
}
