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

package curated_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

const testPattern = "test error: %s"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "detail")

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern: %s"))

	// a plain error is not curated
	test.ExpectedFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "detail")
	f := curated.Errorf("wrapping: %v", e)

	test.ExpectedSuccess(t, curated.Has(f, testPattern))
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedSuccess(t, curated.Is(f, "wrapping: %v"))
}

func TestNormalisation(t *testing.T) {
	// duplicate adjacent parts are removed by the Error() function
	e := curated.Errorf("chip8: %v", curated.Errorf("chip8: %v", curated.Errorf("not yet implemented")))
	test.Equate(t, e.Error(), "chip8: not yet implemented")
}
