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

package romloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func TestShortName(t *testing.T) {
	ld := romloader.NewLoader("roms/pong.ch8")
	test.Equate(t, ld.ShortName(), "pong")

	ld = romloader.NewLoader("maze")
	test.Equate(t, ld.ShortName(), "maze")
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(fn, []byte{0x12, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}

	ld := romloader.NewLoader(fn)
	test.ExpectedFailure(t, ld.HasLoaded())

	err := ld.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, ld.HasLoaded())
	test.Equate(t, len(ld.Data), 2)

	// sha1 of the two byte program
	if ld.Hash == "" {
		t.Errorf("no hash generated by load")
	}

	// a second load with the generated hash succeeds
	ld2 := romloader.NewLoader(fn)
	ld2.Hash = ld.Hash
	test.ExpectedSuccess(t, ld2.Load())

	// and an incorrect hash fails
	ld3 := romloader.NewLoader(fn)
	ld3.Hash = "0000"
	test.ExpectedFailure(t, ld3.Load())
}

func TestLoadMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "no-such-file.ch8"))
	test.ExpectedFailure(t, ld.Load())
}
