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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/romloader"
)

// Check is a very rough and ready calculation of the emulator's
// performance. The emulation is run without a window for the specified
// duration; uncapped removes the 60Hz frame limit so the result measures
// how fast the emulation can go rather than how accurately it holds 60fps.
func Check(output io.Writer, profile bool, cartload romloader.Loader, cyclesPerFrame int, uncapped bool, duration string) error {
	ch8 := hardware.NewChip8()
	if cyclesPerFrame > 0 {
		ch8.CyclesPerFrame = cyclesPerFrame
	}

	if err := ch8.AttachROM(cartload); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var lmtr *limiter.FpsLimiter
	if !uncapped {
		lmtr, err = limiter.NewFPSLimiter(hardware.FramesPerSecond)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	// setup trigger that expires when duration has elapsed
	timesUp := make(chan bool)
	time.AfterFunc(dur, func() {
		timesUp <- true
	})

	numFrames := 0

	err = cpuProfile(profile, "cpu.profile", func() error {
		return ch8.Run(func() (bool, error) {
			numFrames++
			if lmtr != nil {
				lmtr.Wait()
			}
			select {
			case <-timesUp:
				return false, nil
			default:
				return true, nil
			}
		})
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return memProfile(profile, "mem.profile")
}
