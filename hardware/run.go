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

package hardware

// RunForFrame runs one frame's worth of emulation: CyclesPerFrame CPU
// cycles, one timer tick, and a service pass over the display renderers
// and audio mixers. A host calling this function at 60Hz gets an emulation
// synchronised to wall-clock time.
func (ch8 *Chip8) RunForFrame() error {
	for i := 0; i < ch8.CyclesPerFrame; i++ {
		if err := ch8.Step(); err != nil {
			return err
		}
	}

	ch8.TickTimers()

	if err := ch8.Scr.EndFrame(); err != nil {
		return err
	}

	active := ch8.SoundActive()
	for _, m := range ch8.mixers {
		if err := m.SetBuzzer(active); err != nil {
			return err
		}
	}

	return nil
}

// Run the emulation frame by frame as quickly as possible. continueCheck
// is consulted after every frame and should return false when an external
// event (a GUI event for example) indicates that the emulation should
// stop. Hosts that want a 60Hz wall-clock rate should limit the frame rate
// inside continueCheck.
func (ch8 *Chip8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	var err error

	for cont {
		if err = ch8.RunForFrame(); err != nil {
			return err
		}
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the emulation for the specified number of frames.
// Useful for fps measurement and regression tests.
func (ch8 *Chip8) RunForFrameCount(numFrames int) error {
	for i := 0; i < numFrames; i++ {
		if err := ch8.RunForFrame(); err != nil {
			return err
		}
	}
	return nil
}
