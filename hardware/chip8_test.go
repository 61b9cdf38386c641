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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

// a loader with pre-loaded data. Load() is a no-op for loaders that
// already have data so no file is needed
func dataLoader(data []byte) romloader.Loader {
	return romloader.Loader{Filename: "test.ch8", Data: data}
}

func TestAttachROM(t *testing.T) {
	ch8 := hardware.NewChip8()

	err := ch8.AttachROM(dataLoader([]byte{0x12, 0x00}))
	test.ExpectedSuccess(t, err)

	test.Equate(t, ch8.CPU.PC, cpu.ResetPC)
	test.Equate(t, ch8.Mem.Read8(memory.OriginROM), 0x12)
	test.Equate(t, ch8.Mem.Read8(memory.OriginROM+1), 0x00)

	// the fontset survives the attach
	test.Equate(t, ch8.Mem.Read8(memory.GlyphAddress(0x0)), 0xf0)
}

func TestAttachROMTooLarge(t *testing.T) {
	ch8 := hardware.NewChip8()
	test.ExpectedSuccess(t, ch8.AttachROM(dataLoader([]byte{0x12, 0x00})))

	err := ch8.AttachROM(dataLoader(make([]byte, memory.MaxROMSize+1)))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, hardware.ROMTooLarge))

	// the failed attach has not disturbed the previous program
	test.Equate(t, ch8.Mem.Read8(memory.OriginROM), 0x12)
	test.ExpectedSuccess(t, ch8.Step())
}

func TestExactFitROM(t *testing.T) {
	ch8 := hardware.NewChip8()
	test.ExpectedSuccess(t, ch8.AttachROM(dataLoader(make([]byte, memory.MaxROMSize))))
}

func TestStickyHalt(t *testing.T) {
	ch8 := hardware.NewChip8()

	// an opcode that does not decode halts the machine
	test.ExpectedSuccess(t, ch8.AttachROM(dataLoader([]byte{0x01, 0x23})))

	err := ch8.Step()
	test.ExpectedFailure(t, err)

	// the halt is sticky
	err2 := ch8.Step()
	test.ExpectedFailure(t, err2)
	test.Equate(t, err2.Error(), err.Error())
	test.ExpectedFailure(t, ch8.Halted())

	// a reset clears the halt
	ch8.Reset()
	test.ExpectedSuccess(t, ch8.Halted())
}

func TestTimerCadence(t *testing.T) {
	ch8 := hardware.NewChip8()

	// an infinite loop so that frames can run forever
	test.ExpectedSuccess(t, ch8.AttachROM(dataLoader([]byte{0x12, 0x00})))

	ch8.Timers.Delay = 120

	// one tick per frame, regardless of cycles per frame
	test.ExpectedSuccess(t, ch8.RunForFrame())
	test.Equate(t, ch8.Timers.Delay, 119)

	ch8.CyclesPerFrame = 100
	test.ExpectedSuccess(t, ch8.RunForFrameCount(59))
	test.Equate(t, ch8.Timers.Delay, 60)
}

// records every SetBuzzer value it is given
type recordingMixer struct {
	states []bool
	ended  bool
}

func (m *recordingMixer) SetBuzzer(active bool) error {
	m.states = append(m.states, active)
	return nil
}

func (m *recordingMixer) EndMixing() error {
	m.ended = true
	return nil
}

func TestBuzzer(t *testing.T) {
	ch8 := hardware.NewChip8()
	test.ExpectedSuccess(t, ch8.AttachROM(dataLoader([]byte{0x12, 0x00})))

	mix := &recordingMixer{}
	ch8.AttachAudioMixer(mix)

	// the buzzer sounds while the sound timer is running. the timer ticks
	// before the mixer service so a value of two covers exactly two frames
	ch8.Timers.Sound = 2

	test.ExpectedSuccess(t, ch8.RunForFrameCount(3))
	test.Equate(t, len(mix.states), 3)
	test.Equate(t, mix.states[0], true)
	test.Equate(t, mix.states[1], false)
	test.Equate(t, mix.states[2], false)

	test.ExpectedSuccess(t, ch8.EndMixing())
	test.Equate(t, mix.ended, true)
}

func TestRunContinueCheck(t *testing.T) {
	ch8 := hardware.NewChip8()
	test.ExpectedSuccess(t, ch8.AttachROM(dataLoader([]byte{0x12, 0x00})))

	frames := 0
	err := ch8.Run(func() (bool, error) {
		frames++
		return frames < 10, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, frames, 10)
}

func TestSnapshotPlumb(t *testing.T) {
	ch8 := hardware.NewChip8()

	// V0 counts frames, effectively. 6001 then an add loop would need a
	// jump; keep it simple: increment V0 then spin
	test.ExpectedSuccess(t, ch8.AttachROM(dataLoader([]byte{
		0x70, 0x01, // ADD V0, 0x01
		0x12, 0x00, // JP 0x200
	})))

	test.ExpectedSuccess(t, ch8.RunForFrame())
	state := ch8.Snapshot()
	v0 := ch8.CPU.V[0x0]

	test.ExpectedSuccess(t, ch8.RunForFrameCount(5))
	if ch8.CPU.V[0x0] == v0 {
		t.Fatalf("machine did not advance after snapshot")
	}

	ch8.Plumb(state)
	test.Equate(t, ch8.CPU.V[0x0], int(v0))

	// the plumbed machine runs on from the restored state
	test.ExpectedSuccess(t, ch8.RunForFrame())
}
