// This file is part of GopherChip8.
//
// GopherChip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip8.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"fmt"

	"github.com/gopherchip8/gopherchip8/curated"
	"github.com/gopherchip8/gopherchip8/hardware/cpu"
	"github.com/gopherchip8/gopherchip8/hardware/display"
	"github.com/gopherchip8/gopherchip8/hardware/instance"
	"github.com/gopherchip8/gopherchip8/hardware/keypad"
	"github.com/gopherchip8/gopherchip8/hardware/memory"
	"github.com/gopherchip8/gopherchip8/hardware/preferences"
	"github.com/gopherchip8/gopherchip8/hardware/timers"
	"github.com/gopherchip8/gopherchip8/logger"
	"github.com/gopherchip8/gopherchip8/romloader"
)

// Machine is the main container for the emulated components of the CHIP-8.
type Machine struct {
	Instance *instance.Instance

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Keypad  *keypad.Keypad
	Timers  *timers.Timers

	// the attached program. used to reload memory on reset
	rom romloader.Loader

	// the number of frames since the last reset
	frame int

	// whether the sound timer was active during the most recent frame
	sound bool
}

// NewMachine creates a new Machine and everything associated with the
// hardware. It is used for all aspects of emulation: playing, performance
// measurement and testing.
//
// The prefs argument can be nil, in which case the preferences are loaded
// from disk.
func NewMachine(label instance.Label, prefs *preferences.Preferences) (*Machine, error) {
	m := &Machine{}

	var err error

	m.Instance, err = instance.NewInstance(m, prefs)
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}
	m.Instance.Label = label

	m.Mem = memory.NewMemory(m.Instance)
	m.Display = display.NewDisplay()
	m.Keypad = keypad.NewKeypad()
	m.Timers = timers.NewTimers()
	m.CPU = cpu.NewCPU(m.Instance, m.Mem, m.Display, m.Keypad, m.Timers)

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("frame=%d %s %s", m.frame, m.CPU, m.Timers)
}

// Cycles returns the number of instructions executed since the last reset.
//
// Implements the random.Clock interface.
func (m *Machine) Cycles() uint64 {
	if m.CPU == nil {
		return 0
	}
	return m.CPU.Cycles()
}

// Frame returns the number of frames since the last reset.
func (m *Machine) Frame() int {
	return m.frame
}

// Sound returns true if the sound timer was active during the most recent
// frame. The sound timer is sampled before it is ticked so a timer value of
// N results in N frames of sound.
func (m *Machine) Sound() bool {
	return m.sound
}

// ROM returns the loader of the attached program.
func (m *Machine) ROM() romloader.Loader {
	return m.rom
}

// AttachROM loads the program into memory and resets the machine. The loader
// will be loaded if it hasn't been already.
//
// If the program is too large for memory then memory.LoadError is returned
// and the previously attached program remains attached.
func (m *Machine) AttachROM(ld romloader.Loader) error {
	if err := ld.Load(); err != nil {
		return err
	}

	// check the size before changing anything
	if len(ld.Data) > memory.MaxROMSize {
		return curated.Errorf(memory.LoadError, len(ld.Data), memory.MaxROMSize)
	}

	m.rom = ld

	logger.Logf(m.Instance, "hardware", "attached %s (%d bytes, sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return m.Reset()
}

// Reset the machine to its power-on state and reload the attached program.
func (m *Machine) Reset() error {
	m.Mem.Reset()
	if m.rom.HasLoaded() {
		if err := m.Mem.LoadROM(m.rom.Data); err != nil {
			return err
		}
	}

	m.CPU.Reset()
	m.Display.Clear()
	m.Keypad.Reset()
	m.Timers.Reset()
	m.frame = 0
	m.sound = false

	if m.Instance.UpdateQuirks() {
		logger.Logf(m.Instance, "hardware", "quirks: %s", m.Instance.Quirks)
	}

	logger.Log(m.Instance, "hardware", "reset")

	return nil
}
