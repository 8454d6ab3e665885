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
	"github.com/gopherchip8/gopherchip8/hardware/cpu"
	"github.com/gopherchip8/gopherchip8/logger"
)

// Step the emulation by one instruction. The timers are not ticked.
func (m *Machine) Step() (cpu.Status, error) {
	return m.CPU.ExecuteInstruction()
}

// RunFrame executes the number of instructions given by the speed preference
// and then ticks the timers once. If the CPU is waiting for a key press then
// no more instructions are executed for the remainder of the frame but the
// timers are still ticked.
func (m *Machine) RunFrame() (cpu.Status, error) {
	if m.Instance.UpdateQuirks() {
		logger.Logf(m.Instance, "hardware", "quirks: %s", m.Instance.Quirks)
	}

	speed := m.Instance.Prefs.Speed.Get().(int)

	status := cpu.Executed
	for i := 0; i < speed; i++ {
		var err error
		status, err = m.CPU.ExecuteInstruction()
		if err != nil {
			return status, err
		}
		if status == cpu.Waiting {
			break // for loop
		}
	}

	m.sound = m.Timers.SoundActive()
	m.Timers.Tick()
	m.frame++

	return status, nil
}
