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

package cpu_test

import (
	"path/filepath"
	"testing"

	"github.com/gopherchip8/gopherchip8/hardware/cpu"
	"github.com/gopherchip8/gopherchip8/hardware/display"
	"github.com/gopherchip8/gopherchip8/hardware/instance"
	"github.com/gopherchip8/gopherchip8/hardware/keypad"
	"github.com/gopherchip8/gopherchip8/hardware/preferences"
	"github.com/gopherchip8/gopherchip8/hardware/timers"
)

// mockMem is a simple implementation of the cpu.Memory interface. unlike the
// real memory there is no protection of the font region.
type mockMem struct {
	internal [0x1000]uint8
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address&0x0fff]
}

func (mem *mockMem) ReadWord(address uint16) uint16 {
	return uint16(mem.Read(address))<<8 | uint16(mem.Read(address+1))
}

func (mem *mockMem) Write(address uint16, data uint8) bool {
	mem.internal[address&0x0fff] = data
	return true
}

// putInstructions places a sequence of opcodes into memory starting at
// origin. returns the address after the last opcode.
func (mem *mockMem) putInstructions(origin uint16, opcodes ...uint16) uint16 {
	for _, op := range opcodes {
		mem.Write(origin, uint8(op>>8))
		mem.Write(origin+1, uint8(op))
		origin += 2
	}
	return origin
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if d := mem.Read(address); d != value {
		t.Errorf("memory assertion failed (%02x - wanted %02x at address %03x)", d, value, address)
	}
}

type machine struct {
	ins *instance.Instance
	mc  *cpu.CPU
	mem *mockMem
	dsp *display.Display
	kpd *keypad.Keypad
	tmr *timers.Timers
}

// newMachine creates a CPU with a normalised instance and the program loaded
// at the program origin.
func newMachine(t *testing.T, program ...uint16) *machine {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	if err != nil {
		t.Fatal(err)
	}

	m := &machine{
		mem: &mockMem{},
		dsp: display.NewDisplay(),
		kpd: keypad.NewKeypad(),
		tmr: timers.NewTimers(),
	}

	m.ins, err = instance.NewInstance(nil, prefs)
	if err != nil {
		t.Fatal(err)
	}
	m.ins.Normalise()

	m.mc = cpu.NewCPU(m.ins, m.mem, m.dsp, m.kpd, m.tmr)
	m.mem.putInstructions(0x200, program...)

	return m
}

// step executes n instructions and fails the test on error.
func (m *machine) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := m.mc.ExecuteInstruction(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}
