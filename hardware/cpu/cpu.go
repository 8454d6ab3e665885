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

package cpu

import (
	"fmt"

	"github.com/gopherchip8/gopherchip8/hardware/cpu/instructions"
	"github.com/gopherchip8/gopherchip8/hardware/cpu/registers"
	"github.com/gopherchip8/gopherchip8/hardware/instance"
	"github.com/gopherchip8/gopherchip8/hardware/memory"
	"github.com/gopherchip8/gopherchip8/hardware/timers"
)

// Sentinal error patterns.
const (
	UnknownOpcode  = "cpu: unknown opcode (%04x) at %03x"
	OutOfRangeJump = "cpu: jump target (%03x) out of range at %03x"
)

// Memory defines the memory operations required by the CPU.
type Memory interface {
	Read(address uint16) uint8
	ReadWord(address uint16) uint16
	Write(address uint16, data uint8) bool
}

// Display defines the display operations required by the CPU.
type Display interface {
	Clear()
	Draw(x, y uint8, rows []uint8, clip bool) bool
}

// Keypad defines the keypad operations required by the CPU.
type Keypad interface {
	IsPressed(key uint8) bool
	BeginWait()
	Waiting() bool
	PollWait() (uint8, bool)
}

// CPU implements the CHIP-8 interpreter.
type CPU struct {
	instance *instance.Instance

	registers.Registers

	mem Memory
	dsp Display
	kpd Keypad
	tmr *timers.Timers

	// the result of the most recent call to ExecuteInstruction()
	LastResult Result

	// the number of instructions completed since the last reset
	cycles uint64

	// the fatal error that stopped the CPU. nil if the CPU is not stopped
	halt error

	// buffer for sprite data read during the draw instruction
	sprite [15]uint8
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// is reset before it is returned.
func NewCPU(instance *instance.Instance, mem Memory, dsp Display, kpd Keypad, tmr *timers.Timers) *CPU {
	mc := &CPU{
		instance: instance,
		mem:      mem,
		dsp:      dsp,
		kpd:      kpd,
		tmr:      tmr,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return mc.Registers.String()
}

// Reset the registers and load the program counter with the program origin.
func (mc *CPU) Reset() {
	mc.Registers.Reset(memory.ProgramOrigin)
	mc.LastResult = Result{}
	mc.cycles = 0
	mc.halt = nil
}

// Cycles returns the number of instructions completed since the last reset.
// A key-wait instruction is counted once, when it completes.
//
// Implements the random.Clock interface.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// Halted returns the error that stopped the CPU. Returns nil if the CPU has
// not been stopped.
func (mc *CPU) Halted() error {
	return mc.halt
}

// Status is returned by ExecuteInstruction().
type Status int

// List of valid Status values.
const (
	// the instruction has completed
	Executed Status = iota

	// the instruction is a key-wait and no key has been pressed. the program
	// counter has not advanced
	Waiting
)

func (s Status) String() string {
	switch s {
	case Executed:
		return "executed"
	case Waiting:
		return "waiting"
	}
	return "unknown status"
}

// Result contains information about the most recently executed instruction.
type Result struct {
	// the address the instruction was fetched from
	Address uint16

	Instruction instructions.Instruction
	Status      Status
}

func (r Result) String() string {
	s := fmt.Sprintf("%03x %04x %s", r.Address, r.Instruction.Opcode, r.Instruction)
	if r.Status == Waiting {
		s = fmt.Sprintf("%s (%s)", s, r.Status)
	}
	return s
}
