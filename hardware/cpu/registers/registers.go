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

package registers

import (
	"fmt"
	"strings"

	"github.com/gopherchip8/gopherchip8/curated"
)

// Sentinal error patterns.
const (
	StackOverflow  = "registers: stack overflow at %03x"
	StackUnderflow = "registers: stack underflow at %03x"
)

// StackDepth is the number of return addresses the stack can hold.
const StackDepth = 16

// VF is the index of the flag register.
const VF = 0x0f

// Registers is the register file of the CHIP-8.
type Registers struct {
	V  [16]uint8
	I  uint16
	PC uint16

	Stack [StackDepth]uint16

	// the number of entries on the stack. the next push writes to Stack[SP]
	SP int
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. The PC is set to the value of the origin argument.
func NewRegisters(origin uint16) *Registers {
	r := &Registers{}
	r.Reset(origin)
	return r
}

// Reset all registers to zero, empty the stack and load the origin address
// into the PC.
func (r *Registers) Reset(origin uint16) {
	*r = Registers{PC: origin}
}

// Push a return address onto the stack. Fails with StackOverflow if the stack
// is full. The stack is unchanged on failure.
//
// The from argument is the address of the instruction performing the push and
// is used in the error message.
func (r *Registers) Push(from uint16, address uint16) error {
	if r.SP >= StackDepth {
		return curated.Errorf(StackOverflow, from)
	}
	r.Stack[r.SP] = address
	r.SP++
	return nil
}

// Pop a return address from the stack. Fails with StackUnderflow if the stack
// is empty. The from argument is as for Push().
func (r *Registers) Pop(from uint16) (uint16, error) {
	if r.SP <= 0 {
		return 0, curated.Errorf(StackUnderflow, from)
	}
	r.SP--
	return r.Stack[r.SP], nil
}

// Label returns the name of the general purpose register.
func Label(reg int) string {
	return fmt.Sprintf("V%X", reg&0x0f)
}

func (r *Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%03x I=%03x SP=%d", r.PC, r.I, r.SP))
	for i, v := range r.V {
		s.WriteString(fmt.Sprintf(" %s=%02x", Label(i), v))
	}
	return s.String()
}
