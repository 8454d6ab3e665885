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

package registers_test

import (
	"strings"
	"testing"

	"github.com/gopherchip8/gopherchip8/curated"
	"github.com/gopherchip8/gopherchip8/hardware/cpu/registers"
	"github.com/gopherchip8/gopherchip8/test"
)

func TestReset(t *testing.T) {
	r := registers.NewRegisters(0x200)
	test.ExpectEquality(t, r.PC, uint16(0x200))
	test.ExpectEquality(t, r.SP, 0)

	r.V[3] = 10
	r.I = 0x300
	test.ExpectSuccess(t, r.Push(0x200, 0x202))

	r.Reset(0x200)
	test.ExpectEquality(t, r.V[3], uint8(0))
	test.ExpectEquality(t, r.I, uint16(0))
	test.ExpectEquality(t, r.SP, 0)
}

func TestStack(t *testing.T) {
	r := registers.NewRegisters(0x200)

	for i := 0; i < registers.StackDepth; i++ {
		test.ExpectSuccess(t, r.Push(0x300, uint16(0x200+i*2)))
	}

	// seventeenth push fails and leaves the stack unchanged
	err := r.Push(0x300, 0x400)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, registers.StackOverflow), true)
	test.ExpectEquality(t, r.SP, registers.StackDepth)

	for i := registers.StackDepth - 1; i >= 0; i-- {
		a, err := r.Pop(0x300)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, a, uint16(0x200+i*2))
	}

	_, err = r.Pop(0x300)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, registers.StackUnderflow), true)
	test.ExpectEquality(t, r.SP, 0)
}

func TestErrorReportsAddress(t *testing.T) {
	r := registers.NewRegisters(0x200)
	r.PC = 0x2a6
	_, err := r.Pop(0x2a4)
	test.ExpectEquality(t, err.Error(), "registers: stack underflow at 2a4")

	for i := 0; i < registers.StackDepth; i++ {
		test.ExpectSuccess(t, r.Push(0x300, 0x302))
	}
	err = r.Push(0x3fe, 0x400)
	test.ExpectEquality(t, err.Error(), "registers: stack overflow at 3fe")
}

func TestString(t *testing.T) {
	r := registers.NewRegisters(0x200)
	r.V[registers.VF] = 1
	s := r.String()
	test.ExpectEquality(t, strings.HasPrefix(s, "PC=200 I=000 SP=0"), true)
	test.ExpectEquality(t, strings.HasSuffix(s, "VF=01"), true)
	test.ExpectEquality(t, registers.Label(10), "VA")
}
