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
	"testing"

	"github.com/gopherchip8/gopherchip8/curated"
	"github.com/gopherchip8/gopherchip8/hardware/cpu"
	"github.com/gopherchip8/gopherchip8/hardware/cpu/instructions"
	"github.com/gopherchip8/gopherchip8/hardware/cpu/registers"
	"github.com/gopherchip8/gopherchip8/hardware/display"
	"github.com/gopherchip8/gopherchip8/test"
)

func TestReset(t *testing.T) {
	m := newMachine(t, 0x6005)
	test.ExpectEquality(t, m.mc.PC, uint16(0x200))
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.Cycles(), uint64(1))

	m.mc.Reset()
	test.ExpectEquality(t, m.mc.PC, uint16(0x200))
	test.ExpectEquality(t, m.mc.V[0], uint8(0))
	test.ExpectEquality(t, m.mc.Cycles(), uint64(0))
}

func TestLoadAdd(t *testing.T) {
	m := newMachine(t, 0x6005, 0x7003)
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.V[0], uint8(8))
	test.ExpectEquality(t, m.mc.V[registers.VF], uint8(0))
	test.ExpectEquality(t, m.mc.PC, uint16(0x204))

	// ADD Vx, byte never changes VF
	m = newMachine(t, 0x60ff, 0x7002)
	m.mc.V[registers.VF] = 0x55
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x01))
	test.ExpectEquality(t, m.mc.V[registers.VF], uint8(0x55))
}

func TestClearAndLoop(t *testing.T) {
	m := newMachine(t, 0x00e0, 0x1200)
	m.dsp.Draw(0, 0, []uint8{0xff}, false)

	for i := 0; i < 1000; i++ {
		status, err := m.mc.ExecuteInstruction()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, status, cpu.Executed)
	}

	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if m.dsp.Pixel(x, y) {
				t.Fatalf("pixel %d,%d is set after CLS", x, y)
			}
		}
	}
	test.ExpectEquality(t, m.mc.Cycles(), uint64(1000))
}

func TestDrawFromIndex(t *testing.T) {
	m := newMachine(t, 0xa300, 0xd005)
	for i := uint16(0); i < 5; i++ {
		m.mem.Write(0x300+i, 0xf0)
	}

	m.step(t, 2)
	test.ExpectEquality(t, m.mc.I, uint16(0x300))
	test.ExpectEquality(t, m.mc.V[registers.VF], uint8(0))
	test.ExpectEquality(t, m.dsp.Pixel(0, 0), true)
	test.ExpectEquality(t, m.dsp.Pixel(3, 4), true)
	test.ExpectEquality(t, m.dsp.Pixel(4, 4), false)
	test.ExpectEquality(t, m.dsp.Pixel(0, 5), false)

	// the second draw collides and erases
	m = newMachine(t, 0xa300, 0xd005, 0xd005)
	m.mem.Write(0x300, 0x80)
	m.step(t, 3)
	test.ExpectEquality(t, m.mc.V[registers.VF], uint8(1))
	test.ExpectEquality(t, m.dsp.Pixel(0, 0), false)
}

func TestDrawClipQuirk(t *testing.T) {
	m := newMachine(t, 0x603f, 0xa300, 0xd011)
	m.mem.Write(0x300, 0xc0)
	test.ExpectSuccess(t, m.ins.Prefs.Quirks.ClipSprites.Set(true))
	m.ins.UpdateQuirks()

	m.step(t, 3)
	test.ExpectEquality(t, m.dsp.Pixel(63, 0), true)
	test.ExpectEquality(t, m.dsp.Pixel(0, 0), false)
}

func TestCallReturn(t *testing.T) {
	m := newMachine(t, 0x2300)
	m.mem.putInstructions(0x300, 0x6042, 0x00ee)

	m.step(t, 1)
	test.ExpectEquality(t, m.mc.PC, uint16(0x300))
	test.ExpectEquality(t, m.mc.SP, 1)
	test.ExpectEquality(t, m.mc.Stack[0], uint16(0x202))

	m.step(t, 2)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x42))
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))
	test.ExpectEquality(t, m.mc.SP, 0)
}

func TestStackOverflow(t *testing.T) {
	// subroutine that calls itself forever
	m := newMachine(t, 0x2200)

	m.step(t, 16)
	_, err := m.mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, registers.StackOverflow), true)
	test.ExpectEquality(t, err.Error(), "registers: stack overflow at 200")

	// the cpu is halted
	test.ExpectEquality(t, curated.Is(m.mc.Halted(), registers.StackOverflow), true)
	_, err = m.mc.ExecuteInstruction()
	test.ExpectEquality(t, curated.Is(err, registers.StackOverflow), true)

	m.mc.Reset()
	test.ExpectSuccess(t, m.mc.Halted())
}

func TestStackUnderflow(t *testing.T) {
	m := newMachine(t, 0x00ee)
	_, err := m.mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, registers.StackUnderflow), true)
	test.ExpectEquality(t, err.Error(), "registers: stack underflow at 200")

	// a return in the middle of a program reports its own address
	m = newMachine(t, 0x6001, 0x00ee)
	m.step(t, 1)
	_, err = m.mc.ExecuteInstruction()
	test.ExpectEquality(t, err.Error(), "registers: stack underflow at 202")
}

func TestUnknownOpcode(t *testing.T) {
	m := newMachine(t, 0x6001, 0xffff)
	m.step(t, 1)
	_, err := m.mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cpu.UnknownOpcode), true)
	test.ExpectEquality(t, err.Error(), "cpu: unknown opcode (ffff) at 202")
}

func TestSys(t *testing.T) {
	m := newMachine(t, 0x0123, 0x6001)
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.V[0], uint8(1))
	test.ExpectEquality(t, m.mc.LastResult.Address, uint16(0x202))
}

func TestJumpValidation(t *testing.T) {
	m := newMachine(t, 0x1301)
	_, err := m.mc.ExecuteInstruction()
	test.ExpectEquality(t, curated.Is(err, cpu.OutOfRangeJump), true)
	test.ExpectEquality(t, err.Error(), "cpu: jump target (301) out of range at 200")

	m = newMachine(t, 0x2201)
	_, err = m.mc.ExecuteInstruction()
	test.ExpectEquality(t, curated.Is(err, cpu.OutOfRangeJump), true)
	test.ExpectEquality(t, m.mc.SP, 0)

	// Bnnn past the end of memory
	m = newMachine(t, 0x6002, 0xbffe)
	m.step(t, 1)
	_, err = m.mc.ExecuteInstruction()
	test.ExpectEquality(t, curated.Is(err, cpu.OutOfRangeJump), true)
}

func TestJumpOffset(t *testing.T) {
	m := newMachine(t, 0x6004, 0x6110, 0xb300)
	m.step(t, 3)
	test.ExpectEquality(t, m.mc.PC, uint16(0x304))

	// with the quirk the register is taken from the high nibble of nnn
	m = newMachine(t, 0x6004, 0x6310, 0xb300)
	test.ExpectSuccess(t, m.ins.Prefs.Quirks.JumpVX.Set(true))
	m.ins.UpdateQuirks()
	m.step(t, 3)
	test.ExpectEquality(t, m.mc.PC, uint16(0x310))

	// the index register is not changed
	test.ExpectEquality(t, m.mc.I, uint16(0))
}

func TestSkips(t *testing.T) {
	cases := []struct {
		name    string
		program []uint16
		pc      uint16
	}{
		{"SE byte taken", []uint16{0x6005, 0x3005}, 0x206},
		{"SE byte not taken", []uint16{0x6005, 0x3006}, 0x204},
		{"SNE byte taken", []uint16{0x6005, 0x4006}, 0x206},
		{"SNE byte not taken", []uint16{0x6005, 0x4005}, 0x204},
		{"SE reg taken", []uint16{0x6005, 0x6105, 0x5010}, 0x208},
		{"SE reg not taken", []uint16{0x6005, 0x6106, 0x5010}, 0x206},
		{"SNE reg taken", []uint16{0x6005, 0x6106, 0x9010}, 0x208},
		{"SNE reg not taken", []uint16{0x6005, 0x6105, 0x9010}, 0x206},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := newMachine(t, c.program...)
			m.step(t, len(c.program))
			test.ExpectEquality(t, m.mc.PC, c.pc)
		})
	}
}

func TestLogic(t *testing.T) {
	m := newMachine(t, 0x600c, 0x610a, 0x8011)
	m.mc.V[registers.VF] = 0x07
	m.step(t, 3)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x0e))
	test.ExpectEquality(t, m.mc.V[registers.VF], uint8(0x07))

	m = newMachine(t, 0x600c, 0x610a, 0x8012)
	m.step(t, 3)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x08))

	m = newMachine(t, 0x600c, 0x610a, 0x8013)
	m.step(t, 3)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x06))

	// with the quirk VF is cleared
	m = newMachine(t, 0x600c, 0x610a, 0x8011)
	test.ExpectSuccess(t, m.ins.Prefs.Quirks.LogicResetsVF.Set(true))
	m.ins.UpdateQuirks()
	m.mc.V[registers.VF] = 0x07
	m.step(t, 3)
	test.ExpectEquality(t, m.mc.V[registers.VF], uint8(0x00))
}

func TestArithmeticFlags(t *testing.T) {
	cases := []struct {
		name   string
		vx, vy uint8
		opcode uint16
		result uint8
		flag   uint8
	}{
		{"ADD no carry", 0x10, 0x20, 0x8014, 0x30, 0},
		{"ADD carry", 0xff, 0x02, 0x8014, 0x01, 1},
		{"SUB no borrow", 0x20, 0x10, 0x8015, 0x10, 1},
		{"SUB equal", 0x20, 0x20, 0x8015, 0x00, 1},
		{"SUB borrow", 0x10, 0x20, 0x8015, 0xf0, 0},
		{"SUBN no borrow", 0x10, 0x20, 0x8017, 0x10, 1},
		{"SUBN borrow", 0x20, 0x10, 0x8017, 0xf0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := newMachine(t, c.opcode)
			m.mc.V[0] = c.vx
			m.mc.V[1] = c.vy
			m.step(t, 1)
			test.ExpectEquality(t, m.mc.V[0], c.result)
			test.ExpectEquality(t, m.mc.V[registers.VF], c.flag)
		})
	}
}

func TestFlagRegisterAsOperand(t *testing.T) {
	// the flag is written after the result so VF holds the flag
	m := newMachine(t, 0x8f04)
	m.mc.V[0xf] = 0xff
	m.mc.V[0x0] = 0x01
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.V[registers.VF], uint8(1))
}

func TestShift(t *testing.T) {
	// default quirk operates on VX only
	m := newMachine(t, 0x8016)
	m.mc.V[0] = 0x05
	m.mc.V[1] = 0x80
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x02))
	test.ExpectEquality(t, m.mc.V[registers.VF], uint8(1))

	m = newMachine(t, 0x801e)
	m.mc.V[0] = 0x81
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x02))
	test.ExpectEquality(t, m.mc.V[registers.VF], uint8(1))

	// without the quirk VY is shifted into VX
	m = newMachine(t, 0x8016, 0x821e)
	test.ExpectSuccess(t, m.ins.Prefs.Quirks.ShiftVXOnly.Set(false))
	m.ins.UpdateQuirks()
	m.mc.V[0] = 0x05
	m.mc.V[1] = 0x80
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x40))
	test.ExpectEquality(t, m.mc.V[1], uint8(0x80))
	test.ExpectEquality(t, m.mc.V[registers.VF], uint8(0))
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.V[2], uint8(0x00))
	test.ExpectEquality(t, m.mc.V[registers.VF], uint8(1))
}

func TestRandom(t *testing.T) {
	m := newMachine(t, 0xc00f, 0xc100)
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.V[0]&0xf0, uint8(0))
	test.ExpectEquality(t, m.mc.V[1], uint8(0))
}

func TestKeys(t *testing.T) {
	m := newMachine(t, 0x6007, 0xe09e, 0x0000, 0xe0a1)
	m.kpd.SetPressed(0x7, true)
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.PC, uint16(0x206))
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.PC, uint16(0x208))
}

func TestWaitKey(t *testing.T) {
	m := newMachine(t, 0xf30a, 0x6001)

	// held key does not satisfy the wait
	m.kpd.SetPressed(0x2, true)

	for i := 0; i < 10; i++ {
		status, err := m.mc.ExecuteInstruction()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, status, cpu.Waiting)
		test.ExpectEquality(t, m.mc.PC, uint16(0x200))
		m.tmr.Tick()
	}
	test.ExpectEquality(t, m.mc.Cycles(), uint64(0))
	test.ExpectEquality(t, m.mc.LastResult.Status, cpu.Waiting)

	m.kpd.SetPressed(0xb, true)
	status, err := m.mc.ExecuteInstruction()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, cpu.Executed)
	test.ExpectEquality(t, m.mc.V[3], uint8(0xb))
	test.ExpectEquality(t, m.mc.PC, uint16(0x202))

	m.step(t, 1)
	test.ExpectEquality(t, m.mc.V[0], uint8(1))
}

func TestTimers(t *testing.T) {
	m := newMachine(t, 0x6020, 0xf015, 0xf018, 0xf107)
	m.step(t, 3)
	test.ExpectEquality(t, m.tmr.Delay, uint8(0x20))
	test.ExpectEquality(t, m.tmr.Sound, uint8(0x20))
	m.tmr.Tick()
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.V[1], uint8(0x1f))
}

func TestIndex(t *testing.T) {
	m := newMachine(t, 0xa300, 0x6010, 0xf01e)
	m.step(t, 3)
	test.ExpectEquality(t, m.mc.I, uint16(0x310))

	// glyph address uses the value of the register
	m = newMachine(t, 0x650a, 0xf529)
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.I, uint16(0x032))
}

func TestBCD(t *testing.T) {
	m := newMachine(t, 0xa300, 0x60fe, 0xf033)
	m.step(t, 3)
	m.mem.assert(t, 0x300, 2)
	m.mem.assert(t, 0x301, 5)
	m.mem.assert(t, 0x302, 4)
}

func TestStoreLoadRegisters(t *testing.T) {
	m := newMachine(t, 0xa300, 0xf255, 0xa400, 0xf265)
	m.mc.V[0] = 1
	m.mc.V[1] = 2
	m.mc.V[2] = 3
	m.mc.V[3] = 4
	m.mem.putInstructions(0x400, 0x0a0b, 0x0c0d)

	m.step(t, 2)
	m.mem.assert(t, 0x300, 1)
	m.mem.assert(t, 0x302, 3)
	m.mem.assert(t, 0x303, 0)
	test.ExpectEquality(t, m.mc.I, uint16(0x300))

	m.step(t, 2)
	test.ExpectEquality(t, m.mc.V[0], uint8(0x0a))
	test.ExpectEquality(t, m.mc.V[2], uint8(0x0c))
	test.ExpectEquality(t, m.mc.V[3], uint8(4))
	test.ExpectEquality(t, m.mc.I, uint16(0x400))

	// with the quirk I is left after the last register
	m = newMachine(t, 0xa300, 0xf255)
	test.ExpectSuccess(t, m.ins.Prefs.Quirks.LoadStoreIncI.Set(true))
	m.ins.UpdateQuirks()
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.I, uint16(0x303))
}

func TestLastResult(t *testing.T) {
	m := newMachine(t, 0x6005)
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.LastResult.Address, uint16(0x200))
	test.ExpectEquality(t, m.mc.LastResult.Instruction.Operator, instructions.LoadByte)
	test.ExpectEquality(t, m.mc.LastResult.String(), "200 6005 LD V0, 05")
}
