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
	"github.com/gopherchip8/gopherchip8/curated"
	"github.com/gopherchip8/gopherchip8/hardware/cpu/instructions"
	"github.com/gopherchip8/gopherchip8/hardware/cpu/registers"
	"github.com/gopherchip8/gopherchip8/hardware/memory"
	"github.com/gopherchip8/gopherchip8/logger"
)

// the highest address a jump can target
const maxJumpTarget = memory.Size - 1

// ExecuteInstruction fetches, decodes and executes the instruction at the
// program counter.
//
// An error is fatal. Once an error has been returned the same error will be
// returned by every subsequent call until the CPU is reset.
func (mc *CPU) ExecuteInstruction() (Status, error) {
	if mc.halt != nil {
		return Executed, mc.halt
	}

	address := mc.PC
	opcode := mc.mem.ReadWord(address)
	mc.PC += 2

	ins := instructions.Decode(opcode)

	mc.LastResult = Result{
		Address:     address,
		Instruction: ins,
	}

	status, err := mc.execute(address, ins)
	if err != nil {
		mc.halt = err
		return Executed, err
	}

	mc.LastResult.Status = status
	if status == Executed {
		mc.cycles++
	}

	return status, nil
}

// checks the target of a jump or call instruction
func (mc *CPU) validJump(address uint16, target uint16) error {
	if target > maxJumpTarget || target&0x01 == 0x01 {
		return curated.Errorf(OutOfRangeJump, target, address)
	}
	return nil
}

func (mc *CPU) skip(cond bool) {
	if cond {
		mc.PC += 2
	}
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// execute the decoded instruction. the PC has already been advanced past the
// instruction.
func (mc *CPU) execute(address uint16, ins instructions.Instruction) (Status, error) {
	x := ins.X
	y := ins.Y
	quirks := &mc.instance.Quirks

	switch ins.Operator {
	case instructions.Unknown:
		return Executed, curated.Errorf(UnknownOpcode, ins.Opcode, address)

	case instructions.Sys:
		logger.Logf(mc.instance, "cpu", "%s at %03x ignored", ins, address)

	case instructions.ClearScreen:
		mc.dsp.Clear()

	case instructions.Return:
		ret, err := mc.Pop(address)
		if err != nil {
			return Executed, err
		}
		mc.PC = ret

	case instructions.Jump:
		if err := mc.validJump(address, ins.NNN); err != nil {
			return Executed, err
		}
		mc.PC = ins.NNN

	case instructions.Call:
		if err := mc.validJump(address, ins.NNN); err != nil {
			return Executed, err
		}
		if err := mc.Push(address, mc.PC); err != nil {
			return Executed, err
		}
		mc.PC = ins.NNN

	case instructions.SkipEqualByte:
		mc.skip(mc.V[x] == ins.KK)

	case instructions.SkipNotEqualByte:
		mc.skip(mc.V[x] != ins.KK)

	case instructions.SkipEqualReg:
		mc.skip(mc.V[x] == mc.V[y])

	case instructions.LoadByte:
		mc.V[x] = ins.KK

	case instructions.AddByte:
		// VF is not affected
		mc.V[x] += ins.KK

	case instructions.LoadReg:
		mc.V[x] = mc.V[y]

	case instructions.Or:
		mc.V[x] |= mc.V[y]
		if quirks.LogicResetsVF {
			mc.V[registers.VF] = 0
		}

	case instructions.And:
		mc.V[x] &= mc.V[y]
		if quirks.LogicResetsVF {
			mc.V[registers.VF] = 0
		}

	case instructions.Xor:
		mc.V[x] ^= mc.V[y]
		if quirks.LogicResetsVF {
			mc.V[registers.VF] = 0
		}

	case instructions.AddReg:
		vx, vy := mc.V[x], mc.V[y]
		sum := uint16(vx) + uint16(vy)
		mc.V[x] = uint8(sum)
		mc.V[registers.VF] = boolToFlag(sum > 0xff)

	case instructions.Sub:
		vx, vy := mc.V[x], mc.V[y]
		mc.V[x] = vx - vy
		mc.V[registers.VF] = boolToFlag(vx >= vy)

	case instructions.SubN:
		vx, vy := mc.V[x], mc.V[y]
		mc.V[x] = vy - vx
		mc.V[registers.VF] = boolToFlag(vy >= vx)

	case instructions.ShiftRight:
		src := mc.V[y]
		if quirks.ShiftVXOnly {
			src = mc.V[x]
		}
		mc.V[x] = src >> 1
		mc.V[registers.VF] = src & 0x01

	case instructions.ShiftLeft:
		src := mc.V[y]
		if quirks.ShiftVXOnly {
			src = mc.V[x]
		}
		mc.V[x] = src << 1
		mc.V[registers.VF] = src >> 7

	case instructions.SkipNotEqualReg:
		mc.skip(mc.V[x] != mc.V[y])

	case instructions.LoadIndex:
		mc.I = ins.NNN

	case instructions.JumpOffset:
		var offset uint8
		if quirks.JumpVX {
			offset = mc.V[x]
		} else {
			offset = mc.V[0]
		}
		target := ins.NNN + uint16(offset)
		if err := mc.validJump(address, target); err != nil {
			return Executed, err
		}
		mc.PC = target

	case instructions.Random:
		mc.V[x] = mc.instance.Random.Byte() & ins.KK

	case instructions.Draw:
		rows := mc.sprite[:ins.N]
		for i := range rows {
			rows[i] = mc.mem.Read(mc.I + uint16(i))
		}
		collision := mc.dsp.Draw(mc.V[x], mc.V[y], rows, quirks.ClipSprites)
		mc.V[registers.VF] = boolToFlag(collision)

	case instructions.SkipKeyPressed:
		mc.skip(mc.kpd.IsPressed(mc.V[x] & 0x0f))

	case instructions.SkipKeyNotPressed:
		mc.skip(!mc.kpd.IsPressed(mc.V[x] & 0x0f))

	case instructions.LoadDelay:
		mc.V[x] = mc.tmr.Delay

	case instructions.WaitKey:
		if !mc.kpd.Waiting() {
			mc.kpd.BeginWait()
		}
		key, ok := mc.kpd.PollWait()
		if !ok {
			// park the PC on the key-wait instruction
			mc.PC = address
			return Waiting, nil
		}
		mc.V[x] = key

	case instructions.SetDelay:
		mc.tmr.Delay = mc.V[x]

	case instructions.SetSound:
		mc.tmr.Sound = mc.V[x]

	case instructions.AddIndex:
		mc.I += uint16(mc.V[x])

	case instructions.LoadGlyph:
		mc.I = memory.GlyphAddress(mc.V[x])

	case instructions.StoreBCD:
		v := mc.V[x]
		mc.mem.Write(mc.I, v/100)
		mc.mem.Write(mc.I+1, (v/10)%10)
		mc.mem.Write(mc.I+2, v%10)

	case instructions.StoreRegs:
		for i := uint16(0); i <= uint16(x); i++ {
			mc.mem.Write(mc.I+i, mc.V[i])
		}
		if quirks.LoadStoreIncI {
			mc.I += uint16(x) + 1
		}

	case instructions.LoadRegs:
		for i := uint16(0); i <= uint16(x); i++ {
			mc.V[i] = mc.mem.Read(mc.I + i)
		}
		if quirks.LoadStoreIncI {
			mc.I += uint16(x) + 1
		}

	default:
		return Executed, curated.Errorf(UnknownOpcode, ins.Opcode, address)
	}

	return Executed, nil
}
