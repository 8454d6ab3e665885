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

package instructions

import (
	"fmt"
)

// Instruction is a decoded opcode.
type Instruction struct {
	Operator Operator

	// the raw opcode
	Opcode uint16

	// the operand fields of the opcode. not every field is meaningful for
	// every operator
	X   uint8  // second nibble
	Y   uint8  // third nibble
	N   uint8  // fourth nibble
	KK  uint8  // low byte
	NNN uint16 // low twelve bits
}

// Decode the opcode. The result is determined entirely by the value of the
// opcode.
func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Operator: Unknown,
		Opcode:   opcode,
		X:        uint8(opcode>>8) & 0x0f,
		Y:        uint8(opcode>>4) & 0x0f,
		N:        uint8(opcode) & 0x0f,
		KK:       uint8(opcode),
		NNN:      opcode & 0x0fff,
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			ins.Operator = ClearScreen
		case 0x00ee:
			ins.Operator = Return
		default:
			ins.Operator = Sys
		}
	case 0x1:
		ins.Operator = Jump
	case 0x2:
		ins.Operator = Call
	case 0x3:
		ins.Operator = SkipEqualByte
	case 0x4:
		ins.Operator = SkipNotEqualByte
	case 0x5:
		if ins.N == 0x0 {
			ins.Operator = SkipEqualReg
		}
	case 0x6:
		ins.Operator = LoadByte
	case 0x7:
		ins.Operator = AddByte
	case 0x8:
		switch ins.N {
		case 0x0:
			ins.Operator = LoadReg
		case 0x1:
			ins.Operator = Or
		case 0x2:
			ins.Operator = And
		case 0x3:
			ins.Operator = Xor
		case 0x4:
			ins.Operator = AddReg
		case 0x5:
			ins.Operator = Sub
		case 0x6:
			ins.Operator = ShiftRight
		case 0x7:
			ins.Operator = SubN
		case 0xe:
			ins.Operator = ShiftLeft
		}
	case 0x9:
		if ins.N == 0x0 {
			ins.Operator = SkipNotEqualReg
		}
	case 0xa:
		ins.Operator = LoadIndex
	case 0xb:
		ins.Operator = JumpOffset
	case 0xc:
		ins.Operator = Random
	case 0xd:
		ins.Operator = Draw
	case 0xe:
		switch ins.KK {
		case 0x9e:
			ins.Operator = SkipKeyPressed
		case 0xa1:
			ins.Operator = SkipKeyNotPressed
		}
	case 0xf:
		switch ins.KK {
		case 0x07:
			ins.Operator = LoadDelay
		case 0x0a:
			ins.Operator = WaitKey
		case 0x15:
			ins.Operator = SetDelay
		case 0x18:
			ins.Operator = SetSound
		case 0x1e:
			ins.Operator = AddIndex
		case 0x29:
			ins.Operator = LoadGlyph
		case 0x33:
			ins.Operator = StoreBCD
		case 0x55:
			ins.Operator = StoreRegs
		case 0x65:
			ins.Operator = LoadRegs
		}
	}

	return ins
}

// Definition returns the definition of the instruction's operator.
func (ins Instruction) Definition() Definition {
	return GetDefinition(ins.Operator)
}

// String returns the instruction in the conventional assembly language
// format.
func (ins Instruction) String() string {
	defn := ins.Definition()

	switch defn.operand {
	case addr:
		return fmt.Sprintf("%s %03X", defn.Mnemonic, ins.NNN)
	case regByte:
		return fmt.Sprintf("%s V%X, %02X", defn.Mnemonic, ins.X, ins.KK)
	case regReg:
		return fmt.Sprintf("%s V%X, V%X", defn.Mnemonic, ins.X, ins.Y)
	case regRegNib:
		return fmt.Sprintf("%s V%X, V%X, %X", defn.Mnemonic, ins.X, ins.Y, ins.N)
	case reg:
		return fmt.Sprintf("%s V%X", defn.Mnemonic, ins.X)
	case index:
		return fmt.Sprintf("%s I, %03X", defn.Mnemonic, ins.NNN)
	case regOffset:
		return fmt.Sprintf("%s V0, %03X", defn.Mnemonic, ins.NNN)
	case custom:
		return fmt.Sprintf(defn.Mnemonic, fmt.Sprintf("V%X", ins.X))
	}

	if ins.Operator == Unknown {
		return fmt.Sprintf("?? %04X", ins.Opcode)
	}

	return defn.Mnemonic
}
