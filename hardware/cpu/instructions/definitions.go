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

import "fmt"

// Operator identifies the operation of a decoded instruction.
type Operator int

// List of operators. There is one operator for each opcode in the instruction
// set, plus Unknown.
const (
	Unknown           Operator = iota
	Sys                        // 0nnn
	ClearScreen                // 00E0
	Return                     // 00EE
	Jump                       // 1nnn
	Call                       // 2nnn
	SkipEqualByte              // 3xkk
	SkipNotEqualByte           // 4xkk
	SkipEqualReg               // 5xy0
	LoadByte                   // 6xkk
	AddByte                    // 7xkk
	LoadReg                    // 8xy0
	Or                         // 8xy1
	And                        // 8xy2
	Xor                        // 8xy3
	AddReg                     // 8xy4
	Sub                        // 8xy5
	ShiftRight                 // 8xy6
	SubN                       // 8xy7
	ShiftLeft                  // 8xyE
	SkipNotEqualReg            // 9xy0
	LoadIndex                  // Annn
	JumpOffset                 // Bnnn
	Random                     // Cxkk
	Draw                       // Dxyn
	SkipKeyPressed             // Ex9E
	SkipKeyNotPressed          // ExA1
	LoadDelay                  // Fx07
	WaitKey                    // Fx0A
	SetDelay                   // Fx15
	SetSound                   // Fx18
	AddIndex                   // Fx1E
	LoadGlyph                  // Fx29
	StoreBCD                   // Fx33
	StoreRegs                  // Fx55
	LoadRegs                   // Fx65

	numOperators
)

// operand describes how the operands of an instruction are rendered.
type operand int

const (
	none operand = iota
	addr         // nnn
	regByte      // Vx, kk
	regReg       // Vx, Vy
	regRegNib    // Vx, Vy, n
	reg          // Vx
	index        // I, nnn
	regOffset    // V0, nnn
	custom       // the mnemonic is a format string with Vx as the only value
)

// Definition defines each operator in the instruction set.
type Definition struct {
	Operator Operator

	// the encoding pattern as found in the standard reference tables. lower
	// case letters are operand fields
	Pattern string

	Mnemonic string
	Category Category

	operand operand
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s %s (%s)", defn.Pattern, defn.Mnemonic, defn.Category)
}

// the definitions table is indexed by Operator.
var definitions = [numOperators]Definition{
	Unknown:           {Unknown, "????", "??", System, none},
	Sys:               {Sys, "0nnn", "SYS", System, addr},
	ClearScreen:       {ClearScreen, "00E0", "CLS", Display, none},
	Return:            {Return, "00EE", "RET", Subroutine, none},
	Jump:              {Jump, "1nnn", "JP", Flow, addr},
	Call:              {Call, "2nnn", "CALL", Subroutine, addr},
	SkipEqualByte:     {SkipEqualByte, "3xkk", "SE", Skip, regByte},
	SkipNotEqualByte:  {SkipNotEqualByte, "4xkk", "SNE", Skip, regByte},
	SkipEqualReg:      {SkipEqualReg, "5xy0", "SE", Skip, regReg},
	LoadByte:          {LoadByte, "6xkk", "LD", Load, regByte},
	AddByte:           {AddByte, "7xkk", "ADD", Arithmetic, regByte},
	LoadReg:           {LoadReg, "8xy0", "LD", Load, regReg},
	Or:                {Or, "8xy1", "OR", Arithmetic, regReg},
	And:               {And, "8xy2", "AND", Arithmetic, regReg},
	Xor:               {Xor, "8xy3", "XOR", Arithmetic, regReg},
	AddReg:            {AddReg, "8xy4", "ADD", Arithmetic, regReg},
	Sub:               {Sub, "8xy5", "SUB", Arithmetic, regReg},
	ShiftRight:        {ShiftRight, "8xy6", "SHR", Arithmetic, regReg},
	SubN:              {SubN, "8xy7", "SUBN", Arithmetic, regReg},
	ShiftLeft:         {ShiftLeft, "8xyE", "SHL", Arithmetic, regReg},
	SkipNotEqualReg:   {SkipNotEqualReg, "9xy0", "SNE", Skip, regReg},
	LoadIndex:         {LoadIndex, "Annn", "LD", Load, index},
	JumpOffset:        {JumpOffset, "Bnnn", "JP", Flow, regOffset},
	Random:            {Random, "Cxkk", "RND", Arithmetic, regByte},
	Draw:              {Draw, "Dxyn", "DRW", Display, regRegNib},
	SkipKeyPressed:    {SkipKeyPressed, "Ex9E", "SKP", Input, reg},
	SkipKeyNotPressed: {SkipKeyNotPressed, "ExA1", "SKNP", Input, reg},
	LoadDelay:         {LoadDelay, "Fx07", "LD %s, DT", Timer, custom},
	WaitKey:           {WaitKey, "Fx0A", "LD %s, K", Input, custom},
	SetDelay:          {SetDelay, "Fx15", "LD DT, %s", Timer, custom},
	SetSound:          {SetSound, "Fx18", "LD ST, %s", Timer, custom},
	AddIndex:          {AddIndex, "Fx1E", "ADD I, %s", Arithmetic, custom},
	LoadGlyph:         {LoadGlyph, "Fx29", "LD F, %s", Load, custom},
	StoreBCD:          {StoreBCD, "Fx33", "LD B, %s", Memory, custom},
	StoreRegs:         {StoreRegs, "Fx55", "LD [I], %s", Memory, custom},
	LoadRegs:          {LoadRegs, "Fx65", "LD %s, [I]", Memory, custom},
}

// GetDefinition returns the definition for the operator. The definition of
// Unknown is returned for an invalid operator.
func GetDefinition(op Operator) Definition {
	if op < 0 || op >= numOperators {
		return definitions[Unknown]
	}
	return definitions[op]
}

// GetDefinitions returns the definitions of every operator, including
// Unknown, in Operator order.
func GetDefinitions() []Definition {
	d := make([]Definition, len(definitions))
	copy(d, definitions[:])
	return d
}

// String returns the encoding pattern of the operator. For example, "8xy4".
func (op Operator) String() string {
	return GetDefinition(op).Pattern
}
