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

// Package cpu emulates the CHIP-8 interpreter. Each call to
// ExecuteInstruction() fetches the big-endian opcode at the program counter,
// advances the program counter by two, decodes the opcode with the
// instructions package and then executes it.
//
// The CPU requires implementations of the Memory, Display and Keypad
// interfaces. In the emulation these are satisfied by the memory, display and
// keypad packages. Tests can provide simpler implementations.
//
//	mc := cpu.NewCPU(ins, mem, dsp, kpd, tmr)
//	for {
//		status, err := mc.ExecuteInstruction()
//		if err != nil {
//			return err
//		}
//		if status == cpu.Waiting {
//			break
//		}
//	}
//
// The key-wait instruction does not block. Instead, ExecuteInstruction()
// returns the Waiting status and leaves the program counter pointing at the
// key-wait instruction. The instruction is executed again on the next call
// and completes once the keypad reports a new key press.
//
// Errors returned by ExecuteInstruction() are fatal. The CPU will refuse to
// execute any more instructions until it has been Reset().
//
// The exact behaviour of some instructions differs between historical
// interpreters. The behaviour is selected by the Quirks field of the
// instance.Instance given to NewCPU().
package cpu
