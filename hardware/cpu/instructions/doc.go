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

// Package instructions decodes 16-bit CHIP-8 opcodes. Decoding is a pure
// function of the opcode: the Decode() function extracts the nibbles and
// literals of the opcode and identifies the Operator. An opcode that does not
// match any known encoding is decoded with the Unknown operator.
//
// The definitions table describes every operator with its mnemonic, the
// encoding pattern as it appears in the standard reference tables and its
// effect Category. The table is used for disassembly in log messages and by
// tests.
package instructions
