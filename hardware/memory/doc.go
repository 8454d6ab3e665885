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

// Package memory implements the 4096 byte address space of the CHIP-8.
//
// The font sprites for the hexadecimal digits 0 to F are stored at the very
// start of memory, five bytes for each glyph. Program images are loaded at
// ProgramOrigin. Everything else is initialised to zero.
//
// Addresses are taken modulo the size of the address space rather than
// rejected. Historical interpreters were permissive in this way and some
// programs rely on it. Jump targets are treated differently and are
// validated by the cpu package.
//
// Writes into the font region are dropped. The font data is part of the
// interpreter and not of the program.
package memory
