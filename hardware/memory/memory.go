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

package memory

import (
	"fmt"
	"strings"

	"github.com/gopherchip8/gopherchip8/curated"
	"github.com/gopherchip8/gopherchip8/logger"
)

// Memory map.
const (
	Size          = 4096
	FontOrigin    = 0x000
	FontMemtop    = FontOrigin + len(font) - 1
	ProgramOrigin = 0x200

	// the largest program image that can be loaded
	MaxROMSize = Size - ProgramOrigin

	// mask applied to every address
	addressMask = Size - 1
)

// LoadError is returned by LoadROM() if the program image does not fit in
// memory.
const LoadError = "memory: rom too large (%d bytes, maximum %d)"

// Memory is the entire address space of the CHIP-8.
type Memory struct {
	log logger.Permission

	RAM [Size]uint8

	// the number of bytes in the most recently loaded program image
	romSize int
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font sprites are installed and the rest of memory is cleared.
//
// The log argument can be nil, in which case logging is always allowed.
func NewMemory(log logger.Permission) *Memory {
	if log == nil {
		log = logger.Allow
	}
	mem := &Memory{log: log}
	mem.Reset()
	return mem
}

// Reset clears memory and reinstalls the font sprites. Any loaded program
// image is lost.
func (mem *Memory) Reset() {
	clear(mem.RAM[:])
	copy(mem.RAM[FontOrigin:], font[:])
	mem.romSize = 0
}

// LoadROM copies data into memory starting at ProgramOrigin. Fails with
// LoadError if data is too large, in which case memory is left unchanged.
func (mem *Memory) LoadROM(data []byte) error {
	if len(data) > MaxROMSize {
		return curated.Errorf(LoadError, len(data), MaxROMSize)
	}
	clear(mem.RAM[ProgramOrigin:])
	copy(mem.RAM[ProgramOrigin:], data)
	mem.romSize = len(data)
	return nil
}

// ROMSize returns the size of the program image loaded by LoadROM().
func (mem *Memory) ROMSize() int {
	return mem.romSize
}

// Read returns the byte at address. The address wraps at the end of memory.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.RAM[address&addressMask]
}

// ReadWord returns the big-endian 16-bit value at address. The address of the
// second byte wraps independently of the first.
func (mem *Memory) ReadWord(address uint16) uint16 {
	hi := mem.RAM[address&addressMask]
	lo := mem.RAM[(address+1)&addressMask]
	return uint16(hi)<<8 | uint16(lo)
}

// Write data to address. The address wraps at the end of memory. Writes to
// the font region are dropped and logged. Returns false if the write was
// dropped.
func (mem *Memory) Write(address uint16, data uint8) bool {
	address &= addressMask
	if int(address) <= FontMemtop {
		logger.Logf(mem.log, "memory", "write to font region dropped (%03x <- %02x)", address, data)
		return false
	}
	mem.RAM[address] = data
	return true
}

// Poke writes data to address without the font region check. It is intended
// for tests and tools that need to put memory into a specific state.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.RAM[address&addressMask] = data
}

// Dump returns a hex dump of the memory between origin and memtop. Both
// addresses are rounded to a sixteen byte boundary.
func (mem *Memory) Dump(origin uint16, memtop uint16) string {
	origin &= addressMask &^ 0x0f
	memtop &= addressMask

	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for row := int(origin); row <= int(memtop); row += 16 {
		s.WriteString(fmt.Sprintf("%03x | ", row>>4))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.RAM[row+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (mem *Memory) String() string {
	top := ProgramOrigin + mem.romSize - 1
	if mem.romSize == 0 {
		top = ProgramOrigin
	}
	return mem.Dump(ProgramOrigin, uint16(top))
}
