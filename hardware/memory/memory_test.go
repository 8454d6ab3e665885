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

package memory_test

import (
	"strings"
	"testing"

	"github.com/gopherchip8/gopherchip8/curated"
	"github.com/gopherchip8/gopherchip8/hardware/memory"
	"github.com/gopherchip8/gopherchip8/logger"
	"github.com/gopherchip8/gopherchip8/test"
)

func TestFont(t *testing.T) {
	mem := memory.NewMemory(nil)

	// the zero glyph
	test.ExpectEquality(t, memory.GlyphAddress(0), uint16(0x000))
	test.ExpectEquality(t, mem.Read(0x000), uint8(0xf0))
	test.ExpectEquality(t, mem.Read(0x001), uint8(0x90))

	// the F glyph is the last in the font
	test.ExpectEquality(t, memory.GlyphAddress(0x0f), uint16(0x04b))
	test.ExpectEquality(t, mem.Read(0x04b), uint8(0xf0))
	test.ExpectEquality(t, mem.Read(0x04f), uint8(0x80))
	test.ExpectEquality(t, memory.FontMemtop, 0x04f)

	// only the low nibble is used
	test.ExpectEquality(t, memory.GlyphAddress(0x1a), memory.GlyphAddress(0x0a))

	// nothing after the font
	test.ExpectEquality(t, mem.Read(0x050), uint8(0x00))
}

func TestLoadROM(t *testing.T) {
	mem := memory.NewMemory(nil)

	err := mem.LoadROM([]byte{0x00, 0xe0, 0x12, 0x00})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mem.ROMSize(), 4)
	test.ExpectEquality(t, mem.ReadWord(memory.ProgramOrigin), uint16(0x00e0))
	test.ExpectEquality(t, mem.ReadWord(memory.ProgramOrigin+2), uint16(0x1200))

	// largest possible image
	err = mem.LoadROM(make([]byte, memory.MaxROMSize))
	test.ExpectSuccess(t, err)

	// a smaller image clears the remnants of the larger one
	mem.Poke(0xfff, 0xaa)
	err = mem.LoadROM([]byte{0x60, 0x05})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mem.Read(0xfff), uint8(0x00))
}

func TestLoadROMTooLarge(t *testing.T) {
	mem := memory.NewMemory(nil)
	test.ExpectSuccess(t, mem.LoadROM([]byte{0x12, 0x34}))

	err := mem.LoadROM(make([]byte, memory.MaxROMSize+1))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, memory.LoadError), true)

	// memory is unchanged
	test.ExpectEquality(t, mem.ReadWord(memory.ProgramOrigin), uint16(0x1234))
	test.ExpectEquality(t, mem.ROMSize(), 2)
}

func TestWrap(t *testing.T) {
	mem := memory.NewMemory(nil)

	test.ExpectEquality(t, mem.Write(0x1300, 0x55), true)
	test.ExpectEquality(t, mem.Read(0x300), uint8(0x55))
	test.ExpectEquality(t, mem.Read(0xf300), uint8(0x55))

	// word read across the end of memory
	mem.Poke(0xfff, 0xab)
	test.ExpectEquality(t, mem.ReadWord(0xfff), uint16(0xabf0))
}

func TestFontProtection(t *testing.T) {
	logger.Clear()
	mem := memory.NewMemory(nil)

	test.ExpectEquality(t, mem.Write(0x000, 0x00), false)
	test.ExpectEquality(t, mem.Read(0x000), uint8(0xf0))
	test.ExpectEquality(t, mem.Write(0x1004, 0x00), false)
	test.ExpectEquality(t, mem.Read(0x004), uint8(0xf0))

	// last address of the font
	test.ExpectEquality(t, mem.Write(0x04f, 0x00), false)
	test.ExpectEquality(t, mem.Read(0x04f), uint8(0x80))

	// first address after the font is writable
	test.ExpectEquality(t, mem.Write(0x050, 0x11), true)

	var s strings.Builder
	logger.Write(&s)
	test.ExpectEquality(t, strings.Contains(s.String(), "write to font region dropped"), true)
}

func TestReset(t *testing.T) {
	mem := memory.NewMemory(nil)
	test.ExpectSuccess(t, mem.LoadROM([]byte{0x12, 0x34}))
	mem.Poke(0x000, 0x00)

	mem.Reset()
	test.ExpectEquality(t, mem.Read(0x000), uint8(0xf0))
	test.ExpectEquality(t, mem.Read(memory.ProgramOrigin), uint8(0x00))
	test.ExpectEquality(t, mem.ROMSize(), 0)
}

func TestDump(t *testing.T) {
	mem := memory.NewMemory(nil)
	test.ExpectSuccess(t, mem.LoadROM([]byte{0x00, 0xe0}))

	d := mem.String()
	lines := strings.Split(d, "\n")
	test.ExpectEquality(t, len(lines), 3)
	test.ExpectEquality(t, strings.HasPrefix(lines[2], "020 |  00 e0 00"), true)
}
