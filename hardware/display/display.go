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

// Package display implements the 64x32 monochrome display buffer of the
// CHIP-8.
//
// Sprites are drawn by XORing each sprite bit with the pixel underneath. A
// collision occurs when a pixel that was set becomes unset. Sprite
// coordinates wrap around the edges of the display unless clipping is
// requested by the caller.
//
// Only the CPU should change the contents of the display. Presentation
// layers read the display with the Pixel() function or take a copy with
// Pixels().
package display

import "strings"

// The size of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// Pixels is a copy of the display buffer, indexed by row and then column.
type Pixels [Height][Width]bool

// Display is the display buffer.
type Display struct {
	pixels Pixels

	// the display has been changed since the last call to Pixels()
	dirty bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{dirty: true}
}

// Clear every pixel.
func (dsp *Display) Clear() {
	dsp.pixels = Pixels{}
	dsp.dirty = true
}

// Draw the sprite at x, y. Each byte in rows is a row of eight pixels, most
// significant bit on the left. The x and y coordinates wrap at the edge of the
// display. If clip is false then the sprite also wraps; otherwise any part of
// the sprite that falls off the edge is discarded.
//
// Returns true if any pixel changed from set to unset.
func (dsp *Display) Draw(x, y uint8, rows []uint8, clip bool) bool {
	ox := int(x) % Width
	oy := int(y) % Height

	var collision bool

	for r, data := range rows {
		py := oy + r
		if py >= Height {
			if clip {
				break // for loop
			}
			py %= Height
		}

		for b := 0; b < 8; b++ {
			if data&(0x80>>b) == 0 {
				continue
			}

			px := ox + b
			if px >= Width {
				if clip {
					break // for loop
				}
				px %= Width
			}

			if dsp.pixels[py][px] {
				collision = true
			}
			dsp.pixels[py][px] = !dsp.pixels[py][px]
		}
	}

	dsp.dirty = true

	return collision
}

// Pixel returns the state of the pixel at x, y. Coordinates outside the
// display are always unset.
func (dsp *Display) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return dsp.pixels[y][x]
}

// Pixels returns a copy of the display buffer and whether the display has
// changed since the previous call.
func (dsp *Display) Pixels() (Pixels, bool) {
	dirty := dsp.dirty
	dsp.dirty = false
	return dsp.pixels, dirty
}

func (dsp *Display) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if dsp.pixels[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
