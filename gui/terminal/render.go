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

package terminal

import (
	"strings"

	"github.com/gopherchip8/gopherchip8/hardware/display"
)

// the number of character rows needed to draw the display.
const displayRows = (display.Height + 1) / 2

// the minimum size of the terminal. one row is used for the status line.
const (
	minCols = display.Width
	minRows = displayRows + 1
)

// ANSI control sequences.
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	clearLine   = "\x1b[K"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	normalPen   = "\x1b[0m"
	inversePen  = "\x1b[7m"
	newLine     = "\r\n"
	upperHalf   = '▀'
	lowerHalf   = '▄'
	fullBlock   = '█'
	emptyBlock  = ' '
)

// renderBlocks draws the display with half-block characters. Each line is
// terminated with a carriage return and line feed.
func renderBlocks(px display.Pixels) string {
	var s strings.Builder
	s.Grow(displayRows * (display.Width*3 + len(newLine)))

	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x++ {
			top := px[y][x]
			bottom := y+1 < display.Height && px[y+1][x]

			switch {
			case top && bottom:
				s.WriteRune(fullBlock)
			case top:
				s.WriteRune(upperHalf)
			case bottom:
				s.WriteRune(lowerHalf)
			default:
				s.WriteRune(emptyBlock)
			}
		}
		s.WriteString(newLine)
	}

	return s.String()
}
