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

// Package terminal implements the GUI interface for an ANSI terminal. The
// display is drawn with half-block characters so that each character cell
// represents two display pixels, one above the other. A terminal of at least
// 64 columns and 17 rows is required.
//
// Terminals do not report key releases. A key is considered to be held for
// a short time after the most recent press or auto-repeat of that key.
package terminal
