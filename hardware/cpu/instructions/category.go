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

// Category of an instruction describes its effect.
type Category int

// List of valid categories.
const (
	System Category = iota
	Flow
	Subroutine
	Skip
	Load
	Arithmetic
	Display
	Input
	Timer
	Memory
)

func (c Category) String() string {
	switch c {
	case System:
		return "System"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Skip:
		return "Skip"
	case Load:
		return "Load"
	case Arithmetic:
		return "Arithmetic"
	case Display:
		return "Display"
	case Input:
		return "Input"
	case Timer:
		return "Timer"
	case Memory:
		return "Memory"
	}
	return "unknown category"
}
