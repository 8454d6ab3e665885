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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with Errorf(). The pattern string given to
// Errorf() identifies the error, so packages export their patterns as
// constants and callers test for them with Is() and Has():
//
//	const StackOverflow = "registers: stack overflow at %03x"
//
//	err := curated.Errorf(StackOverflow, pc)
//	if curated.Is(err, StackOverflow) {
//		...
//	}
//
// Is() only matches the outermost error. Has() searches the chain of curated
// errors that have been passed as values to Errorf().
//
// The Error() implementation normalises the message so that adjacent
// duplicate parts of the chain are removed. Parts are separated by ": ". This
// means a package can wrap an error with its own prefix without worrying
// whether the error already carries the same prefix:
//
//	cpu: cpu: unknown opcode (ffff) at 200
//
// is reported as
//
//	cpu: unknown opcode (ffff) at 200
package curated
