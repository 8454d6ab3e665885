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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// ExpectSuccess() and ExpectFailure() test for success or failure under
// generic conditions: a bool must be true (or false), an error must be nil (or
// not nil). A nil value is considered a success because that is how the
// error type signals the absence of an error.
//
// ExpectEquality(), ExpectInequality() and ExpectApproximate() compare values
// of the same type.
package test
