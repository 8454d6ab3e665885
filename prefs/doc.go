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

// Package prefs holds typed preference values and a simple disk store for
// them.
//
// A value type (Bool, Int, Float, String) is registered with a Disk under a
// key. Disk.Load() and Disk.Save() move the values to and from a plain text
// file. Entries in the file that are not registered with the Disk are left
// untouched when the file is saved, so more than one Disk can share the same
// file.
//
// The file format is one entry per line:
//
//	chip8.speed :: 11
//	chip8.quirks.shiftVXOnly :: true
//
// Values can also be overridden for a session from the command line. See
// PushCommandLineStack().
package prefs
