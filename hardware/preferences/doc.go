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

// Package preferences contains the preference values for the emulated
// machine. The values are stored on disk with the prefs package and can be
// overridden for a session from the command line.
//
// For performance reasons the quirk values should not be read from the
// prefs.Bool fields during emulation. Use the Live() function to take a copy
// of the current values and check Generation() once per frame.
package preferences
