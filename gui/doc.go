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

// Package gui is an abstraction layer for real GUI implementations. It
// defines the interfaces used by the driving loop to present the display and
// to receive user input, and the interface used to output audio.
//
// The sdlplay package implements a GUI with a window using SDL and OpenGL.
// The terminal package implements a GUI in an ANSI terminal. The sdlaudio
// and wavwriter packages implement the AudioMixer interface.
package gui
