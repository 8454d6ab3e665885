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

// Package sdlplay implements the GUI interface using SDL for the window and
// input and OpenGL 3.2 for rendering. The display buffer is uploaded to a
// texture every frame that it changes and drawn to a quad that fills the
// window. The aspect ratio of the display is preserved when the window is
// resized.
//
// SDL requires that all calls are made from the main thread.
package sdlplay
