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

// Package playmode is the driving loop of the emulation. Each frame the
// machine executes instructions and ticks the timers, the audio for the
// frame is sent to the mixers, the display is rendered and user input is
// serviced. The loop is held to 60 frames per second by a frame limiter.
//
// A fatal error in the machine halts the emulation. The display remains
// visible and the machine can be reset by the user. If the user quits while
// the machine is halted the error is returned by Play().
package playmode
