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

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// all the sub-systems. From here, the emulation can either be started to run
// continuously (with an optional callback to check for continuation) or it
// can be stepped frame by frame or instruction by instruction.
//
// A frame is the unit of time of the emulation. During every frame the CPU
// executes a number of instructions, given by the speed preference, and then
// the delay and sound timers are ticked once. The driving loop is responsible
// for running frames at a rate of sixty per second.
package hardware
