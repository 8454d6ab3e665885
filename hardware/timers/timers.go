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

// Package timers implements the delay and sound timers of the CHIP-8.
//
// Both timers count down at 60Hz. The rate is independent of the number of
// instructions executed. The Tick() function should be called once per frame
// by the driving loop.
package timers

import "fmt"

// TickRate is the number of times per second Tick() should be called.
const TickRate = 60

// Timers contains the two countdown timers.
type Timers struct {
	// used to pace programs. can be read and written by the program
	Delay uint8

	// the beeper sounds while this value is non-zero. write only from the
	// point of view of the program
	Sound uint8
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("DT=%02x ST=%02x", tmr.Delay, tmr.Sound)
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

// Tick decreases each non-zero timer by one.
func (tmr *Timers) Tick() {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
}

// SoundActive returns true if the sound timer is non-zero.
func (tmr *Timers) SoundActive() bool {
	return tmr.Sound > 0
}
