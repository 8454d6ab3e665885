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

package beeper

import (
	"github.com/gopherchip8/gopherchip8/hardware/timers"
)

// SampleFreq is the frequency of the generated audio.
const SampleFreq = 44100

// SamplesPerFrame is the number of samples generated by each call to Frame().
const SamplesPerFrame = SampleFreq / timers.TickRate

// ToneFreq is the frequency of the default square wave.
const ToneFreq = 700

// Silence is the sample value for no output.
const Silence = 0x80

// amplitude of the square wave either side of Silence.
const amplitude = 0x20

// Beeper generates audio for each frame.
type Beeper struct {
	tone []uint8
	pos  int

	// the state of the sound timer in the previous frame
	active bool

	buffer [SamplesPerFrame]uint8
}

// NewBeeper is the preferred method of initialisation for the Beeper type.
// The tone is a square wave of ToneFreq.
func NewBeeper() *Beeper {
	period := SampleFreq / ToneFreq

	bpr := &Beeper{
		tone: make([]uint8, period),
	}

	for i := range bpr.tone {
		if i < period/2 {
			bpr.tone[i] = Silence + amplitude
		} else {
			bpr.tone[i] = Silence - amplitude
		}
	}

	return bpr
}

// Frame returns the samples for a single frame. The tone is output if active
// is true. The tone restarts from the beginning whenever the sound timer
// becomes active.
//
// The returned slice is only valid until the next call to Frame().
func (bpr *Beeper) Frame(active bool) []uint8 {
	if !active {
		bpr.active = false
		for i := range bpr.buffer {
			bpr.buffer[i] = Silence
		}
		return bpr.buffer[:]
	}

	if !bpr.active {
		bpr.pos = 0
		bpr.active = true
	}

	for i := range bpr.buffer {
		bpr.buffer[i] = bpr.tone[bpr.pos]
		bpr.pos++
		if bpr.pos >= len(bpr.tone) {
			bpr.pos = 0
		}
	}

	return bpr.buffer[:]
}

// Active returns true if the tone was output in the most recent frame.
func (bpr *Beeper) Active() bool {
	return bpr.active
}
