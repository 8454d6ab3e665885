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

// Package limiter provides a ticker that can be used to keep the emulation
// running at a steady rate. The driving loop waits on the limiter once per
// frame.
package limiter

import (
	"time"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type. The End() function should be called when the limiter is no longer
// required.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	// run ticker concurrently
	go func(secondsPerFrame time.Duration) {
		adjustedSecondPerFrame := secondsPerFrame
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			if adjustedSecondPerFrame > 0 {
				time.Sleep(adjustedSecondPerFrame)
			}

			nt := time.Now()
			adjustedSecondPerFrame -= nt.Sub(t) - secondsPerFrame
			t = nt
		}
	}(lim.secondsPerFrame)

	return lim
}

// SetLimit calculates the duration of a frame. It should be called before the
// first call to Wait().
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond < 1 {
		framesPerSecond = 1
	}
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
}

// FramesPerSecond returns the limit of the ticker.
func (lim *FpsLimiter) FramesPerSecond() int {
	return lim.framesPerSecond
}

// Wait will block until the next tick.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if a tick has occurred since the last call to
// Wait() or HasWaited(). It does not block.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// End stops the ticker. The limiter should not be used after End() has been
// called.
func (lim *FpsLimiter) End() {
	close(lim.quit)
}
