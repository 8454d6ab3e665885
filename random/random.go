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

package random

import (
	"math/rand"
	"time"
)

// the base seed is added to the clock value to create the seed for each
// random number.
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of the variable part of the random seed.
type Clock interface {
	// the number of instructions that have been executed since the
	// machine was reset
	Cycles() uint64
}

// Random should be used in preference to the math/rand package.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

func (rnd *Random) rand() *rand.Rand {
	var c int64
	if rnd.clock != nil {
		c = int64(rnd.clock.Cycles())
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(c))
	}
	return rand.New(rand.NewSource(baseSeed + c))
}

// Intn returns a random number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Byte returns a random number in the range [0, 255].
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rand().Intn(256))
}
