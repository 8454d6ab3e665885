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

package beeper_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherchip8/gopherchip8/beeper"
	"github.com/gopherchip8/gopherchip8/test"
	"github.com/gopherchip8/gopherchip8/wavwriter"
)

func TestSquareWave(t *testing.T) {
	bpr := beeper.NewBeeper()

	s := bpr.Frame(false)
	test.ExpectEquality(t, len(s), beeper.SamplesPerFrame)
	test.ExpectEquality(t, bpr.Active(), false)
	for _, v := range s {
		test.ExpectEquality(t, v, uint8(beeper.Silence))
	}

	s = bpr.Frame(true)
	test.ExpectEquality(t, bpr.Active(), true)

	// count the transitions from low to high. there should be one for every
	// period of the tone
	var rising int
	for i := 1; i < len(s); i++ {
		if s[i-1] < beeper.Silence && s[i] > beeper.Silence {
			rising++
		}
	}
	period := beeper.SampleFreq / beeper.ToneFreq
	test.ExpectApproximate(t, rising, beeper.SamplesPerFrame/period, 0.2)
}

func TestRestart(t *testing.T) {
	bpr := beeper.NewBeeper()
	a := append([]uint8{}, bpr.Frame(true)...)
	bpr.Frame(false)
	b := bpr.Frame(true)

	// tone restarts from the beginning when the timer becomes active again
	for i := range a {
		test.ExpectEquality(t, b[i], a[i])
	}
}

func TestFromWAV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tone.wav")

	// record one frame of square wave and use it as the sample
	aw, err := wavwriter.New(fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, aw.SetAudio(beeper.NewBeeper().Frame(true)))
	test.ExpectSuccess(t, aw.EndMixing())

	bpr, err := beeper.NewBeeperFromFile(fn)
	test.ExpectSuccess(t, err)

	s := bpr.Frame(true)
	test.ExpectEquality(t, len(s), beeper.SamplesPerFrame)

	var loud bool
	for _, v := range s {
		if v != beeper.Silence {
			loud = true
			break
		}
	}
	test.ExpectEquality(t, loud, true)
}

func TestUnsupportedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tone.ogg")
	test.ExpectSuccess(t, os.WriteFile(fn, []byte{0x00}, 0o644))

	_, err := beeper.NewBeeperFromFile(fn)
	test.ExpectFailure(t, err)

	_, err = beeper.NewBeeperFromFile(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)
}

func TestInvalidWAV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tone.wav")
	test.ExpectSuccess(t, os.WriteFile(fn, []byte("not a wav file"), 0o644))

	_, err := beeper.NewBeeperFromFile(fn)
	test.ExpectFailure(t, err)
}
