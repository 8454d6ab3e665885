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


package digest_test

import (
	"crypto/sha1"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/gopherchip8/gopherchip8/beeper"
	"github.com/gopherchip8/gopherchip8/digest"
	"github.com/gopherchip8/gopherchip8/hardware"
	"github.com/gopherchip8/gopherchip8/hardware/display"
	"github.com/gopherchip8/gopherchip8/hardware/instance"
	"github.com/gopherchip8/gopherchip8/hardware/preferences"
	"github.com/gopherchip8/gopherchip8/romloader"
	"github.com/gopherchip8/gopherchip8/test"
)

// draws font glyphs at random positions. the sound timer is set to 30 frames
// at the start
var randomGlyphs = []byte{
	0x6a, 0x1e, // VA = 30
	0xfa, 0x18, // ST = VA
	0xc0, 0x3f, // V0 = rand & 0x3f
	0xc1, 0x1f, // V1 = rand & 0x1f
	0xf0, 0x29, // I = glyph for V0
	0xd0, 0x15, // draw 5 rows at V0, V1
	0x12, 0x04, // jump 0x204
}

func fingerprint(t *testing.T, frames int, program []byte) (*digest.Video, *digest.Audio) {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	if err != nil {
		t.Fatal(err)
	}

	m, err := hardware.NewMachine(instance.Main, prefs)
	if err != nil {
		t.Fatal(err)
	}
	m.Instance.Normalise()

	err = m.AttachROM(romloader.NewLoaderFromData("test", program))
	if err != nil {
		t.Fatal(err)
	}

	vid, aud, err := digest.Run(m, frames)
	test.ExpectSuccess(t, err)

	return vid, aud
}

func TestDeterministic(t *testing.T) {
	vidA, audA := fingerprint(t, 60, randomGlyphs)
	vidB, audB := fingerprint(t, 60, randomGlyphs)

	zero := fmt.Sprintf("%x", [sha1.Size]byte{})

	test.ExpectEquality(t, vidA.Frames(), 60)
	test.ExpectInequality(t, vidA.Hash(), zero)
	test.ExpectEquality(t, vidA.Hash(), vidB.Hash())
	test.ExpectInequality(t, audA.Hash(), zero)
	test.ExpectEquality(t, audA.Hash(), audB.Hash())
}

func TestDifferentPrograms(t *testing.T) {
	vidA, audA := fingerprint(t, 60, randomGlyphs)

	// the same program but with a shorter sound and a narrower range of
	// horizontal positions
	alt := append([]byte{}, randomGlyphs...)
	alt[1] = 0x0f
	alt[5] = 0x1f
	vidB, audB := fingerprint(t, 60, alt)

	test.ExpectInequality(t, vidA.Hash(), vidB.Hash())
	test.ExpectInequality(t, audA.Hash(), audB.Hash())
}

func TestVideoChaining(t *testing.T) {
	var px display.Pixels

	a := digest.NewVideo()
	b := digest.NewVideo()

	// identical frames still change the fingerprint
	test.ExpectSuccess(t, a.Render(px, false))
	first := a.Hash()
	test.ExpectSuccess(t, a.Render(px, false))
	test.ExpectInequality(t, a.Hash(), first)

	// the order of frames matters
	px[3][7] = true
	test.ExpectSuccess(t, b.Render(px, true))
	test.ExpectSuccess(t, b.Render(display.Pixels{}, true))

	c := digest.NewVideo()
	test.ExpectSuccess(t, c.Render(display.Pixels{}, true))
	test.ExpectSuccess(t, c.Render(px, true))
	test.ExpectInequality(t, b.Hash(), c.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Frames(), 0)
	test.ExpectSuccess(t, a.Render(display.Pixels{}, false))
	test.ExpectEquality(t, a.Hash(), first)
}

func TestAudioEnded(t *testing.T) {
	aud := digest.NewAudio()
	bpr := beeper.NewBeeper()

	// half a frame is flushed when mixing ends
	test.ExpectSuccess(t, aud.SetAudio(bpr.Frame(true)[:beeper.SamplesPerFrame/2]))
	test.ExpectEquality(t, aud.Hash(), fmt.Sprintf("%x", [sha1.Size]byte{}))
	test.ExpectSuccess(t, aud.EndMixing())
	test.ExpectInequality(t, aud.Hash(), fmt.Sprintf("%x", [sha1.Size]byte{}))

	test.ExpectFailure(t, aud.SetAudio(bpr.Frame(false)))

	aud.ResetDigest()
	test.ExpectSuccess(t, aud.SetAudio(bpr.Frame(false)))
}
