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


package digest

import (
	"github.com/gopherchip8/gopherchip8/beeper"
	"github.com/gopherchip8/gopherchip8/govern"
	"github.com/gopherchip8/gopherchip8/hardware"
)

// Run the machine for the specified number of frames, without a GUI and as
// quickly as possible. Returns the video and audio fingerprints of the run.
//
// For repeatable results the machine's instance should be normalised or have
// random numbers generated from a zero seed.
func Run(m *hardware.Machine, frames int) (*Video, *Audio, error) {
	vid := NewVideo()
	aud := NewAudio()
	bpr := beeper.NewBeeper()

	err := m.RunForFrameCount(frames, func(_ int) (govern.State, error) {
		px, dirty := m.Display.Pixels()
		if err := vid.Render(px, dirty); err != nil {
			return govern.Ending, err
		}
		return govern.Running, aud.SetAudio(bpr.Frame(m.Sound()))
	})
	if err != nil {
		return nil, nil, err
	}

	if err := aud.EndMixing(); err != nil {
		return nil, nil, err
	}

	return vid, aud, nil
}
