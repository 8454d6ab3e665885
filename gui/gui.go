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

package gui

import (
	"github.com/gopherchip8/gopherchip8/govern"
	"github.com/gopherchip8/gopherchip8/hardware/display"
	"github.com/gopherchip8/gopherchip8/userinput"
)

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Service the user interface. Returns the user input events that have
	// occurred since the previous call, in the order they occurred. Should
	// not block.
	Service() ([]userinput.Event, error)

	// Render the display. The dirty argument is false if the pixels have not
	// changed since the previous call to Render().
	Render(px display.Pixels, dirty bool) error

	// SetState notifies the GUI of a change in the emulation state.
	SetState(state govern.State)

	// Destroy the GUI and release any resources.
	Destroy()
}

// AudioMixer implementations output audio. The driving loop calls
// SetAudio() once per frame.
type AudioMixer interface {
	// SetAudio is called with the samples for a single frame. Samples are
	// unsigned 8bit mono. The slice should not be retained.
	SetAudio(samples []uint8) error

	// EndMixing is called when no more audio will be sent.
	EndMixing() error
}
