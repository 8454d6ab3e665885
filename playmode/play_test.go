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

package playmode_test

import (
	"path/filepath"
	"testing"

	"github.com/gopherchip8/gopherchip8/beeper"
	"github.com/gopherchip8/gopherchip8/curated"
	"github.com/gopherchip8/gopherchip8/govern"
	"github.com/gopherchip8/gopherchip8/hardware"
	"github.com/gopherchip8/gopherchip8/hardware/cpu/registers"
	"github.com/gopherchip8/gopherchip8/hardware/display"
	"github.com/gopherchip8/gopherchip8/hardware/instance"
	"github.com/gopherchip8/gopherchip8/hardware/preferences"
	"github.com/gopherchip8/gopherchip8/playmode"
	"github.com/gopherchip8/gopherchip8/romloader"
	"github.com/gopherchip8/gopherchip8/test"
	"github.com/gopherchip8/gopherchip8/userinput"
)

// mockGUI returns a list of events for each call to Service(). A quit event
// is returned once the list is exhausted.
type mockGUI struct {
	events  [][]userinput.Event
	service int
	renders int
	dirty   int
	states  []govern.State
	last    display.Pixels
}

func (g *mockGUI) Service() ([]userinput.Event, error) {
	defer func() { g.service++ }()
	if g.service < len(g.events) {
		return g.events[g.service], nil
	}
	return []userinput.Event{userinput.EventQuit{}}, nil
}

func (g *mockGUI) Render(px display.Pixels, dirty bool) error {
	g.renders++
	if dirty {
		g.dirty++
	}
	g.last = px
	return nil
}

func (g *mockGUI) SetState(state govern.State) {
	g.states = append(g.states, state)
}

func (g *mockGUI) Destroy() {
}

type mockMixer struct {
	frames int
	loud   int
	ended  bool
}

func (mx *mockMixer) SetAudio(samples []uint8) error {
	mx.frames++
	for _, s := range samples {
		if s != beeper.Silence {
			mx.loud++
			break
		}
	}
	return nil
}

func (mx *mockMixer) EndMixing() error {
	mx.ended = true
	return nil
}

func newMachine(t *testing.T, program ...byte) *hardware.Machine {
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

	return m
}

func press(key string, down bool) []userinput.Event {
	return []userinput.Event{userinput.EventKeyboard{Key: key, Down: down}}
}

func TestQuit(t *testing.T) {
	m := newMachine(t, 0x70, 0x01, 0x12, 0x00)
	g := &mockGUI{events: make([][]userinput.Event, 5)}

	err := playmode.Play(m, g, nil)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, m.Frame(), 6)
	test.ExpectEquality(t, g.renders, 6)
	test.ExpectEquality(t, g.states[0], govern.Running)
	test.ExpectEquality(t, g.states[len(g.states)-1], govern.Ending)
}

func TestPause(t *testing.T) {
	m := newMachine(t, 0x70, 0x01, 0x12, 0x00)
	g := &mockGUI{events: [][]userinput.Event{
		press("Space", true),
		press("Space", false),
		nil,
		press("Space", true),
		nil,
	}}

	err := playmode.Play(m, g, nil)
	test.ExpectSuccess(t, err)

	// no frames are run while paused
	test.ExpectEquality(t, m.Frame(), 3)
	test.ExpectEquality(t, g.states[1], govern.Paused)
	test.ExpectEquality(t, g.states[2], govern.Running)
}

func TestKeyWait(t *testing.T) {
	// wait for key and store in V0, then draw the glyph for that key
	m := newMachine(t, 0xf0, 0x0a, 0xf0, 0x29, 0xd1, 0x15, 0x12, 0x06)
	g := &mockGUI{events: [][]userinput.Event{
		nil,
		nil,
		press("W", true),
		nil,
		press("W", false),
	}}

	err := playmode.Play(m, g, nil)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, m.CPU.V[0], uint8(0x5))
	test.ExpectEquality(t, m.Keypad.IsPressed(0x5), false)

	// the top row of the glyph for 5 is 0xf0
	test.ExpectEquality(t, g.last[0][0], true)
	test.ExpectEquality(t, g.last[0][3], true)
	test.ExpectEquality(t, g.last[0][4], false)
}

func TestHaltAndReset(t *testing.T) {
	// return with an empty stack
	m := newMachine(t, 0x00, 0xee)
	g := &mockGUI{events: [][]userinput.Event{
		nil,
		press("F5", true),
	}}

	err := playmode.Play(m, g, nil)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, registers.StackUnderflow), true)

	// running, halted, running (after reset), halted, ending
	test.ExpectEquality(t, len(g.states), 5)
	test.ExpectEquality(t, g.states[1], govern.Halted)
	test.ExpectEquality(t, g.states[2], govern.Running)
	test.ExpectEquality(t, g.states[3], govern.Halted)
}

func TestAudio(t *testing.T) {
	// sound for 3 frames
	m := newMachine(t, 0x60, 0x03, 0xf0, 0x18, 0x12, 0x04)
	g := &mockGUI{events: make([][]userinput.Event, 9)}
	mx := &mockMixer{}

	err := playmode.Play(m, g, beeper.NewBeeper(), mx)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, mx.frames, 10)
	test.ExpectEquality(t, mx.loud, 3)
	test.ExpectEquality(t, mx.ended, true)
}
