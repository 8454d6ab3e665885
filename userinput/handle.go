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

package userinput

// HandleInput is implemented by the emulated keypad.
type HandleInput interface {
	SetPressed(key uint8, pressed bool)
}

// Action is returned by HandleUserInput() when the event requires something
// of the driving loop.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionPause:
		return "pause"
	case ActionReset:
		return "reset"
	}
	panic("unknown action")
}

// Controllers handles user input for the keypad.
type Controllers struct {
	KeyMap KeyMap

	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulated keypad
	LastKeyHandled bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type. The default key map is used.
func NewControllers() *Controllers {
	return &Controllers{
		KeyMap: DefaultKeyMap,
	}
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) Action {
	// repeat events do not change the state of the keypad
	if ev.Repeat {
		c.LastKeyHandled = false
		return ActionNone
	}

	if k, ok := c.KeyMap.Lookup(ev.Key); ok {
		c.LastKeyHandled = true
		handle.SetPressed(k, ev.Down)
		return ActionNone
	}

	c.LastKeyHandled = false

	if !ev.Down || ev.Mod != KeyModNone {
		return ActionNone
	}

	switch ev.Key {
	case "Escape":
		return ActionQuit
	case "Space":
		return ActionPause
	case "F5", "Backspace":
		return ActionReset
	}

	return ActionNone
}

// HandleUserInput forwards keypad events to the HandleInput implementation.
// Events that concern the driving loop are returned as an Action.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) Action {
	switch ev := ev.(type) {
	case EventQuit:
		return ActionQuit
	case EventKeyboard:
		return c.keyboard(ev, handle)
	}
	return ActionNone
}
