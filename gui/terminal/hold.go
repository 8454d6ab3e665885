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

package terminal

import (
	"sort"
	"time"
)

// holdDuration is how long a key is considered to be held after the most
// recent press. it must be longer than the auto-repeat delay of the terminal
// for held keys to be reported correctly.
const holdDuration = 300 * time.Millisecond

type keyHold struct {
	held map[string]time.Time
}

func newKeyHold() keyHold {
	return keyHold{
		held: make(map[string]time.Time),
	}
}

// press records a key press at the given time. Returns true if the key was
// not already held.
func (h *keyHold) press(key string, now time.Time) bool {
	_, ok := h.held[key]
	h.held[key] = now
	return !ok
}

// expire returns the keys that have not been pressed within holdDuration of
// now. The returned keys are no longer held.
func (h *keyHold) expire(now time.Time) []string {
	var released []string
	for k, t := range h.held {
		if now.Sub(t) >= holdDuration {
			released = append(released, k)
			delete(h.held, k)
		}
	}
	sort.Strings(released)
	return released
}
