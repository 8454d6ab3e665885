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

// Package keypad implements the sixteen key hexadecimal keypad of the CHIP-8.
//
// Key state is changed by the host with SetPressed(), once for each key
// transition. The CPU queries the state of a key with IsPressed().
//
// The keypad also implements the key-wait mechanism. The CPU calls BeginWait()
// when it executes a key-wait instruction and then PollWait() every time it
// executes the instruction again. PollWait() only succeeds once a key has
// changed from released to pressed after the wait began. A key that is
// already held when the wait begins does not satisfy the wait.
package keypad

import (
	"fmt"
	"strings"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad is the state of the keypad.
type Keypad struct {
	pressed [NumKeys]bool

	// whether a key-wait is in progress
	waiting bool

	// the key that satisfies the wait. only valid if edge is true
	key  uint8
	edge bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

func (kpd *Keypad) String() string {
	s := strings.Builder{}
	for k := 0; k < NumKeys; k++ {
		if kpd.pressed[k] {
			s.WriteString(fmt.Sprintf("%X", k))
		} else {
			s.WriteRune('-')
		}
	}
	if kpd.waiting {
		s.WriteString(" waiting")
	}
	return s.String()
}

// Reset releases every key and cancels any key-wait.
func (kpd *Keypad) Reset() {
	*kpd = Keypad{}
}

// SetPressed sets the state of the key. Only the low nibble of key is used.
func (kpd *Keypad) SetPressed(key uint8, pressed bool) {
	key &= 0x0f

	// only the first new press after the wait began is recorded
	if pressed && !kpd.pressed[key] && kpd.waiting && !kpd.edge {
		kpd.key = key
		kpd.edge = true
	}

	kpd.pressed[key] = pressed
}

// IsPressed returns the state of the key. Only the low nibble of key is used.
func (kpd *Keypad) IsPressed(key uint8) bool {
	return kpd.pressed[key&0x0f]
}

// BeginWait starts a key-wait. Has no effect if a wait is already in
// progress.
func (kpd *Keypad) BeginWait() {
	if kpd.waiting {
		return
	}
	kpd.waiting = true
	kpd.edge = false
}

// Waiting returns true if a key-wait is in progress.
func (kpd *Keypad) Waiting() bool {
	return kpd.waiting
}

// PollWait returns the key that satisfied the current key-wait. Returns false
// if no key has been pressed since the wait began or if no wait is in
// progress. The wait ends when a key is returned.
func (kpd *Keypad) PollWait() (uint8, bool) {
	if !kpd.waiting || !kpd.edge {
		return 0, false
	}
	kpd.waiting = false
	kpd.edge = false
	return kpd.key, true
}
