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

//go:build windows

package terminal

import (
	"fmt"

	"github.com/gopherchip8/gopherchip8/govern"
	"github.com/gopherchip8/gopherchip8/hardware/display"
	"github.com/gopherchip8/gopherchip8/userinput"
)

// Terminal implements the gui.GUI interface. It is not available on Windows.
type Terminal struct{}

// NewTerminal always returns an error on Windows.
func NewTerminal(_ string) (*Terminal, error) {
	return nil, fmt.Errorf("terminal: not supported on windows")
}

// Service implements the gui.GUI interface.
func (trm *Terminal) Service() ([]userinput.Event, error) {
	return nil, nil
}

// SetState implements the gui.GUI interface.
func (trm *Terminal) SetState(_ govern.State) {
}

// Render implements the gui.GUI interface.
func (trm *Terminal) Render(_ display.Pixels, _ bool) error {
	return nil
}

// Destroy implements the gui.GUI interface.
func (trm *Terminal) Destroy() {
}
