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

package playmode

import (
	"fmt"

	"github.com/gopherchip8/gopherchip8/govern"
	"github.com/gopherchip8/gopherchip8/logger"
	"github.com/gopherchip8/gopherchip8/userinput"
)

func (pl *playmode) userInputHandler(ev userinput.Event) (govern.State, error) {
	switch pl.controllers.HandleUserInput(ev, pl.m.Keypad) {
	case userinput.ActionQuit:
		return govern.Ending, nil

	case userinput.ActionPause:
		switch pl.state {
		case govern.Running:
			pl.setState(govern.Paused)
		case govern.Paused:
			pl.setState(govern.Running)
		}

	case userinput.ActionReset:
		err := pl.m.Reset()
		if err != nil {
			return govern.Ending, fmt.Errorf("playmode: %w", err)
		}
		logger.Log(logger.Allow, "playmode", "machine reset by user")
		pl.setState(govern.Running)
	}

	return pl.state, nil
}

func (pl *playmode) eventHandler() (govern.State, error) {
	select {
	case <-pl.intChan:
		return govern.Ending, nil
	default:
	}

	events, err := pl.gui.Service()
	if err != nil {
		return govern.Ending, fmt.Errorf("playmode: %w", err)
	}

	for _, ev := range events {
		state, err := pl.userInputHandler(ev)
		if err != nil || state == govern.Ending {
			return state, err
		}
	}

	return pl.state, nil
}
