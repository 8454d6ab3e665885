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
	"os"
	"os/signal"

	"github.com/gopherchip8/gopherchip8/beeper"
	"github.com/gopherchip8/gopherchip8/govern"
	"github.com/gopherchip8/gopherchip8/gui"
	"github.com/gopherchip8/gopherchip8/hardware"
	"github.com/gopherchip8/gopherchip8/hardware/timers"
	"github.com/gopherchip8/gopherchip8/logger"
	"github.com/gopherchip8/gopherchip8/performance/limiter"
	"github.com/gopherchip8/gopherchip8/userinput"
)

type playmode struct {
	m      *hardware.Machine
	gui    gui.GUI
	bpr    *beeper.Beeper
	mixers []gui.AudioMixer

	controllers *userinput.Controllers
	lmtr        *limiter.FpsLimiter

	state govern.State

	// interrupt signals are caught and treated as a quit event
	intChan chan os.Signal
}

// Play runs the machine until the user quits. The machine should have a ROM
// attached. The beeper can be nil, in which case the default tone is used.
// Audio is sent to every mixer.
func Play(m *hardware.Machine, g gui.GUI, bpr *beeper.Beeper, mixers ...gui.AudioMixer) (rerr error) {
	if bpr == nil {
		bpr = beeper.NewBeeper()
	}

	pl := &playmode{
		m:           m,
		gui:         g,
		bpr:         bpr,
		mixers:      mixers,
		controllers: userinput.NewControllers(),
		lmtr:        limiter.NewFPSLimiter(timers.TickRate),
		intChan:     make(chan os.Signal, 1),
	}
	defer pl.lmtr.End()

	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	defer func() {
		for _, mx := range pl.mixers {
			if err := mx.EndMixing(); err != nil && rerr == nil {
				rerr = fmt.Errorf("playmode: %w", err)
			}
		}
		pl.setState(govern.Ending)
		logger.Logf(logger.Allow, "playmode", "ended after %d frames (%d instructions)", pl.m.Frame(), pl.m.Cycles())
	}()

	pl.setState(govern.Running)

	for {
		err := pl.m.Run(pl.continueCheck)
		if err == nil {
			return nil
		}

		haltErr := pl.m.CPU.Halted()
		if haltErr == nil {
			return fmt.Errorf("playmode: %w", err)
		}

		err = pl.halted(haltErr)
		if err != nil {
			return err
		}
	}
}

func (pl *playmode) setState(state govern.State) {
	pl.state = state
	pl.gui.SetState(state)
}

// continueCheck is called by the machine at the end of every frame.
func (pl *playmode) continueCheck() (govern.State, error) {
	if pl.state == govern.Running {
		err := pl.mixAudio()
		if err != nil {
			return govern.Ending, err
		}
	}

	err := pl.render()
	if err != nil {
		return govern.Ending, err
	}

	pl.lmtr.Wait()

	return pl.eventHandler()
}

// halted services the GUI until the user resets or quits. The halt error is
// returned if the user quits.
func (pl *playmode) halted(haltErr error) error {
	logger.Logf(logger.Allow, "playmode", "halted: %v", haltErr)
	pl.setState(govern.Halted)

	for pl.state == govern.Halted {
		err := pl.render()
		if err != nil {
			return err
		}

		pl.lmtr.Wait()

		state, err := pl.eventHandler()
		if err != nil {
			return err
		}
		if state == govern.Ending {
			return haltErr
		}
	}

	return nil
}

func (pl *playmode) mixAudio() error {
	samples := pl.bpr.Frame(pl.m.Sound())
	for _, mx := range pl.mixers {
		err := mx.SetAudio(samples)
		if err != nil {
			return fmt.Errorf("playmode: %w", err)
		}
	}
	return nil
}

func (pl *playmode) render() error {
	px, dirty := pl.m.Display.Pixels()
	err := pl.gui.Render(px, dirty)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}
	return nil
}

