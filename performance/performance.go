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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopherchip8/gopherchip8/govern"
	"github.com/gopherchip8/gopherchip8/hardware"
	"github.com/gopherchip8/gopherchip8/hardware/instance"
	"github.com/gopherchip8/gopherchip8/hardware/preferences"
	"github.com/gopherchip8/gopherchip8/romloader"
)

// the amount of time the emulation runs before measurement begins.
const leadTime = 2 * time.Second

var timedOut = errors.New("performance timed out")

// Check the performance of the emulator using the supplied ROM. The emulation
// is not limited to the 60Hz frame rate. Results are written to the output
// writer.
//
// The prefs argument can be nil, in which case the preferences on disk are
// used.
func Check(output io.Writer, profile Profile, ld romloader.Loader, prefs *preferences.Preferences, duration string) error {
	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	m, err := hardware.NewMachine(instance.Performance, prefs)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	err = m.AttachROM(ld)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	startFrame := m.Frame()
	startCycles := m.Cycles()

	// run for specified period of time
	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has concluded
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// only check for end of measurement period every PerformanceBrake
		// frames
		performanceBrake := 0

		return m.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}

				// the leadtime has concluded and the measurement has begun
				startFrame = m.Frame()
				startCycles = m.Cycles()
			default:
			}

			return govern.Running, nil
		})
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	numFrames := m.Frame() - startFrame
	numCycles := m.Cycles() - startCycles

	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	ips := float64(numCycles) / dur.Seconds()

	_, err = io.WriteString(output, fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%% [%.0f instructions per second]\n",
		fps, numFrames, dur.Seconds(), accuracy, ips))

	return err
}
