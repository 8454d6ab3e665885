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

//go:build !windows

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/pkg/term"
	"golang.org/x/sys/unix"

	"github.com/gopherchip8/gopherchip8/govern"
	"github.com/gopherchip8/gopherchip8/hardware/display"
	"github.com/gopherchip8/gopherchip8/logger"
	"github.com/gopherchip8/gopherchip8/userinput"
	"github.com/gopherchip8/gopherchip8/version"
)

// how long a read of the terminal can block before checking for the end of
// the input loop.
const readTimeout = 50 * time.Millisecond

// Terminal implements the gui.GUI interface.
type Terminal struct {
	tty    *term.Term
	output *os.File

	// key names read from the terminal
	keys chan string
	hold keyHold

	// geometry of the terminal. updated on SIGWINCH
	mu   sync.Mutex
	cols int
	rows int

	redraw atomic.Bool

	title string
	state govern.State

	// sig/ack channels to control the input and signal handlers
	quit chan bool
	wg   sync.WaitGroup
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The terminal is put into raw mode until Destroy() is called.
func NewTerminal(romName string) (*Terminal, error) {
	trm := &Terminal{
		output: os.Stdout,
		keys:   make(chan string, 64),
		hold:   newKeyHold(),
		title:  fmt.Sprintf("%s - %s", version.ApplicationName, romName),
		quit:   make(chan bool),
	}

	var err error

	trm.tty, err = term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	err = trm.tty.SetReadTimeout(readTimeout)
	if err != nil {
		_ = trm.tty.Restore()
		_ = trm.tty.Close()
		return nil, fmt.Errorf("terminal: %w", err)
	}

	err = trm.updateGeometry()
	if err != nil {
		_ = trm.tty.Restore()
		_ = trm.tty.Close()
		return nil, fmt.Errorf("terminal: %w", err)
	}

	trm.redraw.Store(true)
	trm.print(hideCursor + clearScreen)

	trm.wg.Add(2)
	go trm.inputLoop()
	go trm.signalLoop()

	return trm, nil
}

func (trm *Terminal) updateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(trm.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return err
	}

	trm.mu.Lock()
	defer trm.mu.Unlock()
	trm.cols = int(ws.Col)
	trm.rows = int(ws.Row)

	return nil
}

func (trm *Terminal) geometry() (int, int) {
	trm.mu.Lock()
	defer trm.mu.Unlock()
	return trm.cols, trm.rows
}

func (trm *Terminal) signalLoop() {
	defer trm.wg.Done()

	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, syscall.SIGWINCH)
	defer signal.Stop(sigwinch)

	for {
		select {
		case <-sigwinch:
			if err := trm.updateGeometry(); err != nil {
				logger.Logf(logger.Allow, "terminal", "geometry: %v", err)
			}
			trm.redraw.Store(true)
		case <-trm.quit:
			return
		}
	}
}

func (trm *Terminal) inputLoop() {
	defer trm.wg.Done()

	b := make([]byte, 32)
	for {
		select {
		case <-trm.quit:
			return
		default:
		}

		n, err := trm.tty.Read(b)
		if errors.Is(err, syscall.EINTR) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Logf(logger.Allow, "terminal", "read: %v", err)
			return
		}

		for _, k := range parseInput(b[:n]) {
			select {
			case trm.keys <- k:
			default:
				// drop keys if the emulation is not keeping up
			}
		}
	}
}

// Service implements the gui.GUI interface.
func (trm *Terminal) Service() ([]userinput.Event, error) {
	var events []userinput.Event

	now := time.Now()

	for done := false; !done; {
		select {
		case k := <-trm.keys:
			if k == interruptName {
				events = append(events, userinput.EventQuit{})
				continue
			}
			if trm.hold.press(k, now) {
				events = append(events, userinput.EventKeyboard{Key: k, Down: true})
			} else {
				events = append(events, userinput.EventKeyboard{Key: k, Down: true, Repeat: true})
			}
		default:
			done = true
		}
	}

	for _, k := range trm.hold.expire(now) {
		events = append(events, userinput.EventKeyboard{Key: k, Down: false})
	}

	return events, nil
}

// SetState implements the gui.GUI interface.
func (trm *Terminal) SetState(state govern.State) {
	trm.state = state
	trm.redraw.Store(true)
}

// Render implements the gui.GUI interface.
func (trm *Terminal) Render(px display.Pixels, dirty bool) error {
	redraw := trm.redraw.Swap(false)
	if !dirty && !redraw {
		return nil
	}

	var s strings.Builder

	if redraw {
		s.WriteString(clearScreen)
	}
	s.WriteString(cursorHome)

	cols, rows := trm.geometry()
	if cols < minCols || rows < minRows {
		s.WriteString(fmt.Sprintf("terminal too small (%dx%d). need %dx%d", cols, rows, minCols, minRows))
		s.WriteString(clearLine)
		trm.print(s.String())
		return nil
	}

	s.WriteString(renderBlocks(px))

	s.WriteString(inversePen)
	s.WriteString(trm.title)
	switch trm.state {
	case govern.Paused:
		s.WriteString(" [paused]")
	case govern.Halted:
		s.WriteString(" [halted]")
	}
	s.WriteString(normalPen)
	s.WriteString(clearLine)

	trm.print(s.String())

	return nil
}

func (trm *Terminal) print(s string) {
	_, _ = trm.output.WriteString(s)
}

// Destroy implements the gui.GUI interface.
func (trm *Terminal) Destroy() {
	close(trm.quit)
	trm.wg.Wait()

	_ = trm.tty.Restore()
	_ = trm.tty.Close()

	trm.print(normalPen + showCursor + newLine)
}
