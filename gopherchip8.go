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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/gopherchip8/gopherchip8/beeper"
	"github.com/gopherchip8/gopherchip8/digest"
	"github.com/gopherchip8/gopherchip8/gui"
	"github.com/gopherchip8/gopherchip8/gui/sdlaudio"
	"github.com/gopherchip8/gopherchip8/gui/sdlplay"
	"github.com/gopherchip8/gopherchip8/gui/terminal"
	"github.com/gopherchip8/gopherchip8/hardware"
	"github.com/gopherchip8/gopherchip8/hardware/instance"
	"github.com/gopherchip8/gopherchip8/hardware/preferences"
	"github.com/gopherchip8/gopherchip8/hardware/timers"
	"github.com/gopherchip8/gopherchip8/logger"
	"github.com/gopherchip8/gopherchip8/modalflag"
	"github.com/gopherchip8/gopherchip8/performance"
	"github.com/gopherchip8/gopherchip8/playmode"
	"github.com/gopherchip8/gopherchip8/prefs"
	"github.com/gopherchip8/gopherchip8/regression"
	"github.com/gopherchip8/gopherchip8/romloader"
	"github.com/gopherchip8/gopherchip8/statsview"
	"github.com/gopherchip8/gopherchip8/version"
	"github.com/gopherchip8/gopherchip8/wavwriter"
)

// #mainthread
//
// SDL requires that calls are made from the main thread. the main goroutine
// is locked to the main thread before main() is called.
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "PERFORMANCE", "DIGEST", "REGRESS", "VERSION")
	md.DescribeSubMode("RUN", "run ROM in a window")
	md.DescribeSubMode("TERM", "run ROM in the terminal")
	md.DescribeSubMode("PERFORMANCE", "measure emulation speed")
	md.DescribeSubMode("DIGEST", "fingerprint the video and audio output of a ROM")
	md.DescribeSubMode("REGRESS", "run or manage the regression database")
	md.DescribeSubMode("VERSION", "show version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "TERM":
		err = term(md)

	case "PERFORMANCE":
		err = perform(md)

	case "DIGEST":
		err = fingerprint(md)

	case "REGRESS":
		err = regress(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// flags common to all modes that create a machine.
type commonFlags struct {
	speed *int
	prefs *string
	log   *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		speed: md.AddInt("speed", 0, "instructions per second. zero for the saved preference"),
		prefs: md.AddString("prefs", "", "session preferences (key::value; key::value)"),
		log:   md.AddBool("log", false, "echo debugging log"),
	}
}

// newPreferences loads the preferences from disk and applies the session
// preferences from the command line.
func newPreferences(cf commonFlags) (*preferences.Preferences, error) {
	prefs.PushCommandLineStack(*cf.prefs)

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused session preferences: %s", unused)
	}

	if *cf.speed > 0 {
		perFrame := *cf.speed / timers.TickRate
		if perFrame < 1 {
			perFrame = 1
		}
		err = p.Speed.Set(perFrame)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// newMachine creates a machine and attaches the ROM named in the remaining
// arguments.
func newMachine(md *modalflag.Modes, cf commonFlags, label instance.Label) (*hardware.Machine, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("ROM required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	p, err := newPreferences(cf)
	if err != nil {
		return nil, err
	}

	m, err := hardware.NewMachine(label, p)
	if err != nil {
		return nil, err
	}

	err = m.AttachROM(romloader.NewLoader(md.GetArg(0)))
	if err != nil {
		return nil, err
	}

	return m, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	cf := addCommonFlags(md)
	scale := md.AddInt("scale", 16, "window scaling")
	wav := md.AddString("wav", "", "record audio to wav file")
	tone := md.AddString("tone", "", "WAV or MP3 file to use as the beep")
	viz := md.AddString("memviz", "", "write graphviz dump of the machine to file on exit")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *cf.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	m, err := newMachine(md, cf, instance.Main)
	if err != nil {
		return err
	}

	var mixers []gui.AudioMixer

	aud, err := sdlaudio.NewAudio()
	if err != nil {
		logger.Logf(logger.Allow, "gopherchip8", "no audio: %v", err)
	} else {
		mixers = append(mixers, aud)
	}

	// add wavwriter mixer if wav argument has been specified
	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		mixers = append(mixers, aw)
	}

	var bpr *beeper.Beeper
	if *tone != "" {
		bpr, err = beeper.NewBeeperFromFile(*tone)
		if err != nil {
			return err
		}
	}

	scr, err := sdlplay.NewSdlPlay(*scale, m.ROM().ShortName())
	if err != nil {
		return err
	}
	defer scr.Destroy()

	err = playmode.Play(m, scr, bpr, mixers...)

	if *viz != "" {
		if err := writeMemviz(*viz, m); err != nil {
			logger.Logf(logger.Allow, "memviz", "%v", err)
		}
	}

	return err
}

func term(md *modalflag.Modes) error {
	md.NewMode()

	cf := addCommonFlags(md)
	wav := md.AddString("wav", "", "record audio to wav file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the log would interfere with the display. it is written to stderr
	// on exit instead
	logger.SetEcho(nil)
	if *cf.log {
		defer logger.Write(os.Stderr)
	}

	m, err := newMachine(md, cf, instance.Main)
	if err != nil {
		return err
	}

	var mixers []gui.AudioMixer
	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		mixers = append(mixers, aw)
	}

	scr, err := terminal.NewTerminal(m.ROM().ShortName())
	if err != nil {
		return err
	}
	defer scr.Destroy()

	return playmode.Play(m, scr, nil, mixers...)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	cf := addCommonFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration (with an additional 2 seconds of lead time)")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *cf.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pr, err := newPreferences(cf)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, romloader.NewLoader(md.GetArg(0)), pr, duration.String())
}

// fingerprint runs the ROM without a GUI for a fixed number of frames and
// prints the digest of the video and audio output. random numbers are
// generated from a zero seed so the result is repeatable.
func fingerprint(md *modalflag.Modes) error {
	md.NewMode()

	cf := addCommonFlags(md)
	frames := md.AddInt("frames", 600, "number of frames to run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *cf.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	m, err := newMachine(md, cf, instance.Main)
	if err != nil {
		return err
	}
	m.Instance.Random.ZeroSeed = true

	vid, aud, err := digest.Run(m, *frames)
	if err != nil {
		return err
	}

	fmt.Printf("video: %s\n", vid.Hash())
	fmt.Printf("audio: %s\n", aud.Hash())
	fmt.Printf("%d frames, %d instructions\n", m.Frame(), m.Cycles())

	return nil
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		logger.SetEcho(nil)

		return regression.RegressRun(md.Output, regression.DBFile(), *verbose, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(md.Output, regression.DBFile())

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
		default:
			return fmt.Errorf("only one entry can be deleted at at time")
		}

		// use stdin for confirmation unless "yes" flag has been sent
		var confirmation io.Reader
		if *answerYes {
			confirmation = strings.NewReader("y")
		} else {
			confirmation = os.Stdin
		}

		return regression.RegressDelete(md.Output, confirmation, regression.DBFile(), md.GetArg(0))

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	mode := md.AddString("mode", "both", "type of digest to record: VIDEO, AUDIO or BOTH")
	notes := md.AddString("notes", "", "additional annotation for the database")
	frames := md.AddInt("frames", 600, "number of frames to run")
	speed := md.AddInt("speed", 0, "instructions per frame. zero for the default speed")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(
		`The regression entry is run with default preferences. The -speed flag is the
only preference that is recorded with the entry.

Note that asking for log output will suppress regression progress meters.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
		md.Output = io.Discard
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}

	dm, err := regression.ParseDigestMode(*mode)
	if err != nil {
		return err
	}

	reg := &regression.DigestRegression{
		ROM:    romloader.NewLoader(md.GetArg(0)),
		Mode:   dm,
		Frames: *frames,
		Speed:  *speed,
		Notes:  *notes,
	}

	err = regression.RegressAdd(md.Output, regression.DBFile(), reg)
	if err != nil {
		return fmt.Errorf("error adding regression test: %w", err)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Println(version.Banner())

	if *revision {
		v, r, release := version.Version()
		fmt.Printf("version: %s\n", v)
		fmt.Printf("revision: %s\n", r)
		fmt.Printf("release: %v\n", release)
	}

	return nil
}

func writeMemviz(filename string, m *hardware.Machine) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	memviz.Map(f, m)

	return nil
}
