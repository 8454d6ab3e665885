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


package regression

import (
	"fmt"
	"strconv"

	"github.com/gopherchip8/gopherchip8/curated"
	"github.com/gopherchip8/gopherchip8/database"
	"github.com/gopherchip8/gopherchip8/digest"
	"github.com/gopherchip8/gopherchip8/hardware"
	"github.com/gopherchip8/gopherchip8/hardware/instance"
	"github.com/gopherchip8/gopherchip8/romloader"
)

const digestEntryType = "digest"

const (
	digestFieldROM int = iota
	digestFieldMode
	digestFieldFrames
	digestFieldSpeed
	digestFieldVideo
	digestFieldAudio
	digestFieldNotes
	numDigestFields
)

// DigestRegression is the simplest regression type. It runs a ROM for a
// fixed number of frames and compares the fingerprint of the output with the
// recorded value.
type DigestRegression struct {
	ROM    romloader.Loader
	Mode   DigestMode
	Frames int

	// instructions per frame. zero means the default speed
	Speed int

	Notes string

	videoDigest string
	audioDigest string
}

func deserialiseDigestEntry(fields []string) (database.Entry, error) {
	if len(fields) != numDigestFields {
		return nil, curated.Errorf("regression: digest: wrong number of fields (%d)", len(fields))
	}

	reg := &DigestRegression{
		ROM:         romloader.NewLoader(fields[digestFieldROM]),
		Notes:       fields[digestFieldNotes],
		videoDigest: fields[digestFieldVideo],
		audioDigest: fields[digestFieldAudio],
	}

	var err error

	reg.Mode, err = ParseDigestMode(fields[digestFieldMode])
	if err != nil {
		return nil, err
	}

	reg.Frames, err = strconv.Atoi(fields[digestFieldFrames])
	if err != nil {
		return nil, curated.Errorf("regression: digest: invalid frames field (%s)", fields[digestFieldFrames])
	}

	reg.Speed, err = strconv.Atoi(fields[digestFieldSpeed])
	if err != nil {
		return nil, curated.Errorf("regression: digest: invalid speed field (%s)", fields[digestFieldSpeed])
	}

	return reg, nil
}

// EntryType implements the database.Entry interface.
func (reg DigestRegression) EntryType() string {
	return digestEntryType
}

// Serialise implements the database.Entry interface.
func (reg *DigestRegression) Serialise() ([]string, error) {
	return []string{
		reg.ROM.Filename,
		reg.Mode.String(),
		strconv.Itoa(reg.Frames),
		strconv.Itoa(reg.Speed),
		reg.videoDigest,
		reg.audioDigest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg DigestRegression) CleanUp() error {
	return nil
}

func (reg DigestRegression) String() string {
	s := fmt.Sprintf("[%s] %s frames=%d", reg.Mode, reg.ROM.ShortName(), reg.Frames)
	if reg.Speed > 0 {
		s = fmt.Sprintf("%s speed=%d", s, reg.Speed)
	}
	if reg.Notes != "" {
		s = fmt.Sprintf("%s [%s]", s, reg.Notes)
	}
	return s
}

// regress implements the regressor interface.
func (reg *DigestRegression) regress(newRegression bool) (bool, string, error) {
	if reg.Mode == DigestUndefined {
		return false, "", curated.Errorf("regression: digest: undefined digest mode")
	}

	if reg.Frames < 1 {
		return false, "", curated.Errorf("regression: digest: number of frames must be at least one")
	}

	m, err := hardware.NewMachine(instance.Regression, nil)
	if err != nil {
		return false, "", curated.Errorf("regression: digest: %v", err)
	}
	m.Instance.Normalise()

	if reg.Speed > 0 {
		err = m.Instance.Prefs.Speed.Set(reg.Speed)
		if err != nil {
			return false, "", curated.Errorf("regression: digest: %v", err)
		}
	}

	err = m.AttachROM(reg.ROM)
	if err != nil {
		return false, "", curated.Errorf("regression: digest: %v", err)
	}

	vid, aud, err := digest.Run(m, reg.Frames)
	if err != nil {
		return false, "", curated.Errorf("regression: digest: %v", err)
	}

	var videoDigest, audioDigest string
	if reg.Mode == DigestVideoOnly || reg.Mode == DigestBoth {
		videoDigest = vid.Hash()
	}
	if reg.Mode == DigestAudioOnly || reg.Mode == DigestBoth {
		audioDigest = aud.Hash()
	}

	if newRegression {
		reg.videoDigest = videoDigest
		reg.audioDigest = audioDigest
		return true, "", nil
	}

	if videoDigest != reg.videoDigest {
		return false, "video digest mismatch", nil
	}

	if audioDigest != reg.audioDigest {
		return false, "audio digest mismatch", nil
	}

	return true, "", nil
}
