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


package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/gopherchip8/gopherchip8/beeper"
	"github.com/gopherchip8/gopherchip8/curated"
)

// the length of the buffer to use for the digest. the first sha1.Size bytes
// are reserved for the previous digest value
const audioBufferLength = sha1.Size + beeper.SamplesPerFrame

// Audio implements the gui.AudioMixer interface.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
	ended    bool
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: sha1.Size,
	}
}

// Hash implements digest.Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.bufferCt = sha1.Size
	dig.ended = false
}

// SetAudio implements the gui.AudioMixer interface.
func (dig *Audio) SetAudio(samples []uint8) error {
	if dig.ended {
		return curated.Errorf("digest: audio: mixing has ended")
	}

	for _, s := range samples {
		dig.buffer[dig.bufferCt] = s
		dig.bufferCt++
		if dig.bufferCt >= audioBufferLength {
			dig.flush()
		}
	}

	return nil
}

func (dig *Audio) flush() {
	// the unused part of a partial buffer keeps the samples from the
	// previous flush
	dig.digest = sha1.Sum(dig.buffer)
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = sha1.Size
}

// EndMixing implements the gui.AudioMixer interface. Any partially filled
// buffer is added to the fingerprint.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt > sha1.Size {
		dig.flush()
	}
	dig.ended = true
	return nil
}
