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

	"github.com/gopherchip8/gopherchip8/hardware/display"
)

// Video fingerprints the frames of the display.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	// length of pixels array contains enough room for the previous frame's
	// digest value
	return &Video{
		pixels: make([]byte, sha1.Size+display.Width*display.Height),
	}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// Frames returns the number of frames included in the fingerprint.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// Render adds a frame to the fingerprint. Every frame is added regardless of
// the dirty argument.
func (dig *Video) Render(px display.Pixels, _ bool) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	i := copy(dig.pixels, dig.digest[:])

	for y := range px {
		for x := range px[y] {
			if px[y][x] {
				dig.pixels[i] = 1
			} else {
				dig.pixels[i] = 0
			}
			i++
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++

	return nil
}
