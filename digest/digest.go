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


// Package digest creates fingerprints of the emulation's output. The Video
// type fingerprints the display and the Audio type fingerprints the audio
// stream.
//
// Each fingerprint is chained: the value of the previous fingerprint forms
// part of the data for the next. Two runs of the same program with the same
// preferences and the same input will produce the same value. A difference
// in any frame will produce a different value.
//
// Fingerprints are useful for regression testing and for confirming that the
// emulation is deterministic.
package digest

// Digest implementations compute a running fingerprint of emulator output.
type Digest interface {
	Hash() string
	ResetDigest()
}
