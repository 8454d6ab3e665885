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

// Package beeper generates the audio for the machine's sound timer. While the
// sound timer is active a tone is output. The tone is either a 700Hz square
// wave or a sample loaded from a WAV or MP3 file.
//
// Audio is generated one frame at a time. Each call to Frame() returns
// SamplesPerFrame unsigned 8bit mono samples at SampleFreq. The value
// Silence is the mid-point of the waveform.
package beeper
