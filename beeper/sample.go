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

package beeper

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/gopherchip8/gopherchip8/logger"
)

// NewBeeperFromFile creates a Beeper that plays the sample in the named file.
// Supported file types are WAV and MP3. Only the first channel of a stereo
// file is used.
func NewBeeperFromFile(filename string) (*Beeper, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("beeper: %w", err)
	}
	defer f.Close()

	var data []float32
	var sampleRate int

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		data, sampleRate, err = decodeWAV(f)
	case ".mp3":
		data, sampleRate, err = decodeMP3(f)
	default:
		return nil, fmt.Errorf("beeper: unsupported file type (%s)", filepath.Ext(filename))
	}
	if err != nil {
		return nil, fmt.Errorf("beeper: %w", err)
	}

	if len(data) == 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("beeper: %s contains no audio", filename)
	}

	bpr := &Beeper{
		tone: resample(data, sampleRate),
	}

	logger.Logf(logger.Allow, "beeper", "tone from %s (%d samples at %dHz)", filepath.Base(filename), len(data), sampleRate)

	return bpr, nil
}

// decodeWAV returns normalised mono data.
func decodeWAV(r io.ReadSeeker) ([]float32, int, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return nil, 0, fmt.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("wav: not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wav: %w", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	depth := int(dec.BitDepth)
	if depth < 8 {
		return nil, 0, fmt.Errorf("wav: unsupported bit depth (%d)", depth)
	}
	scale := float32(int(1) << (depth - 1))

	floatBuf := buf.AsFloat32Buffer()

	// copy first channel only of data stream
	data := make([]float32, 0, len(floatBuf.Data)/chans)
	for i := 0; i < len(floatBuf.Data); i += chans {
		v := floatBuf.Data[i]

		// 8bit wav data is unsigned
		if depth == 8 {
			v -= scale
		}

		data = append(data, v/scale)
	}

	return data, int(dec.SampleRate), nil
}

// decodeMP3 returns normalised mono data.
func decodeMP3(r io.Reader) ([]float32, int, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("mp3: %w", err)
	}

	var data []float32

	// the stream is always 16bit little endian stereo. a sample is therefore
	// four bytes and we only want the left channel
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			f := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			data = append(data, float32(f)/32768)
		}

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("mp3: %w", err)
		}
	}

	return data, dec.SampleRate(), nil
}

// resample converts normalised data at the sample rate to unsigned 8bit
// samples at SampleFreq.
func resample(data []float32, sampleRate int) []uint8 {
	n := int(int64(len(data)) * SampleFreq / int64(sampleRate))
	if n < 1 {
		n = 1
	}

	tone := make([]uint8, n)
	for i := range tone {
		v := data[int64(i)*int64(sampleRate)/SampleFreq]
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		tone[i] = uint8(int(Silence) + int(v*127))
	}

	return tone
}
