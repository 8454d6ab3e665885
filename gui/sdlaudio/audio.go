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

// Package sdlaudio implements the gui.AudioMixer interface using an SDL audio
// queue.
package sdlaudio

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gopherchip8/gopherchip8/beeper"
	"github.com/gopherchip8/gopherchip8/logger"
)

const bufferLength = 512

// the maximum number of bytes allowed in the queue before audio is dropped.
// a larger value means more latency
const maxQueued = beeper.SamplesPerFrame * 4

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// number of frames dropped because the queue was full
	dropped int
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     beeper.SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the gui.AudioMixer interface.
func (aud *Audio) SetAudio(samples []uint8) error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		aud.dropped++
		return nil
	}

	err := sdl.QueueAudio(aud.id, samples)
	if err != nil {
		return fmt.Errorf("sdlaudio: %w", err)
	}

	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)

	if aud.dropped > 0 {
		logger.Logf(logger.Allow, "sdlaudio", "%d frames of audio dropped", aud.dropped)
	}

	return nil
}
