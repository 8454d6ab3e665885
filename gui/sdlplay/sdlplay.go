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

package sdlplay

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/gopherchip8/gopherchip8/govern"
	"github.com/gopherchip8/gopherchip8/hardware/display"
	"github.com/gopherchip8/gopherchip8/logger"
	"github.com/gopherchip8/gopherchip8/version"
)

const pixelDepth = 4

// colours of lit and unlit pixels.
var (
	onColor  = [pixelDepth]uint8{0xe8, 0xe8, 0xd0, 0xff}
	offColor = [pixelDepth]uint8{0x18, 0x18, 0x20, 0xff}
)

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	window    *sdl.Window
	glContext sdl.GLContext
	scr       *screen

	// pixels is the byte array that we copy to the texture
	pixels []byte

	// the display needs to be redrawn even if the pixels have not changed.
	// for example, after the window has been resized
	redraw bool

	title string
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The scale argument is the size of each display pixel in the initial window.
func NewSdlPlay(scale int, romName string) (*SdlPlay, error) {
	if scale < 1 {
		scale = 1
	}

	scr := &SdlPlay{
		pixels: make([]byte, display.Width*display.Height*pixelDepth),
		redraw: true,
		title:  fmt.Sprintf("%s - %s", version.ApplicationName, romName),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	scr.window, err = sdl.CreateWindow(scr.title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(display.Width*scale), int32(display.Height*scale),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.glContext, err = scr.window.GLCreateContext()
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlplay: failed to create OpenGL context: %w", err)
	}

	err = scr.window.GLMakeCurrent(scr.glContext)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlplay: failed to set current OpenGL context: %w", err)
	}

	err = gl.Init()
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// the frame limiter in the driving loop governs the frame rate
	_ = sdl.GLSetSwapInterval(0)

	scr.scr, err = newScreen()
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	logger.Logf(logger.Allow, "sdlplay", "OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return scr, nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	if scr.scr != nil {
		scr.scr.destroy()
		scr.scr = nil
	}
	if scr.glContext != nil {
		sdl.GLDeleteContext(scr.glContext)
		scr.glContext = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// SetState implements the gui.GUI interface.
func (scr *SdlPlay) SetState(state govern.State) {
	switch state {
	case govern.Paused:
		scr.window.SetTitle(fmt.Sprintf("%s [paused]", scr.title))
	case govern.Halted:
		scr.window.SetTitle(fmt.Sprintf("%s [halted]", scr.title))
	default:
		scr.window.SetTitle(scr.title)
	}
}

// Render implements the gui.GUI interface.
func (scr *SdlPlay) Render(px display.Pixels, dirty bool) error {
	if !dirty && !scr.redraw {
		return nil
	}
	scr.redraw = false

	i := 0
	for y := range px {
		for x := range px[y] {
			if px[y][x] {
				copy(scr.pixels[i:], onColor[:])
			} else {
				copy(scr.pixels[i:], offColor[:])
			}
			i += pixelDepth
		}
	}

	w, h := scr.window.GLGetDrawableSize()
	scr.scr.render(scr.pixels, w, h)
	scr.window.GLSwap()

	return nil
}
