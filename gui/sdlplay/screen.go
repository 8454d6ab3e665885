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
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/gopherchip8/gopherchip8/hardware/display"
)

const vertexShader = `#version 150 core
in vec2 Position;
in vec2 UV;
out vec2 Frag_UV;
void main()
{
	Frag_UV = UV;
	gl_Position = vec4(Position, 0.0, 1.0);
}`

const fragmentShader = `#version 150 core
uniform sampler2D Texture;
in vec2 Frag_UV;
out vec4 Out_Color;
void main()
{
	Out_Color = texture(Texture, Frag_UV);
}`

// a quad drawn as a triangle strip. each vertex is position (x, y) and
// texture coordinate (u, v). the first row of the texture is the top of the
// display
var quad = []float32{
	-1.0, 1.0, 0.0, 0.0,
	-1.0, -1.0, 0.0, 1.0,
	1.0, 1.0, 1.0, 0.0,
	1.0, -1.0, 1.0, 1.0,
}

const vertexSize = 4 * 4

type screen struct {
	handle  uint32
	vao     uint32
	vbo     uint32
	texture uint32

	position int32
	uv       int32
	sampler  int32
}

func newScreen() (*screen, error) {
	sh := &screen{}

	err := sh.createProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}

	gl.GenVertexArrays(1, &sh.vao)
	gl.BindVertexArray(sh.vao)

	gl.GenBuffers(1, &sh.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(uint32(sh.position))
	gl.VertexAttribPointerWithOffset(uint32(sh.position), 2, gl.FLOAT, false, vertexSize, 0)
	gl.EnableVertexAttribArray(uint32(sh.uv))
	gl.VertexAttribPointerWithOffset(uint32(sh.uv), 2, gl.FLOAT, false, vertexSize, 2*4)

	gl.GenTextures(1, &sh.texture)
	gl.BindTexture(gl.TEXTURE_2D, sh.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, display.Width, display.Height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)

	return sh, nil
}

func (sh *screen) destroy() {
	gl.DeleteTextures(1, &sh.texture)
	gl.DeleteBuffers(1, &sh.vbo)
	gl.DeleteVertexArrays(1, &sh.vao)
	gl.DeleteProgram(sh.handle)
}

// compile and link shader programs.
func (sh *screen) createProgram(vertProgram string, fragProgram string) error {
	sh.handle = gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()

		gl.ShaderSource(handle, 1, csource, nil)
	}

	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, fragProgram)

	gl.CompileShader(vertHandle)
	if log := getShaderCompileError(vertHandle); log != "" {
		return fmt.Errorf("vertex shader: %s", log)
	}

	gl.CompileShader(fragHandle)
	if log := getShaderCompileError(fragHandle); log != "" {
		return fmt.Errorf("fragment shader: %s", log)
	}

	gl.AttachShader(sh.handle, vertHandle)
	gl.AttachShader(sh.handle, fragHandle)
	gl.LinkProgram(sh.handle)

	// now that the shader program has linked we no longer need the
	// individual shader programs
	gl.DeleteShader(fragHandle)
	gl.DeleteShader(vertHandle)

	var linked int32
	gl.GetProgramiv(sh.handle, gl.LINK_STATUS, &linked)
	if linked == 0 {
		return fmt.Errorf("shader program did not link")
	}

	// get references to shader attributes and uniforms variables
	sh.position = gl.GetAttribLocation(sh.handle, gl.Str("Position"+"\x00"))
	sh.uv = gl.GetAttribLocation(sh.handle, gl.Str("UV"+"\x00"))
	sh.sampler = gl.GetUniformLocation(sh.handle, gl.Str("Texture"+"\x00"))

	return nil
}

// getShaderCompileError returns the most recent error generated by the
// shader compiler.
func getShaderCompileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// the length includes the NULL character
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return strings.TrimRight(log, "\x00")
		}
		return "unknown error"
	}
	return ""
}

// render pixels to a drawable area of width and height. the display is
// centered and keeps its aspect ratio.
func (sh *screen) render(pixels []byte, width int32, height int32) {
	gl.Viewport(0, 0, width, height)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	x, y, w, h := letterbox(width, height)
	gl.Viewport(x, y, w, h)

	gl.UseProgram(sh.handle)
	gl.Uniform1i(sh.sampler, 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, sh.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0,
		0, 0, display.Width, display.Height,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(pixels))

	gl.BindVertexArray(sh.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// letterbox returns the largest area of the drawable that has the same
// aspect ratio as the display.
func letterbox(width int32, height int32) (x, y, w, h int32) {
	w = width
	h = width * display.Height / display.Width
	if h > height {
		h = height
		w = height * display.Width / display.Height
	}
	x = (width - w) / 2
	y = (height - h) / 2
	return x, y, w, h
}
