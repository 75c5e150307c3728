// Package glcore implements render.Context with the go-gl OpenGL 4.1 core
// bindings. A context must be current on the calling thread.
package glcore

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/samuelyuan/go-openglproject/render"
)

var _ render.Context = (*Context)(nil)

type Context struct{}

// New loads the GL function pointers for the current context.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("Could not initialize OpenGL: %v", err)
	}
	return &Context{}, nil
}

func (Context) GetError() uint32 {
	return gl.GetError()
}

func (Context) GetString(name uint32) string {
	return gl.GoStr(gl.GetString(name))
}

func (Context) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (Context) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (Context) BindBuffer(target uint32, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (Context) BufferData(target uint32, data []byte, usage uint32) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(target, len(data), ptr, usage)
}

func (Context) GenVertexArray() uint32 {
	var array uint32
	gl.GenVertexArrays(1, &array)
	return array
}

func (Context) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (Context) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (Context) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

func (Context) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (Context) GetShaderiv(shader uint32, pname uint32) int32 {
	var value int32
	gl.GetShaderiv(shader, pname, &value)
	return value
}

func (Context) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Context) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Context) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (Context) GetProgramiv(program uint32, pname uint32) int32 {
	var value int32
	gl.GetProgramiv(program, pname, &value)
	return value
}

func (Context) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Context) Uniform1i(location int32, v0 int32) {
	gl.Uniform1i(location, v0)
}

func (Context) Uniform1f(location int32, v0 float32) {
	gl.Uniform1f(location, v0)
}

func (Context) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (Context) UniformMatrix4fv(location int32, transpose bool, value [16]float32) {
	gl.UniformMatrix4fv(location, 1, transpose, &value[0])
}

func (Context) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (Context) Clear(mask uint32) {
	gl.Clear(mask)
}

func (Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Context) DrawArrays(mode uint32, first int32, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (Context) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(int(offset)))
}
