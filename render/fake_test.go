package render

import (
	"fmt"
	"strings"
)

// fakeContext records every call and hands out sequential handles.
type fakeContext struct {
	calls      []string
	nextHandle uint32

	// Errors returned by GetError, oldest first
	errors []uint32
	// Makes the named call push an error
	failOn map[string]uint32

	linkStatus    int32
	shaderSources map[uint32]string
	uniforms      map[string]int32
	bufferData    map[uint32][]byte
	bound         map[uint32]uint32
	boundArray    uint32
	program       uint32
	deleted       map[uint32]int
	attribs       []attribPointer
	uniformValues map[int32][]float32
}

type attribPointer struct {
	Index      uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		failOn:        map[string]uint32{},
		linkStatus:    TRUE,
		shaderSources: map[uint32]string{},
		uniforms:      map[string]int32{},
		bufferData:    map[uint32][]byte{},
		bound:         map[uint32]uint32{},
		deleted:       map[uint32]int{},
		uniformValues: map[int32][]float32{},
	}
}

func (f *fakeContext) record(call string, args ...interface{}) {
	entry := call
	if len(args) > 0 {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = fmt.Sprint(arg)
		}
		entry += "(" + strings.Join(parts, ",") + ")"
	}
	f.calls = append(f.calls, entry)
	if code, ok := f.failOn[call]; ok {
		f.errors = append(f.errors, code)
	}
}

func (f *fakeContext) handle() uint32 {
	f.nextHandle++
	return f.nextHandle
}

func (f *fakeContext) callNames() []string {
	names := make([]string, len(f.calls))
	for i, call := range f.calls {
		names[i] = strings.SplitN(call, "(", 2)[0]
	}
	return names
}

func (f *fakeContext) GetError() uint32 {
	if len(f.errors) == 0 {
		return NO_ERROR
	}
	code := f.errors[0]
	f.errors = f.errors[1:]
	return code
}

func (f *fakeContext) GetString(name uint32) string {
	f.record("GetString", name)
	return "fake 4.1"
}

func (f *fakeContext) GenBuffer() uint32 {
	f.record("GenBuffer")
	return f.handle()
}

func (f *fakeContext) DeleteBuffer(buffer uint32) {
	f.record("DeleteBuffer", buffer)
	f.deleted[buffer]++
}

func (f *fakeContext) BindBuffer(target uint32, buffer uint32) {
	f.record("BindBuffer", target, buffer)
	f.bound[target] = buffer
}

func (f *fakeContext) BufferData(target uint32, data []byte, usage uint32) {
	f.record("BufferData", target, len(data), usage)
	f.bufferData[f.bound[target]] = append([]byte(nil), data...)
}

func (f *fakeContext) GenVertexArray() uint32 {
	f.record("GenVertexArray")
	return f.handle()
}

func (f *fakeContext) DeleteVertexArray(array uint32) {
	f.record("DeleteVertexArray", array)
	f.deleted[array]++
}

func (f *fakeContext) BindVertexArray(array uint32) {
	f.record("BindVertexArray", array)
	f.boundArray = array
}

func (f *fakeContext) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray", index)
}

func (f *fakeContext) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	f.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
	f.attribs = append(f.attribs, attribPointer{index, size, xtype, normalized, stride, offset})
}

func (f *fakeContext) CreateShader(xtype uint32) uint32 {
	f.record("CreateShader", xtype)
	return f.handle()
}

func (f *fakeContext) ShaderSource(shader uint32, source string) {
	f.record("ShaderSource", shader)
	f.shaderSources[shader] = source
}

func (f *fakeContext) CompileShader(shader uint32) {
	f.record("CompileShader", shader)
}

func (f *fakeContext) GetShaderiv(shader uint32, pname uint32) int32 {
	f.record("GetShaderiv", shader, pname)
	if pname != COMPILE_STATUS {
		return 0
	}
	// Sources containing "error" fail to compile
	if strings.Contains(f.shaderSources[shader], "error") {
		return FALSE
	}
	return TRUE
}

func (f *fakeContext) GetShaderInfoLog(shader uint32) string {
	f.record("GetShaderInfoLog", shader)
	return "0:1(1): error: syntax error"
}

func (f *fakeContext) DeleteShader(shader uint32) {
	f.record("DeleteShader", shader)
	f.deleted[shader]++
}

func (f *fakeContext) CreateProgram() uint32 {
	f.record("CreateProgram")
	return f.handle()
}

func (f *fakeContext) AttachShader(program uint32, shader uint32) {
	f.record("AttachShader", program, shader)
}

func (f *fakeContext) LinkProgram(program uint32) {
	f.record("LinkProgram", program)
}

func (f *fakeContext) ValidateProgram(program uint32) {
	f.record("ValidateProgram", program)
}

func (f *fakeContext) GetProgramiv(program uint32, pname uint32) int32 {
	f.record("GetProgramiv", program, pname)
	if pname == LINK_STATUS {
		return f.linkStatus
	}
	return 0
}

func (f *fakeContext) GetProgramInfoLog(program uint32) string {
	f.record("GetProgramInfoLog", program)
	return "link error: u_Color undefined"
}

func (f *fakeContext) UseProgram(program uint32) {
	f.record("UseProgram", program)
	f.program = program
}

func (f *fakeContext) DeleteProgram(program uint32) {
	f.record("DeleteProgram", program)
	f.deleted[program]++
}

func (f *fakeContext) GetUniformLocation(program uint32, name string) int32 {
	f.record("GetUniformLocation", program, name)
	if location, ok := f.uniforms[name]; ok {
		return location
	}
	return -1
}

func (f *fakeContext) Uniform1i(location int32, v0 int32) {
	f.record("Uniform1i", location, v0)
	f.uniformValues[location] = []float32{float32(v0)}
}

func (f *fakeContext) Uniform1f(location int32, v0 float32) {
	f.record("Uniform1f", location, v0)
	f.uniformValues[location] = []float32{v0}
}

func (f *fakeContext) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	f.record("Uniform4f", location)
	f.uniformValues[location] = []float32{v0, v1, v2, v3}
}

func (f *fakeContext) UniformMatrix4fv(location int32, transpose bool, value [16]float32) {
	f.record("UniformMatrix4fv", location, transpose)
	f.uniformValues[location] = value[:]
}

func (f *fakeContext) ClearColor(red, green, blue, alpha float32) {
	f.record("ClearColor", red, green, blue, alpha)
}

func (f *fakeContext) Clear(mask uint32) {
	f.record("Clear", mask)
}

func (f *fakeContext) Viewport(x, y, width, height int32) {
	f.record("Viewport", x, y, width, height)
}

func (f *fakeContext) DrawArrays(mode uint32, first int32, count int32) {
	f.record("DrawArrays", mode, first, count)
}

func (f *fakeContext) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	f.record("DrawElements", mode, count, xtype, offset)
}

// newTestDevice returns a device whose breakpoint collects errors instead
// of panicking.
func newTestDevice() (*Device, *fakeContext, *[]error) {
	fake := newFakeContext()
	var caught []error
	d := NewDevice(fake, WithBreakpoint(func(err error) {
		caught = append(caught, err)
	}))
	return d, fake, &caught
}
