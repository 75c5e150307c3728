package render

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// CompileError carries the compiler log of a failed shader stage.
type CompileError struct {
	Stage uint32
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("Failed to compile %v shader: %v", StageName(e.Stage), e.Log)
}

// LinkError carries the linker log of a failed program.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("Failed to link shader program: %v", e.Log)
}

func StageName(stage uint32) string {
	switch stage {
	case VERTEX_SHADER:
		return "vertex"
	case FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%04X", stage)
}

// Shader is a linked program made of a vertex and a fragment stage.
type Shader struct {
	device *Device
	handle uint32
}

// CompileShader compiles one stage. On failure the shader object is deleted
// and the returned handle is 0.
func CompileShader(d *Device, stage uint32, source string) (uint32, error) {
	gl := d.GL

	var shader uint32
	d.Call("CreateShader", func() { shader = gl.CreateShader(stage) })
	d.Call("ShaderSource", func() { gl.ShaderSource(shader, source) })
	d.Call("CompileShader", func() { gl.CompileShader(shader) })

	var status int32
	d.Call("GetShaderiv", func() { status = gl.GetShaderiv(shader, COMPILE_STATUS) })
	if status == FALSE {
		var log string
		d.Call("GetShaderInfoLog", func() { log = gl.GetShaderInfoLog(shader) })

		Logger().Error("Failed to compile "+StageName(stage)+" shader", "log", log)
		d.Call("DeleteShader", func() { gl.DeleteShader(shader) })
		return 0, &CompileError{Stage: stage, Log: log}
	}

	return shader, nil
}

// NewShader compiles both stages and links them into a program. The stage
// objects are deleted once linked.
func NewShader(d *Device, vertexSource string, fragmentSource string) (*Shader, error) {
	gl := d.GL

	vs, err := CompileShader(d, VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, err
	}
	fs, err := CompileShader(d, FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		d.Call("DeleteShader", func() { gl.DeleteShader(vs) })
		return nil, err
	}

	var program uint32
	d.Call("CreateProgram", func() { program = gl.CreateProgram() })
	d.Call("AttachShader", func() { gl.AttachShader(program, vs) })
	d.Call("AttachShader", func() { gl.AttachShader(program, fs) })
	d.Call("LinkProgram", func() { gl.LinkProgram(program) })

	// Stages are no longer needed whether or not linking worked
	d.Call("DeleteShader", func() { gl.DeleteShader(vs) })
	d.Call("DeleteShader", func() { gl.DeleteShader(fs) })

	var status int32
	d.Call("GetProgramiv", func() { status = gl.GetProgramiv(program, LINK_STATUS) })
	if status == FALSE {
		var log string
		d.Call("GetProgramInfoLog", func() { log = gl.GetProgramInfoLog(program) })

		Logger().Error("Failed to link shader program", "log", log)
		d.Call("DeleteProgram", func() { gl.DeleteProgram(program) })
		return nil, &LinkError{Log: log}
	}

	d.Call("ValidateProgram", func() { gl.ValidateProgram(program) })

	return &Shader{device: d, handle: program}, nil
}

// NewShaderFromFiles loads both stages from disk and builds the program.
func NewShaderFromFiles(d *Device, vertexPath string, fragmentPath string) (*Shader, error) {
	vertexSource, err := LoadShaderSource(vertexPath)
	if err != nil {
		return nil, err
	}
	fragmentSource, err := LoadShaderSource(fragmentPath)
	if err != nil {
		return nil, err
	}
	return NewShader(d, vertexSource, fragmentSource)
}

// LoadShaderSource reads a shader file, ending every line with a newline.
func LoadShaderSource(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open shader source: %w", err)
	}
	defer file.Close()

	var source strings.Builder
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		source.WriteString(scanner.Text())
		source.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read shader source %v: %w", path, err)
	}
	return source.String(), nil
}

func (s *Shader) Bind() {
	s.device.Call("UseProgram", func() { s.device.GL.UseProgram(s.handle) })
}

func (s *Shader) Unbind() {
	s.device.Call("UseProgram", func() { s.device.GL.UseProgram(0) })
}

// Delete releases the program. Later calls do nothing.
func (s *Shader) Delete() {
	if s.handle == 0 {
		return
	}
	s.device.Call("DeleteProgram", func() { s.device.GL.DeleteProgram(s.handle) })
	s.handle = 0
}

func (s *Shader) Handle() uint32 {
	return s.handle
}

// The uniform setters expect the shader to be bound.

func (s *Shader) SetUniform1i(name string, v int32) {
	location := s.uniformLocation(name)
	s.device.Call("Uniform1i", func() { s.device.GL.Uniform1i(location, v) })
}

func (s *Shader) SetUniform1f(name string, v float32) {
	location := s.uniformLocation(name)
	s.device.Call("Uniform1f", func() { s.device.GL.Uniform1f(location, v) })
}

func (s *Shader) SetUniform4f(name string, v0, v1, v2, v3 float32) {
	location := s.uniformLocation(name)
	s.device.Call("Uniform4f", func() { s.device.GL.Uniform4f(location, v0, v1, v2, v3) })
}

func (s *Shader) SetUniformVec4(name string, v mgl32.Vec4) {
	s.SetUniform4f(name, v[0], v[1], v[2], v[3])
}

func (s *Shader) SetUniformMat4(name string, m mgl32.Mat4) {
	location := s.uniformLocation(name)
	s.device.Call("UniformMatrix4fv", func() { s.device.GL.UniformMatrix4fv(location, false, m) })
}

// A location of -1 makes the setters silently do nothing in GL, so the
// lookup warns about it.
func (s *Shader) uniformLocation(name string) int32 {
	var location int32
	s.device.Call("GetUniformLocation", func() { location = s.device.GL.GetUniformLocation(s.handle, name) })
	if location == -1 {
		Logger().Warn("uniform doesn't exist", "name", name, "program", s.handle)
	}
	return location
}
