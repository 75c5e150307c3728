// Command triangle draws one triangle straight from a vertex array, with
// the shaders inlined and no error checking.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/samuelyuan/go-openglproject/config"
	"github.com/samuelyuan/go-openglproject/render"
	"github.com/samuelyuan/go-openglproject/window"
)

const (
	vertexShaderSource = `
		#version 330 core
		layout (location = 0) in vec3 aPos;

		void main() {
			gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 330 core
		out vec4 FragColor;

		void main() {
			FragColor = vec4(0.8f, 0.3f, 0.02f, 1.0f);
		}
	` + "\x00"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()

	windowHandler, err := window.NewWindowHandler(cfg, logger)
	if err != nil {
		panic(err)
	}
	defer windowHandler.Terminate()

	if err := gl.Init(); err != nil {
		panic(err)
	}
	logger.Info("OpenGL version " + gl.GoStr(gl.GetString(gl.VERSION)))

	width, height := windowHandler.FramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	windowHandler.OnResize(func(width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	// Equilateral triangle centered on the origin
	sqrt3 := float32(math.Sqrt(3))
	vertices := []float32{
		-0.5, -0.5 * sqrt3 / 3, 0.0,
		0.5, -0.5 * sqrt3 / 3, 0.0,
		0.0, 0.5 * sqrt3 * 2 / 3, 0.0,
	}

	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csources, free := gl.Strs(vertexShaderSource)
	gl.ShaderSource(vertexShader, 1, csources, nil)
	free()
	gl.CompileShader(vertexShader)

	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csources, free = gl.Strs(fragmentShaderSource)
	gl.ShaderSource(fragmentShader, 1, csources, nil)
	free()
	gl.CompileShader(fragmentShader)

	shaderProgram := gl.CreateProgram()
	gl.AttachShader(shaderProgram, vertexShader)
	gl.AttachShader(shaderProgram, fragmentShader)
	gl.LinkProgram(shaderProgram)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	// Create buffers/arrays
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)

	gl.BindVertexArray(vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*render.FLOAT_SIZE, gl.Ptr(vertices), gl.STATIC_DRAW)

	// 3 floats per position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*render.FLOAT_SIZE, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	clearColor := cfg.Clear()
	for !windowHandler.ShouldClose() {
		gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(shaderProgram)
		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)

		windowHandler.StartFrame()
	}

	gl.DeleteVertexArrays(1, &vao)
	gl.DeleteBuffers(1, &vbo)
	gl.DeleteProgram(shaderProgram)
}
