// Command quad draws an indexed quad from raw buffer handles. Every GL call
// goes through the error check.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/samuelyuan/go-openglproject/config"
	"github.com/samuelyuan/go-openglproject/render"
	"github.com/samuelyuan/go-openglproject/render/glcore"
	"github.com/samuelyuan/go-openglproject/window"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	vertexPath := flag.String("vert", "assets/shaders/FlatColor.shader.vert", "vertex shader source")
	fragmentPath := flag.String("frag", "assets/shaders/FlatColor.shader.frag", "fragment shader source")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	render.SetLogger(logger)

	windowHandler, err := window.NewWindowHandler(cfg, logger)
	if err != nil {
		panic(err)
	}
	defer windowHandler.Terminate()

	glContext, err := glcore.New()
	if err != nil {
		panic(err)
	}
	device := render.NewDevice(glContext)
	gl := device.GL

	var version string
	device.Call("GetString", func() { version = gl.GetString(render.VERSION) })
	logger.Info("OpenGL version " + version)

	windowHandler.OnResize(func(width, height int) {
		device.Call("Viewport", func() { gl.Viewport(0, 0, int32(width), int32(height)) })
	})

	positions := []float32{
		-0.5, -0.5, // vertex index: 0
		0.5, -0.5, // vertex index: 1
		0.5, 0.5, // vertex index: 2
		-0.5, 0.5, // vertex index: 3
	}
	indices := []uint32{
		0, 1, 2,
		2, 3, 0,
	}

	var vao, vbo, ibo uint32
	device.Call("GenVertexArrays", func() { vao = gl.GenVertexArray() })
	device.Call("BindVertexArray", func() { gl.BindVertexArray(vao) })

	device.Call("GenBuffers", func() { vbo = gl.GenBuffer() })
	device.Call("BindBuffer", func() { gl.BindBuffer(render.ARRAY_BUFFER, vbo) })
	device.Call("BufferData", func() {
		gl.BufferData(render.ARRAY_BUFFER, render.Float32Bytes(positions), render.STATIC_DRAW)
	})

	device.Call("EnableVertexAttribArray", func() { gl.EnableVertexAttribArray(0) })
	device.Call("VertexAttribPointer", func() {
		gl.VertexAttribPointer(0, 2, render.FLOAT, false, 2*render.FLOAT_SIZE, 0)
	})

	device.Call("GenBuffers", func() { ibo = gl.GenBuffer() })
	device.Call("BindBuffer", func() { gl.BindBuffer(render.ELEMENT_ARRAY_BUFFER, ibo) })
	device.Call("BufferData", func() {
		gl.BufferData(render.ELEMENT_ARRAY_BUFFER, render.Uint32Bytes(indices), render.STATIC_DRAW)
	})

	shader, err := render.NewShaderFromFiles(device, *vertexPath, *fragmentPath)
	if err != nil {
		panic(err)
	}
	defer shader.Delete()
	shader.Bind()

	clearColor := cfg.Clear()
	device.Call("ClearColor", func() { gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3]) })

	for !windowHandler.ShouldClose() {
		device.Call("Clear", func() { gl.Clear(render.COLOR_BUFFER_BIT) })
		device.Call("DrawElements", func() {
			gl.DrawElements(render.TRIANGLES, int32(len(indices)), render.UNSIGNED_INT, 0)
		})

		windowHandler.StartFrame()
	}

	device.Call("DeleteBuffers", func() { gl.DeleteBuffer(ibo) })
	device.Call("DeleteBuffers", func() { gl.DeleteBuffer(vbo) })
	device.Call("DeleteVertexArrays", func() { gl.DeleteVertexArray(vao) })
}
