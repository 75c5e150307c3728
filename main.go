package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/samuelyuan/go-openglproject/config"
	"github.com/samuelyuan/go-openglproject/render"
	"github.com/samuelyuan/go-openglproject/render/glcore"
	"github.com/samuelyuan/go-openglproject/window"
)

var (
	// Two triangles forming a quad
	positions = []float32{
		-0.5, -0.5, // vertex index: 0
		0.5, -0.5, // vertex index: 1
		0.5, 0.5, // vertex index: 2
		-0.5, 0.5, // vertex index: 3
	}
	indices = []uint32{
		0, 1, 2,
		2, 3, 0,
	}
)

func init() {
	// GL and glfw calls must come from the main thread
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
	device := render.NewDevice(glContext, render.WithErrorChecks(cfg.GL.ErrorChecks))

	renderer := render.NewRenderer(device)
	renderer.Init(cfg.Clear())

	va := render.NewVertexArray(device)
	vb := render.NewVertexBuffer(device, positions)
	layout := render.NewVertexBufferLayout().PushFloat(2)
	va.AddBuffer(vb, layout)
	ib := render.NewIndexBuffer(device, indices)
	defer va.Delete()
	defer vb.Delete()
	defer ib.Delete()

	shader, err := render.NewShaderFromFiles(device, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		panic(err)
	}
	defer shader.Delete()

	// Keep the quad square when the window is not
	windowHandler.OnResize(func(width, height int) {
		renderer.Viewport(int32(width), int32(height))
		shader.Bind()
		shader.SetUniformMat4("u_MVP", render.AspectOrtho(width, height))
	})

	shader.Bind()
	shader.SetUniformMat4("u_MVP", render.AspectOrtho(windowHandler.FramebufferSize()))

	// Everything is rebound by Draw
	va.Unbind()
	vb.Unbind()
	ib.Unbind()
	shader.Unbind()

	colorCycler := render.NewColorCycler(mgl32.Vec4{0.0, 0.3, 0.8, 1.0}, 0, 3.0)

	for !windowHandler.ShouldClose() {
		renderer.Clear()

		shader.Bind()
		shader.SetUniformVec4("u_Color", colorCycler.Next(windowHandler.TimeSinceLastFrame()))
		renderer.Draw(va, ib, shader)

		windowHandler.StartFrame()
	}
}
