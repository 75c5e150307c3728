package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Renderer struct {
	device *Device
}

func NewRenderer(d *Device) *Renderer {
	return &Renderer{device: d}
}

// Init logs the driver strings and sets the clear color.
func (r *Renderer) Init(clearColor mgl32.Vec4) {
	gl := r.device.GL

	var version, renderer string
	r.device.Call("GetString", func() { version = gl.GetString(VERSION) })
	r.device.Call("GetString", func() { renderer = gl.GetString(RENDERER) })
	Logger().Info("OpenGL initialized", "version", version, "renderer", renderer)

	r.SetClearColor(clearColor)
}

func (r *Renderer) SetClearColor(c mgl32.Vec4) {
	r.device.Call("ClearColor", func() { r.device.GL.ClearColor(c[0], c[1], c[2], c[3]) })
}

func (r *Renderer) Clear() {
	r.device.Call("Clear", func() { r.device.GL.Clear(COLOR_BUFFER_BIT) })
}

func (r *Renderer) Viewport(width int32, height int32) {
	r.device.Call("Viewport", func() { r.device.GL.Viewport(0, 0, width, height) })
}

// Draw binds all three objects and draws ib's triangles.
func (r *Renderer) Draw(va *VertexArray, ib *IndexBuffer, shader *Shader) {
	shader.Bind()
	va.Bind()
	ib.Bind()

	count := ib.Count()
	r.device.Call("DrawElements", func() { r.device.GL.DrawElements(TRIANGLES, count, UNSIGNED_INT, 0) })
}

// DrawArrays draws count vertices of va as triangles without an index buffer.
func (r *Renderer) DrawArrays(va *VertexArray, shader *Shader, first int32, count int32) {
	shader.Bind()
	va.Bind()

	r.device.Call("DrawArrays", func() { r.device.GL.DrawArrays(TRIANGLES, first, count) })
}

// AspectOrtho keeps the [-1, 1] square undistorted on a width x height
// framebuffer. A zero-sized framebuffer (minimized window) gets the identity.
func AspectOrtho(width, height int) mgl32.Mat4 {
	if width <= 0 || height <= 0 {
		return mgl32.Ident4()
	}
	aspect := float32(width) / float32(height)
	return mgl32.Ortho(-aspect, aspect, -1, 1, -1, 1)
}
