package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererDraw(t *testing.T) {
	d, fake, caught := newTestDevice()
	renderer := NewRenderer(d)

	va := NewVertexArray(d)
	vb := NewVertexBuffer(d, []float32{-0.5, -0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5})
	va.AddBuffer(vb, NewVertexBufferLayout().PushFloat(2))
	ib := NewIndexBuffer(d, []uint32{0, 1, 2, 2, 3, 0})
	shader, err := NewShader(d, testVertexSource, testFragmentSource)
	require.NoError(t, err)

	va.Unbind()
	ib.Unbind()
	shader.Unbind()
	fake.calls = nil

	renderer.Clear()
	renderer.Draw(va, ib, shader)

	assert.Empty(t, *caught)
	assert.Equal(t, []string{"Clear", "UseProgram", "BindVertexArray", "BindBuffer", "DrawElements"}, fake.callNames())
	assert.Equal(t, "DrawElements(4,6,5125,0)", fake.calls[len(fake.calls)-1])
	assert.Equal(t, shader.Handle(), fake.program)
	assert.Equal(t, va.Handle(), fake.boundArray)
	assert.Equal(t, ib.Handle(), fake.bound[ELEMENT_ARRAY_BUFFER])
}

func TestRendererDrawArrays(t *testing.T) {
	d, fake, _ := newTestDevice()
	renderer := NewRenderer(d)

	va := NewVertexArray(d)
	shader, err := NewShader(d, testVertexSource, testFragmentSource)
	require.NoError(t, err)
	fake.calls = nil

	renderer.DrawArrays(va, shader, 0, 3)
	// vertex array = 1, program = 4
	assert.Equal(t, []string{"UseProgram(4)", "BindVertexArray(1)", "DrawArrays(4,0,3)"}, fake.calls)
}

func TestRendererInit(t *testing.T) {
	d, fake, caught := newTestDevice()
	renderer := NewRenderer(d)

	renderer.Init(mgl32.Vec4{1, 1, 1, 1})
	renderer.Viewport(800, 600)

	assert.Empty(t, *caught)
	assert.Equal(t, []string{
		"GetString(7938)",
		"GetString(7937)",
		"ClearColor(1,1,1,1)",
		"Viewport(0,0,800,600)",
	}, fake.calls)
}

func TestAspectOrtho(t *testing.T) {
	wide := AspectOrtho(1600, 800)
	// x in [-2, 2] maps to clip space, y stays [-1, 1]
	assert.InDelta(t, 1, wide.Mul4x1(mgl32.Vec4{2, 0, 0, 1}).X(), 1e-6)
	assert.InDelta(t, 1, wide.Mul4x1(mgl32.Vec4{0, 1, 0, 1}).Y(), 1e-6)

	tall := AspectOrtho(500, 1000)
	assert.InDelta(t, 1, tall.Mul4x1(mgl32.Vec4{0.5, 0, 0, 1}).X(), 1e-6)

	assert.Equal(t, mgl32.Ident4(), AspectOrtho(800, 0))
	assert.Equal(t, AspectOrtho(1000, 1000), AspectOrtho(500, 500))
}
