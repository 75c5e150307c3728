package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestColorCyclerBounces(t *testing.T) {
	cycler := NewColorCycler(mgl32.Vec4{0, 0.3, 0.8, 1}, 0, 0.25)

	var reds []float32
	for i := 0; i < 10; i++ {
		color := cycler.Next(1)
		reds = append(reds, color[0])
		// Other channels never move
		assert.Equal(t, float32(0.3), color[1])
		assert.Equal(t, float32(0.8), color[2])
	}

	assert.Equal(t, []float32{0, 0.25, 0.5, 0.75, 1, 0.75, 0.5, 0.25, 0, 0.25}, reds)
}

func TestColorCyclerClampsOvershoot(t *testing.T) {
	cycler := NewColorCycler(mgl32.Vec4{0, 0, 0.9, 1}, 2, 0.3)

	assert.Equal(t, float32(0.9), cycler.Next(1)[2])
	assert.Equal(t, float32(1), cycler.Next(1)[2])
	assert.InDelta(t, 0.7, cycler.Next(1)[2], 1e-6)
}

func TestColorCyclerScalesByFrameTime(t *testing.T) {
	cycler := NewColorCycler(mgl32.Vec4{}, 1, 2)

	// First frame has no elapsed time
	assert.Equal(t, float32(0), cycler.Next(0)[1])
	assert.Equal(t, float32(0), cycler.Next(0.25)[1])
	assert.Equal(t, float32(0.5), cycler.Next(0.1)[1])
	assert.InDelta(t, 0.7, cycler.Next(0)[1], 1e-6)
}

func TestColorCyclerBadChannel(t *testing.T) {
	cycler := NewColorCycler(mgl32.Vec4{}, 9, 0.5)
	assert.Equal(t, 0, cycler.Channel)
}
