package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ColorCycler moves one channel of a color back and forth between 0 and 1.
// Increment is the change per second of elapsed time.
type ColorCycler struct {
	Color     mgl32.Vec4
	Channel   int
	Increment float32
}

func NewColorCycler(color mgl32.Vec4, channel int, increment float32) *ColorCycler {
	if channel < 0 || channel > 3 {
		channel = 0
	}
	return &ColorCycler{
		Color:     color,
		Channel:   channel,
		Increment: increment,
	}
}

// Next returns the current color and advances the channel by elapsed
// seconds, reversing direction at the bounds.
func (c *ColorCycler) Next(elapsed float64) mgl32.Vec4 {
	current := c.Color

	value := c.Color[c.Channel] + c.Increment*float32(elapsed)
	if value >= 1 {
		value = 1
		c.Increment = -mgl32.Abs(c.Increment)
	} else if value <= 0 {
		value = 0
		c.Increment = mgl32.Abs(c.Increment)
	}
	c.Color[c.Channel] = value

	return current
}
