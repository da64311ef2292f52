package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawCollision(t *testing.T) {
	// glyph "0" from the font at address 0, drawn twice at (10, 5)
	c, fb, _ := newTestCpu(t, 0xD015, 0xD015)
	c.regs[0] = 10
	c.regs[1] = 5
	c.I = 0

	steps(t, c, 1)
	assert.Equal(t, 14, fb.CountSet())
	assert.Equal(t, uint8(0), c.V(0xF))
	assert.True(t, fb.IsPixelSet(5, 10))
	assert.True(t, fb.IsPixelSet(5, 13))
	assert.False(t, fb.IsPixelSet(6, 11))
	assert.False(t, fb.IsPixelSet(5, 14))

	steps(t, c, 1)
	assert.Equal(t, 0, fb.CountSet())
	assert.Equal(t, uint8(1), c.V(0xF))
}

func TestDrawFlagIsNeverLowered(t *testing.T) {
	// first row collides, second row lands on blank pixels
	c, fb, _ := newTestCpu(t, 0xD012)
	c.Memory().PutRange(0x300, 0x80, 0x80)
	c.I = 0x300
	fb.SetPixel(0, 0, true)

	steps(t, c, 1)
	assert.Equal(t, uint8(1), c.V(0xF))
	assert.False(t, fb.IsPixelSet(0, 0))
	assert.True(t, fb.IsPixelSet(1, 0))
}

func TestDrawWrapsAroundEdges(t *testing.T) {
	c, fb, _ := newTestCpu(t, 0xD013)
	c.Memory().PutRange(0x300, 0xFF, 0xFF, 0xFF)
	c.I = 0x300
	c.regs[0] = 62
	c.regs[1] = 30

	steps(t, c, 1)
	assert.Equal(t, 24, fb.CountSet())
	for _, row := range []int{30, 31, 0} {
		for _, col := range []int{62, 63, 0, 1, 2, 3, 4, 5} {
			assert.True(t, fb.IsPixelSet(row, col))
		}
		assert.False(t, fb.IsPixelSet(row, 6))
	}
	assert.False(t, fb.IsPixelSet(1, 0))
	assert.Equal(t, uint8(0), c.V(0xF))
}

func TestDrawCoordinatesBeyondScreen(t *testing.T) {
	c, fb, _ := newTestCpu(t, 0xD011)
	c.Memory().Set(0x300, 0x80)
	c.I = 0x300
	c.regs[0] = 64 + 3
	c.regs[1] = 32 + 2

	steps(t, c, 1)
	assert.True(t, fb.IsPixelSet(2, 3))
	assert.Equal(t, 1, fb.CountSet())
}

func TestDrawZeroRows(t *testing.T) {
	c, fb, _ := newTestCpu(t, 0xD010)
	c.regs[0xF] = 1

	steps(t, c, 1)
	assert.Equal(t, 0, fb.CountSet())
	assert.Equal(t, uint8(0), c.V(0xF))
}

func TestDrawZeroBitsLeavePixels(t *testing.T) {
	c, fb, _ := newTestCpu(t, 0xD011)
	c.Memory().Set(0x300, 0x0F)
	c.I = 0x300
	fb.SetPixel(0, 0, true)

	steps(t, c, 1)
	assert.True(t, fb.IsPixelSet(0, 0))
	assert.True(t, fb.IsPixelSet(0, 4))
	assert.False(t, fb.IsPixelSet(0, 3))
	assert.Equal(t, uint8(0), c.V(0xF))
}
