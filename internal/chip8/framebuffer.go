package chip8

import (
	"image/color"
	"strings"
)

const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// FrameBuffer is a monochrome 64x32 Display kept in memory. Hosts render it.
type FrameBuffer struct {
	pixels [ScreenHeight][ScreenWidth]bool
}

func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

func (f *FrameBuffer) Clear() {
	f.pixels = [ScreenHeight][ScreenWidth]bool{}
}

func (f *FrameBuffer) IsPixelSet(row, col int) bool {
	return f.pixels[row%ScreenHeight][col%ScreenWidth]
}

func (f *FrameBuffer) SetPixel(row, col int, on bool) {
	f.pixels[row%ScreenHeight][col%ScreenWidth] = on
}

// CountSet returns the number of lit pixels.
func (f *FrameBuffer) CountSet() int {
	count := 0
	for _, row := range f.pixels {
		for _, on := range row {
			if on {
				count++
			}
		}
	}
	return count
}

// RGBA writes the screen as 8-bit RGBA pixels into buf, which must hold
// ScreenWidth*ScreenHeight*4 bytes.
func (f *FrameBuffer) RGBA(buf []byte, on, off color.RGBA) {
	for y, row := range f.pixels {
		for x, set := range row {
			c := off
			if set {
				c = on
			}
			idx := (y*ScreenWidth + x) * 4
			buf[idx+0] = c.R
			buf[idx+1] = c.G
			buf[idx+2] = c.B
			buf[idx+3] = c.A
		}
	}
}

// String renders the screen as text, '#' for lit pixels and '.' otherwise.
func (f *FrameBuffer) String() string {
	var sb strings.Builder
	sb.Grow((ScreenWidth + 1) * ScreenHeight)
	for _, row := range f.pixels {
		for _, set := range row {
			if set {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
