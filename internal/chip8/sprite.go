package chip8

const spriteWidth = 8

// drawSprite XORs an n row sprite read from I onto the display at (Vx, Vy).
// Coordinates wrap around both screen edges. VF reports whether any set
// pixel was cleared.
func (c *Cpu) drawSprite(n, xReg, yReg uint8) {
	c.regs[flagReg] = 0
	xCoord := int(c.regs[xReg])
	yCoord := int(c.regs[yReg])

	for row := range int(n) {
		spriteData := c.ReadMemoryByte(c.I + uint16(row))
		y := (yCoord + row) % ScreenHeight
		for col := range spriteWidth {
			if spriteData&(0x80>>col) == 0 {
				continue
			}
			x := (xCoord + col) % ScreenWidth
			if c.display.IsPixelSet(y, x) {
				c.display.SetPixel(y, x, false)
				c.regs[flagReg] = 1
			} else {
				c.display.SetPixel(y, x, true)
			}
		}
	}
}
