package chip8

import "fmt"

const flagReg = 0xF

// Execute applies the effect of operation to the machine. The caller
// advances pc by 2 afterwards, which is why jumps and calls store their
// target minus 2.
func (c *Cpu) Execute(operation Operation) error {
	x, y := operation.x, operation.y

	switch operation.opcode {
	case OP_SYS:
		c.logger.Debug("Ignoring machine code routine call",
			addrField("pc", c.PC),
			wordField(operation.opcodeHex))
	case OP_UNKNOWN:
		c.logger.Warn("Ignoring unknown opcode",
			addrField("pc", c.PC),
			wordField(operation.opcodeHex))
	case OP_CLEAR:
		c.display.Clear()
	case OP_RET:
		addr, ok := c.stack.Pop()
		if !ok {
			c.logger.Debug("Return with empty call stack", addrField("pc", c.PC))
			break
		}
		c.PC = addr
	case OP_JMP:
		c.PC = operation.nnn - 2
	case OP_SUBROUTINE:
		if err := c.stack.Push(c.PC); err != nil {
			return fmt.Errorf("call $%03X at $%03X: %w", operation.nnn, c.PC, err)
		}
		c.PC = operation.nnn - 2
	case OP_EQUAL:
		if c.regs[x] == operation.nn {
			c.IncrementPCByTwo()
		}
	case OP_NEQUAL:
		if c.regs[x] != operation.nn {
			c.IncrementPCByTwo()
		}
	case OP_REG_EQUAL:
		if c.regs[x] == c.regs[y] {
			c.IncrementPCByTwo()
		}
	case OP_REG_NEQUAL:
		if c.regs[x] != c.regs[y] {
			c.IncrementPCByTwo()
		}
	case OP_REG_SET:
		c.regs[x] = operation.nn
	case OP_REG_ADD:
		c.regs[x] += operation.nn
	case OP_REG_SET_REG:
		c.regs[x] = c.regs[y]
	case OP_OR:
		c.regs[x] |= c.regs[y]
	case OP_AND:
		c.regs[x] &= c.regs[y]
	case OP_XOR:
		c.regs[x] ^= c.regs[y]
	case OP_ADD_EQUAL:
		var flag byte
		if uint16(c.regs[x])+uint16(c.regs[y]) > 0xFF {
			flag = 1
		}
		c.regs[x] += c.regs[y]
		c.regs[flagReg] = flag
	case OP_SUB:
		if c.regs[x] < c.regs[y] {
			c.regs[flagReg] = 0
		} else {
			c.regs[flagReg] = 1
		}
		c.regs[x] -= c.regs[y]
	case OP_SUB_INV:
		if c.regs[y] < c.regs[x] {
			c.regs[flagReg] = 0
		} else {
			c.regs[flagReg] = 1
		}
		c.regs[x] = c.regs[y] - c.regs[x]
	case OP_RSHIFT:
		c.regs[flagReg] = c.regs[x] & 0x1
		c.regs[x] >>= 1
	case OP_LSHIFT:
		c.regs[flagReg] = c.regs[x] >> 7
		c.regs[x] <<= 1
	case OP_SET_IDX:
		c.I = operation.nnn
	case OP_JMP_OFF:
		c.PC = operation.nnn + uint16(c.regs[0]) - 2
	case OP_RANDOM:
		c.regs[x] = uint8(c.random.IntN(int(operation.nn) + 1))
	case OP_DISPLAY:
		c.drawSprite(operation.n, x, y)
	case OP_KEY_PRESSED:
		if c.input.IsKeyHeld(c.regs[x]) {
			c.IncrementPCByTwo()
		}
	case OP_KEY_NOT_PRESSED:
		if !c.input.IsKeyHeld(c.regs[x]) {
			c.IncrementPCByTwo()
		}
	case OP_GET_DTIMER:
		c.regs[x] = c.delayTimer
	case OP_GET_KEY:
		c.awaitKey(x)
	case OP_SET_DTIMER:
		c.delayTimer = c.regs[x]
	case OP_SET_STIMER:
		c.soundTimer = c.regs[x]
	case OP_ADD_IDX:
		before := c.I
		c.I += uint16(c.regs[x])
		if uint32(before)+uint32(c.regs[x]) > 0xFFF {
			c.regs[flagReg] = 1
		} else {
			c.regs[flagReg] = 0
		}
	case OP_FONT:
		c.I = uint16(c.regs[x]) * GlyphSize
	case OP_BCD:
		num := c.regs[x]
		c.WriteMemoryByte(c.I, num/100)
		c.WriteMemoryByte(c.I+1, num/10%10)
		c.WriteMemoryByte(c.I+2, num%10)
	case OP_STORE_MEM:
		for i := range x + 1 {
			c.WriteMemoryByte(c.I+uint16(i), c.regs[i])
		}
	case OP_LOAD_MEM:
		for i := range x + 1 {
			c.regs[i] = c.ReadMemoryByte(c.I + uint16(i))
		}
	}
	return nil
}
