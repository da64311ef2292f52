package chip8

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestClassifyEveryTableEntry(t *testing.T) {
	// operand bits that fit into the free nibbles of every mask
	const fill = 0x0123

	for i := 1; i < OpcodeCount; i++ {
		kind := OPCODE(i)
		mask, id, ok := kind.Mask()
		assert.True(t, ok)

		word := id | (^mask & fill)
		t.Run(fmt.Sprintf("%s_%04X", kind, word), func(t *testing.T) {
			assert.Equal(t, id, word&mask)
			assert.Equal(t, kind, Classify(word))
			assert.Equal(t, kind, Decode(word).Opcode())
		})
	}
}

func TestClassifySysSlotIsInert(t *testing.T) {
	mask, id, ok := OP_SYS.Mask()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x0000), mask)
	assert.Equal(t, uint16(0x0FFF), id)

	for word := uint16(0); word < 0x1000; word++ {
		kind := Classify(word)
		switch word {
		case 0x00E0:
			assert.Equal(t, OP_CLEAR, kind)
		case 0x00EE:
			assert.Equal(t, OP_RET, kind)
		default:
			if kind != OP_UNKNOWN {
				t.Fatalf("word %04X classified as %s", word, kind)
			}
		}
	}
}

func TestClassifyArithmeticByLowNibble(t *testing.T) {
	tests := []struct {
		word     uint16
		expected OPCODE
	}{
		{0x8AB0, OP_REG_SET_REG},
		{0x8AB1, OP_OR},
		{0x8AB2, OP_AND},
		{0x8AB3, OP_XOR},
		{0x8AB4, OP_ADD_EQUAL},
		{0x8AB5, OP_SUB},
		{0x8AB6, OP_RSHIFT},
		{0x8AB7, OP_SUB_INV},
		{0x8ABE, OP_LSHIFT},
		{0x8AB8, OP_UNKNOWN},
		{0x8ABF, OP_UNKNOWN},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Classify(tt.word))
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, word := range []uint16{0x0000, 0x0123, 0x0FFF, 0x5121, 0x9AB1, 0xE1FF, 0xE19F, 0xF1FF, 0xF100} {
		assert.Equal(t, OP_UNKNOWN, Classify(word))
	}
	assert.Equal(t, "????", OP_UNKNOWN.String())
	_, _, ok := OP_UNKNOWN.Mask()
	assert.False(t, ok)
}

func TestDecodeOperands(t *testing.T) {
	op := Decode(0xD12F)

	assert.Equal(t, OP_DISPLAY, op.opcode)
	assert.Equal(t, uint16(0xD12F), op.Word())
	assert.Equal(t, byte(0x1), op.x)
	assert.Equal(t, byte(0x2), op.y)
	assert.Equal(t, byte(0xF), op.n)
	assert.Equal(t, uint8(0x2F), op.nn)
	assert.Equal(t, uint16(0x12F), op.nnn)
}

func TestOperationString(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1234, "JP $234"},
		{0x2300, "CALL $300"},
		{0x3A0F, "SE VA, $0F"},
		{0x6A0F, "LD VA, $0F"},
		{0x8014, "ADD V0, V1"},
		{0x8017, "SUBN V0, V1"},
		{0xA123, "LD I, $123"},
		{0xB300, "JP V0, $300"},
		{0xD125, "DRW V1, V2, 5"},
		{0xE39E, "SKP V3"},
		{0xF50A, "LD V5, K"},
		{0xF21E, "ADD I, V2"},
		{0xF355, "LD [I], V3"},
		{0x0123, "DW $0123"},
		{0x5121, "DW $5121"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%04X", tt.word), func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.word).String())
		})
	}
}
