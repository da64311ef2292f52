package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// fixedRandom returns v reduced to the requested range.
type fixedRandom struct {
	v int
}

func (r fixedRandom) IntN(n int) int {
	return r.v % n
}

// newTestCpu returns a machine with program loaded at ProgramStart.
func newTestCpu(t *testing.T, program ...uint16) (*Cpu, *FrameBuffer, *Keypad) {
	t.Helper()

	fb := NewFrameBuffer()
	kp := NewKeypad()
	c := New(fb, kp,
		WithLogger(log.NewTestLogger(t)),
		WithRandom(fixedRandom{v: 7}),
		WithTrace(true))

	rom := make([]byte, 0, len(program)*2)
	for _, word := range program {
		rom = append(rom, byte(word>>8), byte(word))
	}
	assert.NoError(t, c.LoadROM(rom))
	return c, fb, kp
}

// steps runs n instruction cycles and fails the test on the first error.
func steps(t *testing.T, c *Cpu, n int) {
	t.Helper()
	for range n {
		assert.NoError(t, c.Step())
	}
}
