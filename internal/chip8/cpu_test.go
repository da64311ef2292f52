package chip8

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	c := New(nil, nil)

	assert.Equal(t, uint16(ProgramStart), c.PC)
	assert.Equal(t, StateRunning, c.State())
	assert.Equal(t, 0, c.StackDepth())
	assert.True(t, c.Display() != nil)
	assert.Equal(t, uint8(0xF0), c.ReadMemoryByte(0))
}

func TestKeyWaitSuspendsAndResumes(t *testing.T) {
	c, _, kp := newTestCpu(t, 0xF50A, 0x6101)

	steps(t, c, 1)
	assert.Equal(t, StateAwaitingKey, c.State())
	assert.Equal(t, uint16(ProgramStart+2), c.PC)
	assert.True(t, kp.Waiting())

	// further steps execute nothing
	steps(t, c, 5)
	assert.Equal(t, uint16(ProgramStart+2), c.PC)
	assert.Equal(t, uint8(0), c.V(1))

	kp.Press(0x7)
	assert.Equal(t, StateRunning, c.State())
	assert.Equal(t, uint8(0x7), c.V(5))
	assert.False(t, kp.Waiting())

	// only the first press resumes
	kp.Press(0x9)
	assert.Equal(t, uint8(0x7), c.V(5))
	assert.False(t, c.Resume(0x2))

	steps(t, c, 1)
	assert.Equal(t, uint8(1), c.V(1))
	assert.Equal(t, uint16(ProgramStart+4), c.PC)
}

func TestKeyWaitIgnoresEarlierPresses(t *testing.T) {
	c, _, kp := newTestCpu(t, 0xF50A)
	kp.Press(0x3)

	steps(t, c, 1)
	assert.Equal(t, StateAwaitingKey, c.State())

	// still held from before the wait, no transition
	kp.Press(0x3)
	assert.Equal(t, StateAwaitingKey, c.State())

	kp.Release(0x3)
	assert.Equal(t, StateAwaitingKey, c.State())

	kp.Press(0x3)
	assert.Equal(t, StateRunning, c.State())
	assert.Equal(t, uint8(0x3), c.V(5))
}

func TestTimersRunWhileAwaitingKey(t *testing.T) {
	c, _, _ := newTestCpu(t, 0xF50A)
	c.delayTimer = 5
	c.soundTimer = 1

	steps(t, c, 3)
	assert.Equal(t, uint8(2), c.DelayTimer())
	assert.Equal(t, uint8(0), c.SoundTimer())
}

func TestResumeOutsideWait(t *testing.T) {
	c, _, _ := newTestCpu(t)

	assert.False(t, c.Resume(0x1))
	assert.Equal(t, uint8(0), c.V(0))
	assert.Equal(t, StateRunning, c.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "awaiting key", StateAwaitingKey.String())
	assert.Equal(t, "State(9)", State(9).String())
}

func TestCpuString(t *testing.T) {
	c, _, _ := newTestCpu(t, 0x2300)
	steps(t, c, 1)

	s := c.String()
	assert.True(t, strings.Contains(s, "PC: 0x300"))
	assert.True(t, strings.Contains(s, "Stack: [512]"))
}
