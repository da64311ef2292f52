package chip8

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Display is the pixel surface the machine draws on. Rows and columns are
// always within the 64x32 screen.
type Display interface {
	Clear()
	IsPixelSet(row, col int) bool
	SetPixel(row, col int, on bool)
}

// Input reports the state of the 16 logical keys.
//
// AwaitKeyPress must not block. It arms a one-shot wait: the next key that
// transitions to pressed is passed to resume, after which the wait is
// disarmed. Presses that happened before arming are not delivered.
type Input interface {
	IsKeyHeld(key uint8) bool
	AwaitKeyPress(resume func(key uint8))
}

// Random is the source for CXNN. *rand.Rand satisfies it.
type Random interface {
	IntN(n int) int
}

type State int

const (
	StateRunning State = iota
	// StateAwaitingKey is entered by FX0A. Steps execute no instructions
	// until Resume is called.
	StateAwaitingKey
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateAwaitingKey:
		return "awaiting key"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Cpu struct {
	PC         uint16
	I          uint16
	stack      Stack
	delayTimer uint8
	soundTimer uint8
	regs       [0x10]uint8

	state   State
	waitReg uint8

	display Display
	input   Input
	random  Random
	logger  *log.Logger
	trace   bool

	memory *Memory
}

type Option func(*Cpu)

func WithLogger(logger *log.Logger) Option {
	return func(c *Cpu) {
		c.logger = logger
	}
}

func WithRandom(random Random) Option {
	return func(c *Cpu) {
		c.random = random
	}
}

// WithTrace logs every executed instruction at debug level.
func WithTrace(enabled bool) Option {
	return func(c *Cpu) {
		c.trace = enabled
	}
}

// New returns a machine with the font loaded and pc at ProgramStart. A nil
// display or input is replaced by a FrameBuffer or Keypad.
func New(display Display, input Input, options ...Option) *Cpu {
	if display == nil {
		display = NewFrameBuffer()
	}
	if input == nil {
		input = NewKeypad()
	}
	c := &Cpu{
		PC:      ProgramStart,
		display: display,
		input:   input,
		memory:  InitMemory(),
	}
	for _, opt := range options {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.NewWithConfig(log.DefaultConfig())
	}
	if c.random == nil {
		seed := uint64(time.Now().UnixNano())
		c.random = rand.New(rand.NewPCG(seed, seed>>32))
	}
	return c
}

func (c *Cpu) String() string {
	return fmt.Sprintf("CPU STATE:\nPC: 0x%X\nI: 0x%X\nStack: %v\nDelay Timer: %d\nSound Timer: %d\nRegisters: %v\nState: %s\n",
		c.PC, c.I, c.stack.Entries(), c.delayTimer, c.soundTimer, c.regs, c.state)
}

func (c *Cpu) Memory() *Memory {
	return c.memory
}

func (c *Cpu) Display() Display {
	return c.display
}

// V returns register x.
func (c *Cpu) V(x uint8) uint8 {
	return c.regs[x&0xF]
}

func (c *Cpu) DelayTimer() uint8 {
	return c.delayTimer
}

func (c *Cpu) SoundTimer() uint8 {
	return c.soundTimer
}

func (c *Cpu) StackDepth() int {
	return c.stack.Len()
}

func (c *Cpu) State() State {
	return c.state
}

func (c *Cpu) ReadMemoryByte(addr uint16) byte {
	return c.memory.Get(addr)
}

func (c *Cpu) WriteMemoryByte(addr uint16, b byte) {
	c.memory.Set(addr, b)
}

func (c *Cpu) IncrementPCByTwo() {
	c.PC += 2
}

func (c *Cpu) Fetch() uint16 {
	return c.memory.GetU16(c.PC)
}

// Step runs one instruction cycle: fetch, decode, execute, advance pc by 2
// and decrement both timers. While awaiting a key only the timers move.
//
// Timers tick once per Step rather than at 60 Hz. Hosts pick the Step rate.
//
// A failing instruction leaves the machine unchanged, timers included.
func (c *Cpu) Step() error {
	if c.state == StateAwaitingKey {
		c.decrementTimers()
		return nil
	}

	op := Decode(c.Fetch())
	if c.trace {
		c.logger.Debug("exec",
			addrField("pc", c.PC),
			wordField(op.opcodeHex),
			log.String("instr", op.String()))
	}
	if err := c.Execute(op); err != nil {
		return err
	}
	c.IncrementPCByTwo()
	c.decrementTimers()
	return nil
}

// Resume completes a pending FX0A with key. It reports false when the
// machine is not waiting for a key.
func (c *Cpu) Resume(key uint8) bool {
	if c.state != StateAwaitingKey {
		return false
	}
	c.regs[c.waitReg] = key & 0xF
	c.state = StateRunning
	c.logger.Debug("key wait resumed",
		log.Uint8("key", key&0xF),
		log.Uint8("register", c.waitReg))
	return true
}

func (c *Cpu) awaitKey(x uint8) {
	c.state = StateAwaitingKey
	c.waitReg = x
	c.logger.Debug("waiting for key input", addrField("pc", c.PC))
	c.input.AwaitKeyPress(func(key uint8) {
		c.Resume(key)
	})
}

func addrField(key string, addr uint16) log.Field {
	return log.String(key, fmt.Sprintf("$%03X", addr))
}

func wordField(word uint16) log.Field {
	return log.String("opcode", fmt.Sprintf("%04X", word))
}

func (c *Cpu) decrementTimers() {
	if c.delayTimer > 0 {
		c.delayTimer--
	}
	if c.soundTimer > 0 {
		c.soundTimer--
	}
}
