// Package termhost runs the machine in a terminal using termbox.
//
// Terminals report key presses but no releases, so a pressed key is held
// for a few frames and released when no repeat arrives.
package termhost

import (
	"errors"
	"os"
	"time"
	"unicode"

	"github.com/nsf/termbox-go"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"

	"meszarosd.hu/chip8/internal/chip8"
)

// ErrNotTerminal is returned when stdout is not a terminal.
var ErrNotTerminal = errors.New("standard output is not a terminal")

const (
	frameRate  = 60
	holdFrames = 8
	statusRow  = chip8.ScreenHeight
)

// layout maps the logical keys, by index, to the left side of a QWERTY keyboard.
const layout = "x123qweasdzc4rfv"

func keyForRune(ch rune) (uint8, bool) {
	ch = unicode.ToLower(ch)
	for i, r := range layout {
		if r == ch {
			return uint8(i), true
		}
	}
	return 0, false
}

type Terminal struct {
	cpu    *chip8.Cpu
	screen *chip8.FrameBuffer
	keypad *chip8.Keypad
	logger *log.Logger
	cycles int

	frame     int
	releaseAt [chip8.KeyCount]int
}

func New(cpu *chip8.Cpu, screen *chip8.FrameBuffer, keypad *chip8.Keypad, cycles int, logger *log.Logger) *Terminal {
	return &Terminal{
		cpu:    cpu,
		screen: screen,
		keypad: keypad,
		logger: logger,
		cycles: cycles,
	}
}

// handleRune presses the key mapped to ch, or extends its hold.
func (t *Terminal) handleRune(ch rune) {
	key, ok := keyForRune(ch)
	if !ok {
		return
	}
	t.keypad.Press(key)
	t.releaseAt[key] = t.frame + holdFrames
}

// releaseExpired releases keys whose hold has run out.
func (t *Terminal) releaseExpired() {
	for key, at := range t.releaseAt {
		if at != 0 && t.frame >= at {
			t.keypad.Release(uint8(key))
			t.releaseAt[key] = 0
		}
	}
}

// tick advances one frame: key holds, then the configured number of steps.
func (t *Terminal) tick() error {
	t.frame++
	t.releaseExpired()
	for range t.cycles {
		if err := t.cpu.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Run blocks until Esc or Ctrl-C is pressed or the machine fails.
func (t *Terminal) Run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	events := make(chan termbox.Event)
	done := make(chan struct{})
	defer func() {
		close(done)
		termbox.Interrupt()
	}()
	go pollEvents(termbox.PollEvent, events, done)

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev.Type {
			case termbox.EventKey:
				if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
					return nil
				}
				t.handleRune(ev.Ch)
			case termbox.EventError:
				return ev.Err
			}

		case <-ticker.C:
			if err := t.tick(); err != nil {
				t.logger.Error("Emulation halted", err)
				return err
			}
			if err := t.draw(); err != nil {
				return err
			}
		}
	}
}

// pollEvents forwards events until an interrupt is polled. Once done is
// closed events are dropped, but polling goes on so the Interrupt sent on
// shutdown is always received.
func pollEvents(poll func() termbox.Event, events chan<- termbox.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case events <- ev:
		case <-done:
		}
	}
}

func (t *Terminal) draw() error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	for row := range chip8.ScreenHeight {
		for col := range chip8.ScreenWidth {
			if t.screen.IsPixelSet(row, col) {
				termbox.SetCell(col*2, row, ' ', termbox.ColorDefault, termbox.ColorWhite)
				termbox.SetCell(col*2+1, row, ' ', termbox.ColorDefault, termbox.ColorWhite)
			}
		}
	}

	status := "esc: quit"
	if t.cpu.State() == chip8.StateAwaitingKey {
		status = "waiting for key | " + status
	}
	for i, ch := range status {
		termbox.SetCell(i, statusRow, ch, termbox.ColorYellow, termbox.ColorDefault)
	}
	return termbox.Flush()
}
