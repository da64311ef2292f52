// Package ebitenhost runs the machine in an ebiten window.
package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"

	"meszarosd.hu/chip8/internal/chip8"
)

const tps = 60

var statusFace = text.NewGoXFace(basicfont.Face7x13)

var (
	pixelOn     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	pixelOff    = color.RGBA{A: 0xFF}
	statusColor = color.RGBA{R: 0xFF, G: 0x40, B: 0x40, A: 0xFF}
)

// debugState is toggled by F1. While enabled, F2 runs a single instruction.
type debugState struct {
	enabled bool
	step    bool
}

// Config holds the window settings.
type Config struct {
	Title  string
	Cycles int // instructions per frame
	Scale  int
}

// Game implements ebiten.Game around a machine and its FrameBuffer and Keypad.
type Game struct {
	cpu    *chip8.Cpu
	screen *chip8.FrameBuffer
	keypad *chip8.Keypad
	logger *log.Logger

	cycles int
	scale  int
	title  string

	frameBuffer []byte
	img         *ebiten.Image

	debug  debugState
	halted error
}

func NewGame(cpu *chip8.Cpu, screen *chip8.FrameBuffer, keypad *chip8.Keypad, cfg Config, logger *log.Logger) *Game {
	return &Game{
		cpu:         cpu,
		screen:      screen,
		keypad:      keypad,
		logger:      logger,
		cycles:      cfg.Cycles,
		scale:       cfg.Scale,
		title:       cfg.Title,
		frameBuffer: make([]byte, chip8.ScreenWidth*chip8.ScreenHeight*4),
	}
}

// Halted returns the error that stopped the machine, if any.
func (g *Game) Halted() error {
	return g.halted
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for key, physical := range keyMap {
		if inpututil.IsKeyJustPressed(physical) {
			g.keypad.Press(uint8(key))
		} else if inpututil.IsKeyJustReleased(physical) {
			g.keypad.Release(uint8(key))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.enabled = !g.debug.enabled
	}
	g.debug.step = g.debug.enabled && inpututil.IsKeyJustPressed(ebiten.KeyF2)

	g.runFrame()
	return nil
}

// runFrame executes the instructions of one frame. Nothing runs once the
// machine has halted.
func (g *Game) runFrame() {
	if g.halted != nil {
		return
	}

	cycles := g.cycles
	if g.debug.enabled {
		cycles = 0
		if g.debug.step {
			cycles = 1
		}
	}
	for range cycles {
		if err := g.cpu.Step(); err != nil {
			g.halted = err
			g.logger.Error("Emulation halted", err)
			return
		}
	}
	if g.debug.step {
		g.logger.Debug("Single step", log.String("state", g.cpu.String()))
	}
}

func (g *Game) status() string {
	switch {
	case g.halted != nil:
		return "HALTED"
	case g.debug.enabled:
		return "PAUSED (F1 resume, F2 step)"
	case g.cpu.State() == chip8.StateAwaitingKey:
		return "WAITING FOR KEY"
	case g.cpu.SoundTimer() > 0:
		return "BEEP"
	}
	return ""
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(chip8.ScreenWidth, chip8.ScreenHeight)
	}
	g.screen.RGBA(g.frameBuffer, pixelOn, pixelOff)
	g.img.WritePixels(g.frameBuffer)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	if s := g.status(); s != "" {
		top := &text.DrawOptions{}
		top.GeoM.Translate(4, 2)
		top.ColorScale.ScaleWithColor(statusColor)
		text.Draw(screen, s, statusFace, top)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return chip8.ScreenWidth * g.scale, chip8.ScreenHeight * g.scale
}

// Run opens the window and blocks until it is closed. A machine that
// halted before the window was closed is reported as the error.
func Run(g *Game) error {
	ebiten.SetWindowSize(chip8.ScreenWidth*g.scale, chip8.ScreenHeight*g.scale)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetTPS(tps)
	return g.result(ebiten.RunGame(g))
}

func (g *Game) result(runErr error) error {
	if runErr != nil {
		return runErr
	}
	return g.halted
}
