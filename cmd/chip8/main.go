// Package main implements the CHIP-8 emulator command.
package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/retroenv/retrogolib/log"

	"meszarosd.hu/chip8/internal/chip8"
	"meszarosd.hu/chip8/internal/config"
	"meszarosd.hu/chip8/internal/ebitenhost"
	"meszarosd.hu/chip8/internal/termhost"
)

const windowTitle = "CHIP-8 emulator by Dominik Mészáros"

func main() {
	opts, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			if msg := usageErr.Error(); msg != "" {
				fmt.Fprintf(os.Stderr, "%s\n\n", msg)
			}
			usageErr.ShowUsage(os.Stderr)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen := chip8.NewFrameBuffer()
	keypad := chip8.NewKeypad()
	cpu := chip8.New(screen, keypad,
		chip8.WithLogger(logger),
		chip8.WithRandom(rand.New(rand.NewPCG(seed, seed>>32))),
		chip8.WithTrace(opts.Trace))

	if err := cpu.LoadFile(opts.ResolveROM()); err != nil {
		logger.Fatal("Loading program failed", log.Err(err))
	}

	switch opts.Frontend {
	case "headless":
		err = runHeadless(cpu, screen, opts.Steps)
	case "term":
		err = termhost.New(cpu, screen, keypad, opts.Cycles, logger).Run()
	default:
		game := ebitenhost.NewGame(cpu, screen, keypad, ebitenhost.Config{
			Title:  windowTitle,
			Cycles: opts.Cycles,
			Scale:  opts.Scale,
		}, logger)
		err = ebitenhost.Run(game)
	}
	if err != nil {
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

// runHeadless executes steps instructions without input and prints the
// screen.
func runHeadless(cpu *chip8.Cpu, screen *chip8.FrameBuffer, steps int) error {
	for range steps {
		if err := cpu.Step(); err != nil {
			return err
		}
		if cpu.State() == chip8.StateAwaitingKey {
			break
		}
	}
	fmt.Print(screen)
	return nil
}
