// Package config handles command line options and logger setup.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Frontends lists the supported values of the -frontend option.
var Frontends = []string{"ebiten", "term", "headless"}

// Options contains the settings of a single emulator run.
type Options struct {
	ROM      string
	ROMDir   string
	Frontend string

	Cycles int // instructions per 60 Hz frame
	Scale  int // window pixels per screen pixel
	Seed   uint64
	Steps  int // instructions run by the headless frontend

	Debug bool
	Quiet bool
	Trace bool
}

// UsageError represents an error that should show usage information.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage banner and the option defaults.
func (e *UsageError) ShowUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: chip8 [options] <rom>\n\n")
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
	fmt.Fprintln(w)
}

// ParseFlags parses the command line arguments, without the program name.
func ParseFlags(args []string) (Options, error) {
	flags := flag.NewFlagSet("chip8", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts Options
	flags.StringVar(&opts.ROM, "rom", "", "name of the program image to run")
	flags.StringVar(&opts.ROMDir, "romdir", "roms", "directory searched for the program image when it is not found as given")
	flags.StringVar(&opts.Frontend, "frontend", "ebiten", "frontend to run: "+strings.Join(Frontends, ", "))
	flags.IntVar(&opts.Cycles, "cycles", 10, "instructions executed per 60 Hz frame")
	flags.IntVar(&opts.Scale, "scale", 10, "window scale factor")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random seed, 0 picks a time based seed")
	flags.IntVar(&opts.Steps, "steps", 1000, "instructions run by the headless frontend")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, &UsageError{flags: flags}
		}
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	rest := flags.Args()
	if opts.ROM == "" && len(rest) > 0 {
		opts.ROM = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return opts, &UsageError{flags: flags, msg: fmt.Sprintf("unexpected argument %s", rest[0])}
	}
	if opts.ROM == "" {
		return opts, &UsageError{flags: flags, msg: "no program image given"}
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	return opts, nil
}

func normalizeOptions(opts *Options) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if !slices.Contains(Frontends, opts.Frontend) {
		return fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
	if opts.Cycles < 1 {
		return fmt.Errorf("cycles must be positive, got %d", opts.Cycles)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("scale must be positive, got %d", opts.Scale)
	}
	if opts.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", opts.Steps)
	}
	if opts.Trace {
		opts.Debug = true
	}
	return nil
}

// ResolveROM returns the path of the program image. A ROM that does not
// exist as given is looked up in the ROM directory.
func (o Options) ResolveROM() string {
	if _, err := os.Stat(o.ROM); err == nil || o.ROMDir == "" || filepath.IsAbs(o.ROM) {
		return o.ROM
	}
	candidate := filepath.Join(o.ROMDir, o.ROM)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return o.ROM
}

// CreateLogger creates a logger with appropriate settings.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
