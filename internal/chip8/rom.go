package chip8

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// MaxROMSize is the largest program image that fits above ProgramStart.
const MaxROMSize = MemorySize - ProgramStart

// LoadError reports a program image that could not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading program: %v", e.Err)
	}
	return fmt.Sprintf("loading program %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadROM copies a raw program image into memory starting at ProgramStart.
func (c *Cpu) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return &LoadError{Err: fmt.Errorf("image is %d bytes, limit is %d", len(rom), MaxROMSize)}
	}
	c.memory.PutRange(ProgramStart, rom...)
	return nil
}

// LoadFile reads the program image at path and loads it with LoadROM.
func (c *Cpu) LoadFile(path string) error {
	c.logger.Debug("Opening program", log.String("path", path))

	rom, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	if err := c.LoadROM(rom); err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return err
	}

	c.logger.Info("Loaded program",
		log.String("path", path),
		log.Int("size", len(rom)))
	return nil
}
