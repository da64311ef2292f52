package chip8

const (
	MemorySize = 4096
	// ProgramStart is where program images are loaded and where execution begins.
	ProgramStart = 0x200

	addrMask = MemorySize - 1
)

// GlyphSize is the number of bytes per font glyph.
const GlyphSize = 5

var font = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the 4K address space of the machine. Addresses wrap at 4096.
type Memory struct {
	buf [MemorySize]uint8
}

func InitMemory() *Memory {
	m := &Memory{}
	m.CreateFont()
	return m
}

// CreateFont copies the hex digit glyphs to address 0.
func (m *Memory) CreateFont() {
	copy(m.buf[:], font[:])
}

func (m *Memory) Get(addr uint16) uint8 {
	return m.buf[addr&addrMask]
}

func (m *Memory) Set(addr uint16, value uint8) {
	m.buf[addr&addrMask] = value
}

// GetU16 returns the big-endian word at addr.
func (m *Memory) GetU16(addr uint16) uint16 {
	h := m.Get(addr)
	l := m.Get(addr + 1)
	return uint16(h)<<8 | uint16(l)
}

// PutRange copies data into memory starting at addr.
func (m *Memory) PutRange(addr uint16, data ...uint8) {
	for i, b := range data {
		m.Set(addr+uint16(i), b)
	}
}

// GetRange returns a copy of size bytes starting at addr.
func (m *Memory) GetRange(addr uint16, size int) []uint8 {
	ret := make([]uint8, size)
	for i := range ret {
		ret[i] = m.Get(addr + uint16(i))
	}
	return ret
}
