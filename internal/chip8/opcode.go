package chip8

import "fmt"

type OPCODE int

// The values follow the order of opcodeTable, so a kind is also the index of
// the table entry that classified it.
const (
	OP_SYS             OPCODE = iota //0NNN
	OP_CLEAR                         //00E0
	OP_RET                           //00EE
	OP_JMP                           //1NNN
	OP_SUBROUTINE                    //2NNN
	OP_EQUAL                         //3XNN
	OP_NEQUAL                        //4XNN
	OP_REG_EQUAL                     //5XY0
	OP_REG_SET                       //6XNN
	OP_REG_ADD                       //7XNN
	OP_REG_SET_REG                   //8XY0
	OP_OR                            //8XY1
	OP_AND                           //8XY2
	OP_XOR                           //8XY3
	OP_ADD_EQUAL                     //8XY4
	OP_SUB                           //8XY5
	OP_RSHIFT                        //8XY6
	OP_SUB_INV                       //8XY7
	OP_LSHIFT                        //8XYE
	OP_REG_NEQUAL                    //9XY0
	OP_SET_IDX                       //ANNN
	OP_JMP_OFF                       //BNNN
	OP_RANDOM                        //CXNN
	OP_DISPLAY                       //DXYN
	OP_KEY_PRESSED                   //EX9E
	OP_KEY_NOT_PRESSED               //EXA1
	OP_GET_DTIMER                    //FX07
	OP_GET_KEY                       //FX0A
	OP_SET_DTIMER                    //FX15
	OP_SET_STIMER                    //FX18
	OP_ADD_IDX                       //FX1E
	OP_FONT                          //FX29
	OP_BCD                           //FX33
	OP_STORE_MEM                     //FX55
	OP_LOAD_MEM                      //FX65

	OP_UNKNOWN
)

// OpcodeCount is the number of classifiable opcode families.
const OpcodeCount = int(OP_UNKNOWN)

type opcodeEntry struct {
	mask    uint16
	id      uint16
	pattern string
}

// opcodeTable is scanned in order and the first entry with
// word&mask == id wins. Entry 0 (0NNN) can never match: no word ANDed with
// 0x0000 equals 0x0FFF. The slot is inert and only keeps the table aligned
// with the canonical instruction list.
var opcodeTable = [OpcodeCount]opcodeEntry{
	OP_SYS:             {0x0000, 0x0FFF, "0NNN"},
	OP_CLEAR:           {0xFFFF, 0x00E0, "00E0"},
	OP_RET:             {0xFFFF, 0x00EE, "00EE"},
	OP_JMP:             {0xF000, 0x1000, "1NNN"},
	OP_SUBROUTINE:      {0xF000, 0x2000, "2NNN"},
	OP_EQUAL:           {0xF000, 0x3000, "3XNN"},
	OP_NEQUAL:          {0xF000, 0x4000, "4XNN"},
	OP_REG_EQUAL:       {0xF00F, 0x5000, "5XY0"},
	OP_REG_SET:         {0xF000, 0x6000, "6XNN"},
	OP_REG_ADD:         {0xF000, 0x7000, "7XNN"},
	OP_REG_SET_REG:     {0xF00F, 0x8000, "8XY0"},
	OP_OR:              {0xF00F, 0x8001, "8XY1"},
	OP_AND:             {0xF00F, 0x8002, "8XY2"},
	OP_XOR:             {0xF00F, 0x8003, "8XY3"},
	OP_ADD_EQUAL:       {0xF00F, 0x8004, "8XY4"},
	OP_SUB:             {0xF00F, 0x8005, "8XY5"},
	OP_RSHIFT:          {0xF00F, 0x8006, "8XY6"},
	OP_SUB_INV:         {0xF00F, 0x8007, "8XY7"},
	OP_LSHIFT:          {0xF00F, 0x800E, "8XYE"},
	OP_REG_NEQUAL:      {0xF00F, 0x9000, "9XY0"},
	OP_SET_IDX:         {0xF000, 0xA000, "ANNN"},
	OP_JMP_OFF:         {0xF000, 0xB000, "BNNN"},
	OP_RANDOM:          {0xF000, 0xC000, "CXNN"},
	OP_DISPLAY:         {0xF000, 0xD000, "DXYN"},
	OP_KEY_PRESSED:     {0xF0FF, 0xE09E, "EX9E"},
	OP_KEY_NOT_PRESSED: {0xF0FF, 0xE0A1, "EXA1"},
	OP_GET_DTIMER:      {0xF0FF, 0xF007, "FX07"},
	OP_GET_KEY:         {0xF0FF, 0xF00A, "FX0A"},
	OP_SET_DTIMER:      {0xF0FF, 0xF015, "FX15"},
	OP_SET_STIMER:      {0xF0FF, 0xF018, "FX18"},
	OP_ADD_IDX:         {0xF0FF, 0xF01E, "FX1E"},
	OP_FONT:            {0xF0FF, 0xF029, "FX29"},
	OP_BCD:             {0xF0FF, 0xF033, "FX33"},
	OP_STORE_MEM:       {0xF0FF, 0xF055, "FX55"},
	OP_LOAD_MEM:        {0xF0FF, 0xF065, "FX65"},
}

func (o OPCODE) String() string {
	if o < 0 || o >= OP_UNKNOWN {
		return "????"
	}
	return opcodeTable[o].pattern
}

// Mask returns the table mask and id of the opcode family. OP_UNKNOWN has
// neither and reports false.
func (o OPCODE) Mask() (mask, id uint16, ok bool) {
	if o < 0 || o >= OP_UNKNOWN {
		return 0, 0, false
	}
	e := opcodeTable[o]
	return e.mask, e.id, true
}

// Classify returns the family of the first table entry matching word, or
// OP_UNKNOWN.
func Classify(word uint16) OPCODE {
	for i, e := range opcodeTable {
		if word&e.mask == e.id {
			return OPCODE(i)
		}
	}
	return OP_UNKNOWN
}

type Operation struct {
	opcodeHex uint16
	opcode    OPCODE
	x         byte
	y         byte
	n         byte
	nn        uint8
	nnn       uint16
}

func Decode(word uint16) Operation {
	return Operation{
		opcodeHex: word,
		opcode:    Classify(word),
		x:         byte((word & 0x0F00) >> 8),
		y:         byte((word & 0x00F0) >> 4),
		n:         byte(word & 0x000F),
		nn:        uint8(word & 0x00FF),
		nnn:       word & 0x0FFF,
	}
}

func (op Operation) Word() uint16 {
	return op.opcodeHex
}

func (op Operation) Opcode() OPCODE {
	return op.opcode
}

var mnemonics = map[OPCODE]string{
	OP_CLEAR:           "CLS",
	OP_RET:             "RET",
	OP_JMP:             "JP",
	OP_SUBROUTINE:      "CALL",
	OP_EQUAL:           "SE",
	OP_NEQUAL:          "SNE",
	OP_REG_EQUAL:       "SE",
	OP_REG_SET:         "LD",
	OP_REG_ADD:         "ADD",
	OP_REG_SET_REG:     "LD",
	OP_OR:              "OR",
	OP_AND:             "AND",
	OP_XOR:             "XOR",
	OP_ADD_EQUAL:       "ADD",
	OP_SUB:             "SUB",
	OP_RSHIFT:          "SHR",
	OP_SUB_INV:         "SUBN",
	OP_LSHIFT:          "SHL",
	OP_REG_NEQUAL:      "SNE",
	OP_SET_IDX:         "LD",
	OP_JMP_OFF:         "JP",
	OP_RANDOM:          "RND",
	OP_DISPLAY:         "DRW",
	OP_KEY_PRESSED:     "SKP",
	OP_KEY_NOT_PRESSED: "SKNP",
	OP_GET_DTIMER:      "LD",
	OP_GET_KEY:         "LD",
	OP_SET_DTIMER:      "LD",
	OP_SET_STIMER:      "LD",
	OP_ADD_IDX:         "ADD",
	OP_FONT:            "LD",
	OP_BCD:             "LD",
	OP_STORE_MEM:       "LD",
	OP_LOAD_MEM:        "LD",
}

// Mnemonic returns the assembler name of the operation.
func (op Operation) Mnemonic() string {
	if name, ok := mnemonics[op.opcode]; ok {
		return name
	}
	if op.opcode == OP_SYS {
		return "SYS"
	}
	return "DW"
}

// String returns the operation in assembler syntax.
func (op Operation) String() string {
	name := op.Mnemonic()
	switch op.opcode {
	case OP_CLEAR, OP_RET:
		return name
	case OP_SYS, OP_JMP, OP_SUBROUTINE:
		return fmt.Sprintf("%s $%03X", name, op.nnn)
	case OP_JMP_OFF:
		return fmt.Sprintf("%s V0, $%03X", name, op.nnn)
	case OP_SET_IDX:
		return fmt.Sprintf("%s I, $%03X", name, op.nnn)
	case OP_EQUAL, OP_NEQUAL, OP_REG_SET, OP_REG_ADD, OP_RANDOM:
		return fmt.Sprintf("%s V%X, $%02X", name, op.x, op.nn)
	case OP_REG_EQUAL, OP_REG_NEQUAL, OP_REG_SET_REG, OP_OR, OP_AND, OP_XOR,
		OP_ADD_EQUAL, OP_SUB, OP_RSHIFT, OP_SUB_INV, OP_LSHIFT:
		return fmt.Sprintf("%s V%X, V%X", name, op.x, op.y)
	case OP_DISPLAY:
		return fmt.Sprintf("%s V%X, V%X, %d", name, op.x, op.y, op.n)
	case OP_KEY_PRESSED, OP_KEY_NOT_PRESSED:
		return fmt.Sprintf("%s V%X", name, op.x)
	case OP_GET_DTIMER:
		return fmt.Sprintf("%s V%X, DT", name, op.x)
	case OP_GET_KEY:
		return fmt.Sprintf("%s V%X, K", name, op.x)
	case OP_SET_DTIMER:
		return fmt.Sprintf("%s DT, V%X", name, op.x)
	case OP_SET_STIMER:
		return fmt.Sprintf("%s ST, V%X", name, op.x)
	case OP_ADD_IDX:
		return fmt.Sprintf("%s I, V%X", name, op.x)
	case OP_FONT:
		return fmt.Sprintf("%s F, V%X", name, op.x)
	case OP_BCD:
		return fmt.Sprintf("%s B, V%X", name, op.x)
	case OP_STORE_MEM:
		return fmt.Sprintf("%s [I], V%X", name, op.x)
	case OP_LOAD_MEM:
		return fmt.Sprintf("%s V%X, [I]", name, op.x)
	}
	return fmt.Sprintf("%s $%04X", name, op.opcodeHex)
}
