package chip8

import "errors"

// StackCapacity is the number of return addresses the call stack holds.
const StackCapacity = 15

// ErrStackOverflow is returned when a subroutine call is made with a full
// call stack.
var ErrStackOverflow = errors.New("call stack overflow")

// Stack is a bounded stack of return addresses.
type Stack struct {
	entries [StackCapacity]uint16
	depth   int
}

// Push fails with ErrStackOverflow instead of overwriting an entry.
func (s *Stack) Push(addr uint16) error {
	if s.depth == StackCapacity {
		return ErrStackOverflow
	}
	s.entries[s.depth] = addr
	s.depth++
	return nil
}

func (s *Stack) Pop() (uint16, bool) {
	if s.depth == 0 {
		return 0, false
	}
	s.depth--
	return s.entries[s.depth], true
}

func (s *Stack) Len() int {
	return s.depth
}

// Entries returns the pending return addresses, oldest first.
func (s *Stack) Entries() []uint16 {
	return append([]uint16(nil), s.entries[:s.depth]...)
}
