// Package chip8 implements the CHIP-8 virtual machine: 4K of memory, sixteen
// 8-bit registers, the index register, a 15 entry call stack and the delay
// and sound timers.
//
// # Instruction cycle
//
// Step fetches the big-endian word at pc, classifies it with an ordered
// mask/id table, executes it, adds 2 to pc and decrements both timers.
// Instructions that set pc (jumps, calls, returns) account for the +2.
//
// # Collaborators
//
// The machine draws through a Display and reads keys through an Input.
// FrameBuffer and Keypad are in-memory implementations that hosts render
// from and feed events into.
//
// # Key wait
//
// FX0A does not block. It moves the machine to StateAwaitingKey and arms
// the Input's one-shot wait; the host keeps calling Step (which then only
// ticks the timers) until the Input delivers a key press through Resume.
package chip8
