package chip8

// KeyCount is the number of logical keys, 0x0 to 0xF.
const KeyCount = 16

// Keypad is an Input fed by a host with key transitions.
type Keypad struct {
	held   [KeyCount]bool
	waiter func(key uint8)
}

func NewKeypad() *Keypad {
	return &Keypad{}
}

// IsKeyHeld reports false for keys above 0xF.
func (k *Keypad) IsKeyHeld(key uint8) bool {
	if key >= KeyCount {
		return false
	}
	return k.held[key]
}

func (k *Keypad) AwaitKeyPress(resume func(key uint8)) {
	k.waiter = resume
}

// Waiting reports whether a key-press wait is armed.
func (k *Keypad) Waiting() bool {
	return k.waiter != nil
}

// Press marks key as held. If the key was up and a wait is armed, the wait
// receives the key and is disarmed.
func (k *Keypad) Press(key uint8) {
	if key >= KeyCount || k.held[key] {
		return
	}
	k.held[key] = true
	if k.waiter != nil {
		resume := k.waiter
		k.waiter = nil
		resume(key)
	}
}

func (k *Keypad) Release(key uint8) {
	if key >= KeyCount {
		return
	}
	k.held[key] = false
}

// Set presses or releases key.
func (k *Keypad) Set(key uint8, held bool) {
	if held {
		k.Press(key)
	} else {
		k.Release(key)
	}
}
