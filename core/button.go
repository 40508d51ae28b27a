package core

// ButtonEvent identifies a debounced button transition reported to the host.
type ButtonEvent uint8

const (
	ButtonDown ButtonEvent = iota
	ButtonUp
	ButtonHold
)

// String returns the wire name of the event.
func (e ButtonEvent) String() string {
	switch e {
	case ButtonDown:
		return "DOWN"
	case ButtonUp:
		return "UP"
	default:
		return "HOLD"
	}
}

// buttonChannel tracks one physical button through debounce and hold-repeat.
// The debounced state only changes after the raw level has held steady for
// DebounceMS since the last raw flip.
type buttonChannel struct {
	rawPressed bool   // last instantaneous sample
	pressed    bool   // accepted, stable logical state
	lastChange uint32 // clock of the last raw flip
	lastHold   uint32 // clock of the last DOWN or HOLD while pressed
}

// init adopts the boot-time level directly into both raw and debounced
// state, so a button already held at power-up fires no spurious DOWN.
func (b *buttonChannel) init(level bool, now uint32) {
	b.rawPressed = level
	b.pressed = level
	b.lastChange = now
	b.lastHold = now
}

// update advances the state machine one poll with the current raw sample.
// emit is called once per event, in the order the events occur.
func (b *buttonChannel) update(level bool, now uint32, emit func(ButtonEvent)) {
	if level != b.rawPressed {
		// Any flip, bounce included, restarts the debounce window.
		b.rawPressed = level
		b.lastChange = now
		return
	}
	if Elapsed(now, b.lastChange) <= DebounceMS {
		return
	}
	if b.rawPressed != b.pressed {
		b.pressed = b.rawPressed
		if b.pressed {
			b.lastHold = now
			emit(ButtonDown)
		} else {
			emit(ButtonUp)
		}
		return
	}
	if b.pressed && Elapsed(now, b.lastHold) > HoldRepeatMS {
		// Periodic re-arm: HOLD keeps firing at this cadence until UP.
		b.lastHold = now
		emit(ButtonHold)
	}
}
