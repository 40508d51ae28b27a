package core

// Panel geometry. Channel ids are 1-based on the wire and 0-based in the
// per-channel arrays.
const NumChannels = 4

// Timing parameters, all in clock milliseconds.
const (
	// DebounceMS is how long a raw level must hold before it is accepted
	// as the logical button state.
	DebounceMS = 30

	// HoldRepeatMS is the cadence of HOLD events while a button stays
	// debounced-pressed.
	HoldRepeatMS = 500

	// BlinkDefaultMS is the blink half-period when a BLINK command omits
	// the argument.
	BlinkDefaultMS = 500

	// BlinkMinMS is the floor for commanded blink half-periods.
	BlinkMinMS = 100
)
