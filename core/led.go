package core

// LedMode is the commanded display mode of one LED channel.
type LedMode uint8

const (
	LedOff LedMode = iota
	LedOn
	LedBlink
)

// ledChannel holds one LED's mode, blink timing and output level. The level
// is low in LedOff, high in LedOn, and flips every periodMS in LedBlink,
// measured from the last flip rather than aligned to the wall clock.
type ledChannel struct {
	mode       LedMode
	periodMS   uint32 // blink half-period, meaningful in LedBlink only
	lastToggle uint32 // clock of the last level flip
	level      bool   // current output level
}

// apply performs a commanded mode transition and reports the resulting
// level. Entering LedBlink clamps the period to BlinkMinMS, forces the level
// high and restarts the toggle timer at now.
func (l *ledChannel) apply(mode LedMode, periodMS, now uint32) bool {
	l.mode = mode
	switch mode {
	case LedOff:
		l.level = false
	case LedOn:
		l.level = true
	case LedBlink:
		if periodMS < BlinkMinMS {
			periodMS = BlinkMinMS
		}
		l.periodMS = periodMS
		l.level = true
		l.lastToggle = now
	}
	return l.level
}

// update advances blink timing one poll and reports whether the level
// flipped. Missed toggles during a stall are not caught up; the next check
// simply sees a longer elapsed interval.
func (l *ledChannel) update(now uint32) bool {
	if l.mode != LedBlink {
		return false
	}
	if Elapsed(now, l.lastToggle) < l.periodMS {
		return false
	}
	l.level = !l.level
	l.lastToggle = now
	return true
}
