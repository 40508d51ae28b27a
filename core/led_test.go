package core

import "testing"

func TestLedModesDriveLevel(t *testing.T) {
	var l ledChannel

	if level := l.apply(LedOn, 0, 0); !level {
		t.Error("ON must drive the level high")
	}
	if level := l.apply(LedOff, 0, 0); level {
		t.Error("OFF must drive the level low")
	}
}

func TestLedBlinkForcesHighAndResetsTimer(t *testing.T) {
	var l ledChannel
	l.apply(LedOn, 0, 0)

	if level := l.apply(LedBlink, 250, 1000); !level {
		t.Fatal("Entering BLINK must force the level high")
	}
	if l.lastToggle != 1000 {
		t.Errorf("Toggle timer not reset: %d", l.lastToggle)
	}
	if l.periodMS != 250 {
		t.Errorf("Expected period 250, got %d", l.periodMS)
	}
}

func TestLedBlinkToggleCadence(t *testing.T) {
	var l ledChannel
	l.apply(LedBlink, 250, 0)

	if l.update(100) || l.update(249) {
		t.Fatal("Level flipped before the period elapsed")
	}
	if !l.update(250) {
		t.Fatal("Level did not flip at the period boundary")
	}
	if l.level {
		t.Error("Expected low level after the first flip")
	}
	if !l.update(500) {
		t.Fatal("Second flip missing")
	}
	if !l.level {
		t.Error("Expected high level after the second flip")
	}
}

func TestLedBlinkPeriodClamped(t *testing.T) {
	var l ledChannel
	l.apply(LedBlink, 10, 0)
	if l.periodMS != BlinkMinMS {
		t.Errorf("Expected period clamped to %d, got %d", BlinkMinMS, l.periodMS)
	}
}

func TestLedStaticModesNeedNoPolling(t *testing.T) {
	var l ledChannel

	l.apply(LedOn, 0, 0)
	if l.update(10000) {
		t.Error("ON channel flipped during update")
	}
	l.apply(LedOff, 0, 0)
	if l.update(20000) {
		t.Error("OFF channel flipped during update")
	}
}

func TestLedBlinkNoDriftCorrection(t *testing.T) {
	var l ledChannel
	l.apply(LedBlink, 100, 0)

	// A long stall covers several nominal periods but yields one flip;
	// the timer restarts at the observation time.
	if !l.update(350) {
		t.Fatal("Expected a flip after the stall")
	}
	if l.lastToggle != 350 {
		t.Errorf("Timer must restart at the flip, got %d", l.lastToggle)
	}
	if l.update(449) {
		t.Error("Missed toggles must not be caught up")
	}
	if !l.update(450) {
		t.Error("Next flip due a full period after the last one")
	}
}

func TestLedBlinkAcrossClockWrap(t *testing.T) {
	var l ledChannel
	start := uint32(0xFFFFFFC0)
	l.apply(LedBlink, 100, start)

	if l.update(start + 99) {
		t.Error("Flipped early near the wrap")
	}
	if !l.update(start + 100) { // wrapped clock value
		t.Error("Flip across the clock wrap missing")
	}
}
