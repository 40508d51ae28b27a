//go:build rp2040 || rp2350

package main

import "panelfw/core"

// hardwareUptime reads the full 64-bit microsecond timer.
// High must be read, then low, then high again to detect rollover.
func hardwareUptime() uint64 {
	for {
		high1 := timerRawH.Get()
		low := timerRawL.Get()
		high2 := timerRawH.Get()

		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
		// Rollover happened during the read; retry.
	}
}

// updateSystemTime refreshes the core millisecond clock from the
// hardware timer. Called once per poll-loop iteration.
func updateSystemTime() {
	core.SetTimeMS(uint32(hardwareUptime() / 1000))
}
