//go:build rp2350

package main

import (
	"runtime/volatile"
	"unsafe"
)

// RP2350 TIMER0 peripheral. Register layout differs from the RP2040:
// the raw counter words live at 0x24/0x28.
const (
	timerBase     = 0x400B0000
	timerTimeRawH = timerBase + 0x24 // TIMERAWH
	timerTimeRawL = timerBase + 0x28 // TIMERAWL
)

var (
	timerRawH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTimeRawH)))
	timerRawL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTimeRawL)))
)
