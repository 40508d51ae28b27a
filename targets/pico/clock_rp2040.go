//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"
)

// RP2040 TIMER peripheral: 64-bit free-running microsecond counter.
const (
	timerBase     = 0x40054000
	timerTimeRawH = timerBase + 0x08 // TIMERAWH
	timerTimeRawL = timerBase + 0x0C // TIMERAWL
)

var (
	timerRawH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTimeRawH)))
	timerRawL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTimeRawL)))
)
