//go:build tinygo

package core

import "sync/atomic"

// The serial reader goroutine and the poll loop share the clock, so the
// TinyGo build goes through atomics.

var systemMillisValue uint32

func getSystemMillis() uint32 {
	return atomic.LoadUint32(&systemMillisValue)
}

func setSystemMillis(ms uint32) {
	atomic.StoreUint32(&systemMillisValue, ms)
}
