package core

// The firmware clock is a free-running millisecond counter. It wraps after
// roughly 49.7 days; all elapsed-time math goes through Elapsed, which stays
// correct across the wrap.

// GetTimeMS returns the current clock value in milliseconds.
func GetTimeMS() uint32 {
	return getSystemMillis()
}

// SetTimeMS sets the clock (hardware integration and tests).
func SetTimeMS(ms uint32) {
	setSystemMillis(ms)
}

// Elapsed returns now-since in milliseconds. Unsigned subtraction keeps the
// result valid across a counter wrap.
func Elapsed(now, since uint32) uint32 {
	return now - since
}
