//go:build !tinygo

package core

var systemMillis uint32

// getSystemMillis returns the clock value (regular Go implementation)
func getSystemMillis() uint32 {
	return systemMillis
}

// setSystemMillis sets the clock value (regular Go implementation)
func setSystemMillis(ms uint32) {
	systemMillis = ms
}
