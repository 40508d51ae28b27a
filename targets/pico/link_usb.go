//go:build (rp2040 || rp2350) && !panel_uart

package main

import (
	"machine"
	"time"
)

// Host link over USB CDC. machine.Serial is the USB serial port on the
// Pico targets; the baud rate is meaningless over CDC but required by
// the config struct.

func initLink() {
	machine.Serial.Configure(machine.UARTConfig{})
}

// linkRead blocks until at least one byte is available, then drains up
// to len(buf) bytes.
func linkRead(buf []byte) (int, error) {
	for machine.Serial.Buffered() == 0 {
		time.Sleep(200 * time.Microsecond)
	}
	n := 0
	for n < len(buf) && machine.Serial.Buffered() > 0 {
		b, err := machine.Serial.ReadByte()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		buf[n] = b
		n++
	}
	return n, nil
}

func linkWrite(data []byte) (int, error) {
	return machine.Serial.Write(data)
}
