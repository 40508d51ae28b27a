//go:build rp2040 || rp2350

// Command pico: launcher-panel firmware for RP2040/RP2350 boards.
//
// Build/flash (TinyGo):
//   tinygo flash -target pico ./targets/pico
//
// Wiring assumptions (edit the pin map in gpio.go):
// - Buttons on GP2..GP5, switched to ground, internal pull-ups (active low).
// - LEDs on GP6..GP9, driven high = lit.
// - Host link over USB CDC by default, UART0 with -tags panel_uart.
// - Optional ws2812 status strip on GP15 (see statusstrip.go).

package main

import (
	"time"

	"panelfw/core"
	"panelfw/protocol"
)

var (
	outputBuffer *protocol.ScratchOutput
	panel        *core.Panel

	// Debug counters
	linkErrors uint32
)

func main() {
	// Give the host a moment to finish enumeration before READY goes out.
	time.Sleep(2 * time.Second)

	initLink()

	outputBuffer = protocol.NewScratchOutput()
	core.SetGPIODriver(newPanelPins())

	panel = core.NewPanel(outputBuffer)

	updateSystemTime()
	panel.Init()
	flushLink()

	// Serial RX runs in its own goroutine; everything else stays on the
	// poll loop.
	go linkReaderLoop()

	for {
		// Recover from panics in the loop body to keep the firmware alive.
		func() {
			defer func() {
				if r := recover(); r != nil {
					linkErrors++
					panel.RxBuffer().Reset()
					outputBuffer.Reset()
				}
			}()

			updateSystemTime()
			panel.Poll()
			flushLink()
		}()

		// Yield to the reader goroutine.
		time.Sleep(100 * time.Microsecond)
	}
}

// linkReaderLoop feeds inbound serial bytes into the panel FIFO.
func linkReaderLoop() {
	buf := make([]byte, 32)
	for {
		n, err := linkRead(buf)
		if err != nil {
			linkErrors++
			continue
		}
		if panel.RxBuffer().Write(buf[:n]) < n {
			// FIFO full; bytes are lost and the line reader recovers
			// at the next terminator.
			linkErrors++
		}
	}
}

// flushLink writes the accumulated outbound lines to the serial link.
func flushLink() {
	data := outputBuffer.Result()
	if len(data) == 0 {
		return
	}
	written := 0
	for written < len(data) {
		n, err := linkWrite(data[written:])
		if err != nil || n == 0 {
			linkErrors++
			break
		}
		written += n
	}
	outputBuffer.Reset()
}
