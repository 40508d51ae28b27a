//go:build (rp2040 || rp2350) && panel_uart

package main

import (
	"context"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// Host link over hardware UART0 (GP0 TX / GP1 RX on the Pico) for
// boards wired to a USB-serial adapter instead of the CDC port.
// Select with -tags panel_uart.

const linkBaud = 115200

func initLink() {
	uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: linkBaud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
}

// linkRead blocks until at least one byte is available.
func linkRead(buf []byte) (int, error) {
	return uartx.UART0.RecvSomeContext(context.Background(), buf)
}

func linkWrite(data []byte) (int, error) {
	return uartx.UART0.Write(data)
}
