//go:build rp2040 || rp2350

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"panelfw/core"
)

// Optional ws2812 strip mirroring the four channel LEDs, one pixel per
// channel. Set stripPin to machine.NoPin on boards without a strip.
const stripPin = machine.GP15

var (
	stripOn  = color.RGBA{R: 0, G: 64, B: 16}
	stripOff = color.RGBA{}
)

type statusStrip struct {
	dev    ws2812.Device
	pixels [core.NumChannels]color.RGBA
	active bool
}

func newStatusStrip() *statusStrip {
	s := &statusStrip{}
	if stripPin == machine.NoPin {
		return s
	}
	stripPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	s.dev = ws2812.New(stripPin)
	s.active = true
	s.show()
	return s
}

// set mirrors one channel level onto its pixel and pushes the frame.
func (s *statusStrip) set(ch int, on bool) {
	if !s.active {
		return
	}
	if on {
		s.pixels[ch] = stripOn
	} else {
		s.pixels[ch] = stripOff
	}
	s.show()
}

func (s *statusStrip) show() {
	s.dev.WriteColors(s.pixels[:])
}
