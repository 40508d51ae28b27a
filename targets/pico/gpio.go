//go:build rp2040 || rp2350

package main

import (
	"machine"

	"panelfw/core"
)

// Pin map. Buttons are active low behind internal pull-ups; LEDs drive high.
var (
	buttonPins = [core.NumChannels]machine.Pin{
		machine.GP2, machine.GP3, machine.GP4, machine.GP5,
	}
	ledPins = [core.NumChannels]machine.Pin{
		machine.GP6, machine.GP7, machine.GP8, machine.GP9,
	}
)

// panelPins implements core.GPIODriver on the board pins.
type panelPins struct {
	strip *statusStrip
}

func newPanelPins() *panelPins {
	for _, pin := range buttonPins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	for _, pin := range ledPins {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
	}
	return &panelPins{strip: newStatusStrip()}
}

// ReadButton samples channel ch; a pressed button shorts its pin to ground.
func (p *panelPins) ReadButton(ch int) bool {
	return !buttonPins[ch].Get()
}

func (p *panelPins) SetLED(ch int, on bool) {
	ledPins[ch].Set(on)
	p.strip.set(ch, on)
}
