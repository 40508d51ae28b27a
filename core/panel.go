package core

import "panelfw/protocol"

// Panel is the whole control core: four button channels, four LED channels,
// the line reader and command dispatcher, and the outbound emitter. All
// channel state lives in fixed arrays for the life of the process and is
// only ever touched from the poll loop.
type Panel struct {
	buttons [NumChannels]buttonChannel
	leds    [NumChannels]ledChannel

	reader   protocol.LineReader
	registry *CommandRegistry
	emitter  *Emitter

	rx     *protocol.FifoBuffer
	fields [][]byte // dispatch scratch, reused across lines
}

// NewPanel wires the control core to the outbound buffer. The GPIO driver
// must be registered before Init is called.
func NewPanel(out protocol.OutputBuffer) *Panel {
	p := &Panel{
		registry: NewCommandRegistry(),
		emitter:  NewEmitter(out),
		rx:       protocol.NewFifoBuffer(2 * protocol.LineMax),
		fields:   make([][]byte, 0, protocol.MaxFields),
	}
	InitPanelCommands(p.registry)
	return p
}

// RxBuffer exposes the inbound byte FIFO for the serial glue to fill.
func (p *Panel) RxBuffer() *protocol.FifoBuffer {
	return p.rx
}

// Init samples the boot-time button levels, forces every LED off, and
// announces readiness.
func (p *Panel) Init() {
	now := GetTimeMS()
	io := MustGPIO()
	for ch := range p.buttons {
		p.buttons[ch].init(io.ReadButton(ch), now)
	}
	for ch := range p.leds {
		io.SetLED(ch, p.leds[ch].apply(LedOff, 0, now))
	}
	p.emitter.Ready()
}

// Poll runs one loop iteration: drain every pending inbound byte, then
// advance the buttons, then the LEDs. Command intake runs first so button
// polling never delays it.
func (p *Panel) Poll() {
	p.drainInput()
	p.updateButtons()
	p.updateLEDs()
}

func (p *Panel) drainInput() {
	for {
		b, ok := p.rx.ReadByte()
		if !ok {
			return
		}
		if line, done := p.reader.Feed(b); done {
			p.dispatch(line)
		}
	}
}

func (p *Panel) dispatch(line []byte) {
	p.fields = protocol.SplitFields(p.fields[:0], line)
	p.registry.Dispatch(p, p.fields)
}

func (p *Panel) updateButtons() {
	now := GetTimeMS()
	io := MustGPIO()
	for ch := range p.buttons {
		ch := ch
		p.buttons[ch].update(io.ReadButton(ch), now, func(ev ButtonEvent) {
			p.emitter.ButtonEvent(ch, ev)
		})
	}
}

func (p *Panel) updateLEDs() {
	now := GetTimeMS()
	io := MustGPIO()
	for ch := range p.leds {
		if p.leds[ch].update(now) {
			io.SetLED(ch, p.leds[ch].level)
		}
	}
}

// setLED applies an accepted LED command synchronously with receipt.
func (p *Panel) setLED(ch int, mode LedMode, periodMS, now uint32) {
	MustGPIO().SetLED(ch, p.leds[ch].apply(mode, periodMS, now))
}
