package core

import "panelfw/protocol"

// Fixed outbound lines.
const (
	// ReadyLine announces the device once after peripheral initialization.
	ReadyLine = "READY|PANEL|1"

	// PongLine is the reply to PING.
	PongLine = "PONG"
)

// Emitter serializes device-to-host lines onto the outbound buffer.
type Emitter struct {
	out protocol.OutputBuffer
}

// NewEmitter creates an emitter writing to out.
func NewEmitter(out protocol.OutputBuffer) *Emitter {
	return &Emitter{out: out}
}

// Ready emits the startup readiness line.
func (e *Emitter) Ready() {
	e.line(ReadyLine)
}

// Pong emits the PING acknowledgement.
func (e *Emitter) Pong() {
	e.line(PongLine)
}

// ButtonEvent emits BTN|<id>|<event> for a 0-based channel index.
func (e *Emitter) ButtonEvent(ch int, ev ButtonEvent) {
	e.line("BTN|" + itoa(ch+1) + "|" + ev.String())
}

// line hands the terminated line to the buffer in one write, so a full
// buffer drops the line whole instead of truncating it.
func (e *Emitter) line(s string) {
	e.out.Output(append([]byte(s), protocol.TermLF))
}
