package core

import "panelfw/protocol"

// InitPanelCommands registers the host-facing command topics.
func InitPanelCommands(r *CommandRegistry) {
	r.Register("LED", handleLED)
	r.Register("PING", handlePING)
}

// handleLED parses LED|<id>|<mode>[|<arg>]. A missing field, an unparsable
// or out-of-range channel id, or an unrecognized mode leaves every channel
// in its previous state. Accepted commands take effect immediately.
func handleLED(p *Panel, fields [][]byte) {
	if len(fields) < 3 {
		return
	}
	id, ok := protocol.ParseUint(fields[1])
	if !ok || id < 1 || id > NumChannels {
		return
	}
	ch := int(id - 1)
	now := GetTimeMS()

	switch {
	case protocol.EqualFold(fields[2], "ON"):
		p.setLED(ch, LedOn, 0, now)
	case protocol.EqualFold(fields[2], "OFF"):
		p.setLED(ch, LedOff, 0, now)
	case protocol.EqualFold(fields[2], "BLINK"):
		period := uint32(BlinkDefaultMS)
		if len(fields) > 3 && len(fields[3]) > 0 {
			v, ok := protocol.ParseUint(fields[3])
			if !ok {
				return
			}
			period = v
		}
		p.setLED(ch, LedBlink, period, now)
	}
}

// handlePING answers with the fixed reply line, whatever trails the topic.
func handlePING(p *Panel, _ [][]byte) {
	p.emitter.Pong()
}
