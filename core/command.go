package core

import "panelfw/protocol"

// TopicHandler processes one parsed command line. fields[0] is the topic;
// handlers validate their own arguments and drop anything malformed.
type TopicHandler func(p *Panel, fields [][]byte)

type topicEntry struct {
	name    string
	handler TopicHandler
}

// CommandRegistry routes inbound lines by their topic field. Topics match
// case-insensitively; the handful of known topics makes a linear scan fine.
type CommandRegistry struct {
	topics []topicEntry
}

// NewCommandRegistry creates an empty registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{}
}

// Register adds a topic handler. Re-registering a topic replaces it.
func (r *CommandRegistry) Register(name string, h TopicHandler) {
	for i := range r.topics {
		if r.topics[i].name == name {
			r.topics[i].handler = h
			return
		}
	}
	r.topics = append(r.topics, topicEntry{name: name, handler: h})
}

// Count returns the number of registered topics.
func (r *CommandRegistry) Count() int {
	return len(r.topics)
}

// Dispatch routes one complete line. Unknown topics and empty lines are
// dropped silently; the protocol has no error channel.
func (r *CommandRegistry) Dispatch(p *Panel, fields [][]byte) {
	if len(fields) == 0 || len(fields[0]) == 0 {
		return
	}
	for i := range r.topics {
		if protocol.EqualFold(fields[0], r.topics[i].name) {
			r.topics[i].handler(p, fields)
			return
		}
	}
}
