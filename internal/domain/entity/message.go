// Package entity contains the core business objects of the project.
package entity

// Message is a routed user-facing notification. It is produced by
// business logic, consumed exactly once by the transport layer, then
// discarded; it is never persisted.
type Message struct {
	Recipients []string `json:"recipients"` // Identity values (device ids, emails) whose live connections receive the event.
	Event      string   `json:"event"`
	Payload    any      `json:"payload"`
}

// Command is an internal control message for the transport layer, e.g.
// orderly shutdown. Commands have no recipients and never reach
// business logic.
type Command struct {
	Name string `json:"name"`
}

// Envelope carries exactly one message class over the bus.
type Envelope struct {
	Message *Message
	Command *Command
}
