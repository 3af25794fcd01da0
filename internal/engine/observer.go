package engine

import "time"

// EventType represents different lifecycle phases of a command
type EventType string

const (
	EventParseStart EventType = "parse_start"
	EventParseEnd   EventType = "parse_end"
	EventExecStart  EventType = "exec_start"
	EventExecEnd    EventType = "exec_end"
)

// Event represents a lifecycle event in command execution
type Event struct {
	Type      EventType   // Type of event
	QueryID   string      // Per-command ID for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (command line, parsed command, outcome)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}
