// Package events publishes what happened during a scheduling run to
// in-process subscribers. Each run is one stream keyed by its run id.
package events

import (
	"time"
)

// Event is one occurrence within a run. Version is the 1-based position of
// the event in its run's stream and is assigned by the store.
type Event interface {
	Type() string
	StreamID() string
	Data() any
	Timestamp() time.Time
	Version() int
}

// EventHandler receives the events it was subscribed to and accepts
type EventHandler interface {
	Handle(event Event) error
	CanHandle(eventType string) bool
}

// EventStore keeps each run's events in order and fans them out to
// subscribers as they are appended
type EventStore interface {
	AppendEvent(streamID string, event Event) error
	ReadEvents(streamID string, fromVersion int) ([]Event, error)
	Subscribe(eventTypes []string, handler EventHandler) error
}

// RunEvent is the stored form of an Event
type RunEvent struct {
	Kind     string
	RunID    string
	Payload  any
	Occurred time.Time
	Sequence int
}

func (e RunEvent) Type() string         { return e.Kind }
func (e RunEvent) StreamID() string     { return e.RunID }
func (e RunEvent) Data() any            { return e.Payload }
func (e RunEvent) Timestamp() time.Time { return e.Occurred }
func (e RunEvent) Version() int         { return e.Sequence }

// NewEvent builds an unsequenced event for the run stream
func NewEvent(eventType, runID string, data any) Event {
	return RunEvent{
		Kind:     eventType,
		RunID:    runID,
		Payload:  data,
		Occurred: time.Now().UTC(),
	}
}
