package events

import (
	"sync"

	"github.com/rs/zerolog"
)

// InMemoryEventStore holds run streams for the life of the process
type InMemoryEventStore struct {
	streams     map[string][]Event
	subscribers map[string][]EventHandler
	mutex       sync.RWMutex
	logger      zerolog.Logger
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return NewInMemoryEventStoreWithLogger(zerolog.Nop())
}

// NewInMemoryEventStoreWithLogger reports handler failures through logger
func NewInMemoryEventStoreWithLogger(logger zerolog.Logger) *InMemoryEventStore {
	return &InMemoryEventStore{
		streams:     make(map[string][]Event),
		subscribers: make(map[string][]EventHandler),
		logger:      logger,
	}
}

var _ EventStore = (*InMemoryEventStore)(nil)

// AppendEvent sequences the event within its stream and then notifies
// subscribers in order. Handlers run on the caller's goroutine once the
// store lock is released.
func (s *InMemoryEventStore) AppendEvent(streamID string, event Event) error {
	s.mutex.Lock()
	stored := RunEvent{
		Kind:     event.Type(),
		RunID:    streamID,
		Payload:  event.Data(),
		Occurred: event.Timestamp(),
		Sequence: len(s.streams[streamID]) + 1,
	}
	s.streams[streamID] = append(s.streams[streamID], stored)
	s.mutex.Unlock()

	s.notifySubscribers(stored)

	return nil
}

// ReadEvents returns a copy of the stream from fromVersion onwards
func (s *InMemoryEventStore) ReadEvents(streamID string, fromVersion int) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stream := s.streams[streamID]
	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(stream) {
		return []Event{}, nil
	}

	return append([]Event(nil), stream[fromVersion-1:]...), nil
}

func (s *InMemoryEventStore) Subscribe(eventTypes []string, handler EventHandler) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}

	return nil
}

func (s *InMemoryEventStore) notifySubscribers(event Event) {
	s.mutex.RLock()
	handlers := append([]EventHandler(nil), s.subscribers[event.Type()]...)
	s.mutex.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(event.Type()) {
			continue
		}
		if err := handler.Handle(event); err != nil {
			s.logger.Error().Err(err).Str("event", event.Type()).Str("stream", event.StreamID()).Msg("event handler failed")
		}
	}
}
