package events

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vsinha/dockplan/pkg/domain/entities"
)

type recordingHandler struct {
	types   map[string]bool
	handled []Event
	err     error
}

func (h *recordingHandler) Handle(event Event) error {
	h.handled = append(h.handled, event)
	return h.err
}

func (h *recordingHandler) CanHandle(eventType string) bool {
	return h.types[eventType]
}

func TestInMemoryEventStore_AppendAndRead(t *testing.T) {
	store := NewInMemoryEventStore()

	if err := store.AppendEvent("run-1", NewEvent(ItemInboundedEvent, "run-1", ItemInbounded{})); err != nil {
		t.Fatalf("Failed to append event: %v", err)
	}
	if err := store.AppendEvent("run-1", NewEvent(SlotScheduledEvent, "run-1", SlotScheduled{})); err != nil {
		t.Fatalf("Failed to append event: %v", err)
	}
	if err := store.AppendEvent("run-2", NewEvent(RunCompletedEvent, "run-2", RunCompleted{})); err != nil {
		t.Fatalf("Failed to append event: %v", err)
	}

	events, _ := store.ReadEvents("run-1", 0)
	if len(events) != 2 {
		t.Fatalf("Expected 2 events in run-1, got %d", len(events))
	}
	if events[1].Version() != 2 {
		t.Errorf("Expected second event version 2, got %d", events[1].Version())
	}

	fromTwo, _ := store.ReadEvents("run-1", 2)
	if len(fromTwo) != 1 || fromTwo[0].Type() != SlotScheduledEvent {
		t.Errorf("Expected only slot.scheduled from version 2, got %v", fromTwo)
	}

	missing, _ := store.ReadEvents("run-9", 1)
	if len(missing) != 0 {
		t.Errorf("Expected no events for unknown stream, got %d", len(missing))
	}

	other, _ := store.ReadEvents("run-2", 1)
	if len(other) != 1 || other[0].Version() != 1 {
		t.Fatalf("Expected run-2 to be sequenced on its own, got %v", other)
	}
	if other[0].StreamID() != "run-2" {
		t.Errorf("Expected event on run-2, got %s", other[0].StreamID())
	}
}

func TestInMemoryEventStore_NotifiesSubscribersInOrder(t *testing.T) {
	var buf bytes.Buffer
	store := NewInMemoryEventStoreWithLogger(zerolog.New(&buf))

	handler := &recordingHandler{types: map[string]bool{ItemInboundedEvent: true}}
	failing := &recordingHandler{types: map[string]bool{ItemInboundedEvent: true}, err: errors.New("boom")}
	_ = store.Subscribe([]string{ItemInboundedEvent, POCompletedEvent}, handler)
	_ = store.Subscribe([]string{ItemInboundedEvent}, failing)

	for _, item := range []entities.ItemID{"A", "B"} {
		data := ItemInbounded{Record: entities.InboundRecord{ItemID: item}}
		_ = store.AppendEvent("run-1", NewEvent(ItemInboundedEvent, "run-1", data))
	}
	// Subscribed but CanHandle rejects it
	_ = store.AppendEvent("run-1", NewEvent(POCompletedEvent, "run-1", POCompleted{POID: "1"}))

	if len(handler.handled) != 2 {
		t.Fatalf("Expected 2 handled events, got %d", len(handler.handled))
	}
	if got := handler.handled[1].Data().(ItemInbounded).Record.ItemID; got != "B" {
		t.Errorf("Expected second event for item B, got %s", got)
	}
	if !bytes.Contains(buf.Bytes(), []byte("event handler failed")) {
		t.Errorf("Expected handler failure to be logged, got %s", buf.String())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	handler := NewLogHandler(zerolog.New(&buf).Level(zerolog.DebugLevel))

	if !handler.CanHandle(POCompletedEvent) {
		t.Error("Expected log handler to accept po.completed")
	}
	if handler.CanHandle("order.planned") {
		t.Error("Expected log handler to reject unknown events")
	}

	record := entities.InboundRecord{
		SlotStart: time.Date(2018, 8, 1, 0, 0, 0, 0, time.UTC),
		DockID:    "D1",
		POID:      "7",
		ItemID:    "A",
		Quantity:  3,
	}
	if err := handler.Handle(NewEvent(ItemInboundedEvent, "run-1", ItemInbounded{Record: record})); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"event":"item.inbounded"`, `"run_id":"run-1"`, `"dock_id":"D1"`, `"quantity":3`} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("Expected log output to contain %s, got %s", want, out)
		}
	}
}
