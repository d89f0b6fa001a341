package events

import (
	"github.com/rs/zerolog"

	"github.com/vsinha/dockplan/pkg/domain/entities"
)

const (
	SlotScheduledEvent = "slot.scheduled"
	ItemInboundedEvent = "item.inbounded"
	POCompletedEvent   = "po.completed"
	RunCompletedEvent  = "run.completed"
)

// SchedulingEventTypes lists every event a scheduling run publishes
var SchedulingEventTypes = []string{
	SlotScheduledEvent,
	ItemInboundedEvent,
	POCompletedEvent,
	RunCompletedEvent,
}

type SlotScheduled struct {
	Sample entities.PerformanceSample `json:"sample"`
}

type ItemInbounded struct {
	Record entities.InboundRecord `json:"record"`
}

type POCompleted struct {
	POID   entities.POID   `json:"po_id"`
	DockID entities.DockID `json:"dock_id"`
}

type RunCompleted struct {
	Slots     int `json:"slots"`
	Inbounded int `json:"inbounded"`
	Pending   int `json:"pending"`
	Dropped   int `json:"dropped"`
}

// LogHandler writes scheduling events to a zerolog logger at debug level
type LogHandler struct {
	logger zerolog.Logger
}

func NewLogHandler(logger zerolog.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

func (h *LogHandler) CanHandle(eventType string) bool {
	for _, t := range SchedulingEventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

func (h *LogHandler) Handle(event Event) error {
	e := h.logger.Debug().Str("event", event.Type()).Str("run_id", event.StreamID()).Int("version", event.Version())

	switch data := event.Data().(type) {
	case SlotScheduled:
		e = e.Time("slot_start", data.Sample.SlotEnd).Float64("performance", data.Sample.Performance)
	case ItemInbounded:
		e = e.Str("dock_id", string(data.Record.DockID)).
			Str("po_id", string(data.Record.POID)).
			Str("item_id", string(data.Record.ItemID)).
			Int64("quantity", int64(data.Record.Quantity))
	case POCompleted:
		e = e.Str("po_id", string(data.POID)).Str("dock_id", string(data.DockID))
	case RunCompleted:
		e = e.Int("slots", data.Slots).Int("inbounded", data.Inbounded).Int("pending", data.Pending).Int("dropped", data.Dropped)
	}

	e.Msg("scheduling event")
	return nil
}
