package entities

import "time"

// InboundRecord is produced once per item placed at a dock
type InboundRecord struct {
	SlotStart             time.Time `json:"slot_start_date"`
	SlotEnd               time.Time `json:"slot_end_date"`
	DockID                DockID    `json:"dock_id"`
	POID                  POID      `json:"po_id"`
	ItemID                ItemID    `json:"item_id"`
	Quantity              Quantity  `json:"quantity"`
	DockRemainingCapacity Quantity  `json:"dock_current_capacity"`
}

// PerformanceSample is the mean unused capacity ratio of a slot.
// SlotStart carries the slot's end time and SlotEnd its start time; report
// consumers depend on that ordering.
type PerformanceSample struct {
	SlotStart   time.Time `json:"slot_start_date"`
	SlotEnd     time.Time `json:"slot_end_date"`
	Performance float64   `json:"performance"`
}
