package entities

import (
	"fmt"
	"time"
)

// PORow is one flat purchase order line as supplied by ingestion
type PORow struct {
	POID     POID
	ItemID   ItemID
	Quantity Quantity
}

// DockRow is one dock's capacity for one slot. MaxCapacity is filled in by
// the arrangement stage and is the largest capacity the dock has across
// all rows.
type DockRow struct {
	DockID      DockID
	SlotStart   time.Time
	SlotEnd     time.Time
	Capacity    Quantity
	MaxCapacity Quantity
}

// NewDockRow creates a validated DockRow
func NewDockRow(dockID DockID, slotStart, slotEnd time.Time, capacity Quantity) (*DockRow, error) {
	if string(dockID) == "" {
		return nil, fmt.Errorf("dock id cannot be empty")
	}
	if capacity < 0 {
		return nil, fmt.Errorf("capacity cannot be negative, got %d", capacity)
	}
	if slotStart.After(slotEnd) {
		return nil, fmt.Errorf("slot start %v cannot be after slot end %v", slotStart, slotEnd)
	}

	return &DockRow{
		DockID:    dockID,
		SlotStart: slotStart,
		SlotEnd:   slotEnd,
		Capacity:  capacity,
	}, nil
}

// Key returns the slot this row belongs to
func (r DockRow) Key() SlotKey {
	return NewSlotKey(r.SlotStart, r.SlotEnd)
}

// SlotKey identifies a slot by its start and end timestamps
type SlotKey struct {
	Start time.Time
	End   time.Time
}

// NewSlotKey normalizes both timestamps to UTC so equal instants compare equal
func NewSlotKey(start, end time.Time) SlotKey {
	return SlotKey{Start: start.UTC(), End: end.UTC()}
}

// Before orders keys chronologically by start, then end
func (k SlotKey) Before(other SlotKey) bool {
	if !k.Start.Equal(other.Start) {
		return k.Start.Before(other.Start)
	}
	return k.End.Before(other.End)
}

func (k SlotKey) String() string {
	return fmt.Sprintf("%s:%s", k.Start.Format(time.RFC3339), k.End.Format(time.RFC3339))
}

// Slot is one scheduling round: the dock rows sharing a slot key
type Slot struct {
	Key   SlotKey
	Docks []DockRow
}
