package entities

import "time"

// InboundOutcome is the result of trying to unload an item at a dock
type InboundOutcome int

const (
	Inbounded InboundOutcome = iota
	CapacityFull
	CapacityExceeded
	InboundFailedQuantity
)

// String method for InboundOutcome enum
func (o InboundOutcome) String() string {
	switch o {
	case Inbounded:
		return "inbounded"
	case CapacityFull:
		return "capacity_full"
	case CapacityExceeded:
		return "capacity_exceeded"
	case InboundFailedQuantity:
		return "inbounded_failed_quantity"
	default:
		return "unknown"
	}
}

// Dock is the live state of one dock across every slot it appears in.
// Capacity is reset at each slot boundary; OccupantPO is not.
type Dock struct {
	ID           DockID
	SlotStart    time.Time
	SlotEnd      time.Time
	Capacity     Quantity
	SlotCapacity Quantity
	MaxCapacity  Quantity
	OccupantPO   POID
}

// NewDock creates a dock from its first slot row
func NewDock(row DockRow) *Dock {
	return &Dock{
		ID:           row.DockID,
		SlotStart:    row.SlotStart,
		SlotEnd:      row.SlotEnd,
		Capacity:     row.Capacity,
		SlotCapacity: row.Capacity,
		MaxCapacity:  row.MaxCapacity,
	}
}

// ResetSlot moves the dock into a new slot. The occupant carries over.
func (d *Dock) ResetSlot(row DockRow) {
	d.Capacity = row.Capacity
	d.SlotCapacity = row.Capacity
	d.SlotStart = row.SlotStart
	d.SlotEnd = row.SlotEnd
	if row.MaxCapacity > d.MaxCapacity {
		d.MaxCapacity = row.MaxCapacity
	}
}

// Occupy gives a purchase order exclusive use of the dock
func (d *Dock) Occupy(po POID) {
	d.OccupantPO = po
}

// Release frees the dock for other purchase orders
func (d *Dock) Release() {
	d.OccupantPO = ""
}

// IsOccupied reports whether a purchase order holds the dock
func (d *Dock) IsOccupied() bool {
	return d.OccupantPO != ""
}

// IsAvailable reports whether the dock can accept a new purchase order
func (d *Dock) IsAvailable() bool {
	return !d.IsOccupied() && d.Capacity > 0
}

// InboundItem unloads quantity units into the dock. The checks run in a
// fixed order: a full dock ends the caller's item loop, the other failures
// only skip the item.
func (d *Dock) InboundItem(quantity Quantity) InboundOutcome {
	switch {
	case d.Capacity == 0:
		return CapacityFull
	case quantity > d.MaxCapacity:
		return CapacityExceeded
	case quantity > d.Capacity:
		return InboundFailedQuantity
	}
	d.Capacity -= quantity
	return Inbounded
}
