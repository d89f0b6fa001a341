package database

import (
	"time"

	"github.com/vsinha/dockplan/pkg/domain/entities"
)

// DockSlot is one dock's capacity for one slot. A dock appears at most once
// per slot.
type DockSlot struct {
	ID            uint      `gorm:"primaryKey"`
	DockID        string    `gorm:"column:dock_id;type:varchar(64);not null;uniqueIndex:idx_dock_slot"`
	SlotStartDate time.Time `gorm:"column:slot_start_date;not null;uniqueIndex:idx_dock_slot"`
	SlotEndDate   time.Time `gorm:"column:slot_end_date;not null;uniqueIndex:idx_dock_slot"`
	Capacity      int64     `gorm:"column:capacity;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DockSlot) TableName() string { return "dock_slots" }

func (m DockSlot) toEntity() *entities.DockRow {
	return &entities.DockRow{
		DockID:    entities.DockID(m.DockID),
		SlotStart: m.SlotStartDate.UTC(),
		SlotEnd:   m.SlotEndDate.UTC(),
		Capacity:  entities.Quantity(m.Capacity),
	}
}

// POItem is one purchase order line.
type POItem struct {
	ID        uint   `gorm:"primaryKey"`
	POID      string `gorm:"column:po_id;type:varchar(64);not null;index"`
	ItemID    string `gorm:"column:item_id;type:varchar(64);not null"`
	Quantity  int64  `gorm:"column:quantity;not null"`
	CreatedAt time.Time
}

func (POItem) TableName() string { return "po_items" }

// ItemInbound records one item placed at a dock during a scheduling run.
// Sequence is the record's placement position within its run.
type ItemInbound struct {
	ID                  uint      `gorm:"primaryKey"`
	RunID               string    `gorm:"column:run_id;type:varchar(36);not null;uniqueIndex:idx_item_inbound"`
	Sequence            int       `gorm:"column:sequence;not null;uniqueIndex:idx_item_inbound"`
	DockID              string    `gorm:"column:dock_id;type:varchar(64);not null;index"`
	POID                string    `gorm:"column:po_id;type:varchar(64);not null"`
	ItemID              string    `gorm:"column:item_id;type:varchar(64);not null"`
	SlotStartDate       time.Time `gorm:"column:slot_start_date;not null;index"`
	SlotEndDate         time.Time `gorm:"column:slot_end_date;not null"`
	Quantity            int64     `gorm:"column:quantity;not null"`
	DockCurrentCapacity int64     `gorm:"column:dock_current_capacity;not null"`
	CreatedAt           time.Time
}

func (ItemInbound) TableName() string { return "item_inbound" }

func newItemInbound(runID string, sequence int, record entities.InboundRecord) ItemInbound {
	return ItemInbound{
		RunID:               runID,
		Sequence:            sequence,
		DockID:              string(record.DockID),
		POID:                string(record.POID),
		ItemID:              string(record.ItemID),
		SlotStartDate:       record.SlotStart.UTC(),
		SlotEndDate:         record.SlotEnd.UTC(),
		Quantity:            int64(record.Quantity),
		DockCurrentCapacity: int64(record.DockRemainingCapacity),
	}
}

func (m ItemInbound) toEntity() entities.InboundRecord {
	return entities.InboundRecord{
		SlotStart:             m.SlotStartDate.UTC(),
		SlotEnd:               m.SlotEndDate.UTC(),
		DockID:                entities.DockID(m.DockID),
		POID:                  entities.POID(m.POID),
		ItemID:                entities.ItemID(m.ItemID),
		Quantity:              entities.Quantity(m.Quantity),
		DockRemainingCapacity: entities.Quantity(m.DockCurrentCapacity),
	}
}
