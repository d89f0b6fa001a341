package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vsinha/dockplan/pkg/domain/entities"
	"github.com/vsinha/dockplan/pkg/domain/repositories"
)

const batchSize = 200

// Store persists dock slots, PO lines and inbound history through gorm
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open connection. Call Migrate before first use.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Verify interface compliance
var (
	_ repositories.DockSlotRepository      = (*Store)(nil)
	_ repositories.PurchaseOrderRepository = (*Store)(nil)
	_ repositories.InboundRepository       = (*Store)(nil)
)

// LoadDockRows upserts dock slots; an existing dock and slot gets the new capacity
func (s *Store) LoadDockRows(rows []*entities.DockRow) error {
	if len(rows) == 0 {
		return nil
	}

	models := make([]DockSlot, 0, len(rows))
	for _, row := range rows {
		models = append(models, DockSlot{
			DockID:        string(row.DockID),
			SlotStartDate: row.SlotStart.UTC(),
			SlotEndDate:   row.SlotEnd.UTC(),
			Capacity:      int64(row.Capacity),
		})
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "dock_id"}, {Name: "slot_start_date"}, {Name: "slot_end_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"capacity", "updated_at"}),
	}).CreateInBatches(models, batchSize).Error
	if err != nil {
		return fmt.Errorf("save dock slots: %w", err)
	}
	return nil
}

// GetDockRows returns all dock slots ordered by slot then insertion
func (s *Store) GetDockRows() ([]*entities.DockRow, error) {
	var models []DockSlot
	err := s.db.Order("slot_start_date").Order("slot_end_date").Order("id").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("load dock slots: %w", err)
	}

	rows := make([]*entities.DockRow, 0, len(models))
	for _, m := range models {
		rows = append(rows, m.toEntity())
	}
	return rows, nil
}

// LoadPORows stores PO lines
func (s *Store) LoadPORows(rows []*entities.PORow) error {
	if len(rows) == 0 {
		return nil
	}

	models := make([]POItem, 0, len(rows))
	for _, row := range rows {
		models = append(models, POItem{
			POID:     string(row.POID),
			ItemID:   string(row.ItemID),
			Quantity: int64(row.Quantity),
		})
	}

	if err := s.db.CreateInBatches(models, batchSize).Error; err != nil {
		return fmt.Errorf("save PO items: %w", err)
	}
	return nil
}

// GetPORows returns stored PO lines in insertion order
func (s *Store) GetPORows() ([]*entities.PORow, error) {
	var models []POItem
	if err := s.db.Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load PO items: %w", err)
	}

	rows := make([]*entities.PORow, 0, len(models))
	for _, m := range models {
		rows = append(rows, &entities.PORow{
			POID:     entities.POID(m.POID),
			ItemID:   entities.ItemID(m.ItemID),
			Quantity: entities.Quantity(m.Quantity),
		})
	}
	return rows, nil
}

// SaveInbounds stores a run's records in placement order. Saving the same run
// again leaves records already stored at the same position untouched.
func (s *Store) SaveInbounds(runID string, records []entities.InboundRecord) error {
	if len(records) == 0 {
		return nil
	}

	models := make([]ItemInbound, 0, len(records))
	for i, record := range records {
		models = append(models, newItemInbound(runID, i, record))
	}

	err := s.db.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(models, batchSize).Error
	if err != nil {
		return fmt.Errorf("save inbounds for run %s: %w", runID, err)
	}
	return nil
}

// GetInbounds returns stored inbound records matching the filter in save order
func (s *Store) GetInbounds(filter repositories.InboundFilter) ([]entities.InboundRecord, error) {
	query := s.db.Model(&ItemInbound{})
	if filter.DockID != "" {
		query = query.Where("dock_id = ?", string(filter.DockID))
	}
	if !filter.SlotDate.IsZero() {
		y, m, d := filter.SlotDate.Date()
		from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		to := from.Add(24 * time.Hour)
		query = query.Where(
			"(slot_start_date >= ? AND slot_start_date < ?) OR (slot_end_date >= ? AND slot_end_date < ?)",
			from, to, from, to,
		)
	}

	var models []ItemInbound
	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load inbounds: %w", err)
	}

	records := make([]entities.InboundRecord, 0, len(models))
	for _, m := range models {
		records = append(records, m.toEntity())
	}
	return records, nil
}
