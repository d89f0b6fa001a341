package memory

import (
	"sync"

	"github.com/vsinha/dockplan/pkg/domain/entities"
	"github.com/vsinha/dockplan/pkg/domain/repositories"
)

// DockSlotRepository provides in-memory storage for dock slot rows.
// Loading a row for an existing dock and slot replaces its capacity.
type DockSlotRepository struct {
	rows  []entities.DockRow
	index map[dockSlotKey]int
	mutex sync.RWMutex
}

type dockSlotKey struct {
	dock entities.DockID
	slot entities.SlotKey
}

// NewDockSlotRepository creates a new in-memory dock slot repository
func NewDockSlotRepository() *DockSlotRepository {
	return &DockSlotRepository{
		rows:  []entities.DockRow{},
		index: make(map[dockSlotKey]int),
	}
}

// Verify interface compliance
var _ repositories.DockSlotRepository = (*DockSlotRepository)(nil)

// LoadDockRows stores dock slot rows
func (r *DockSlotRepository) LoadDockRows(rows []*entities.DockRow) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, row := range rows {
		key := dockSlotKey{dock: row.DockID, slot: row.Key()}
		if i, exists := r.index[key]; exists {
			r.rows[i].Capacity = row.Capacity
			continue
		}
		r.index[key] = len(r.rows)
		r.rows = append(r.rows, *row)
	}
	return nil
}

// GetDockRows returns copies of all dock slot rows in load order
func (r *DockSlotRepository) GetDockRows() ([]*entities.DockRow, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	rows := make([]*entities.DockRow, 0, len(r.rows))
	for i := range r.rows {
		row := r.rows[i]
		rows = append(rows, &row)
	}
	return rows, nil
}
