package memory

import (
	"sync"

	"github.com/vsinha/dockplan/pkg/domain/entities"
	"github.com/vsinha/dockplan/pkg/domain/repositories"
)

// PurchaseOrderRepository provides in-memory storage for PO lines
type PurchaseOrderRepository struct {
	rows  []entities.PORow
	mutex sync.RWMutex
}

// NewPurchaseOrderRepository creates a new in-memory PO repository
func NewPurchaseOrderRepository() *PurchaseOrderRepository {
	return &PurchaseOrderRepository{
		rows: []entities.PORow{},
	}
}

// Verify interface compliance
var _ repositories.PurchaseOrderRepository = (*PurchaseOrderRepository)(nil)

// LoadPORows appends PO lines to the repository
func (r *PurchaseOrderRepository) LoadPORows(rows []*entities.PORow) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, row := range rows {
		r.rows = append(r.rows, *row)
	}
	return nil
}

// GetPORows returns copies of all PO lines in load order
func (r *PurchaseOrderRepository) GetPORows() ([]*entities.PORow, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	rows := make([]*entities.PORow, 0, len(r.rows))
	for i := range r.rows {
		row := r.rows[i]
		rows = append(rows, &row)
	}
	return rows, nil
}
