package repositories

import "github.com/vsinha/dockplan/pkg/domain/entities"

// PurchaseOrderRepository provides access to flat purchase order lines
type PurchaseOrderRepository interface {
	GetPORows() ([]*entities.PORow, error)
	LoadPORows(rows []*entities.PORow) error
}
