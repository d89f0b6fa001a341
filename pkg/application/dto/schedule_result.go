package dto

import "github.com/vsinha/dockplan/pkg/domain/entities"

// ScheduleResult contains the complete output of one scheduling run
type ScheduleResult struct {
	RunID        string
	Inbounds     []entities.InboundRecord
	Performances []entities.PerformanceSample
	// PurchaseOrders holds every order with whatever items were never placed
	PurchaseOrders []*entities.PurchaseOrder
	DroppedItems   int
}

// PendingItems counts items left unplaced across all orders
func (r *ScheduleResult) PendingItems() int {
	pending := 0
	for _, po := range r.PurchaseOrders {
		pending += len(po.Items)
	}
	return pending
}
