// Package eligibility removes purchase order items that can never be
// unloaded at any dock.
package eligibility

import (
	"github.com/vsinha/dockplan/pkg/domain/entities"
)

// MaxCapacity returns the largest max capacity among the given rows, or 0
func MaxCapacity(docks []entities.DockRow) entities.Quantity {
	var largest entities.Quantity
	for _, dock := range docks {
		if dock.MaxCapacity > largest {
			largest = dock.MaxCapacity
		}
	}
	return largest
}

// FilterUnplaceable drops every item whose quantity is not positive or is
// larger than the biggest max capacity among firstSlotDocks. Only the first
// slot is consulted, so a dock that first appears later does not rescue an
// oversized item. Returns the number of items dropped.
func FilterUnplaceable(pos []*entities.PurchaseOrder, firstSlotDocks []entities.DockRow) int {
	if len(firstSlotDocks) == 0 {
		return 0
	}

	limit := MaxCapacity(firstSlotDocks)
	dropped := 0
	for _, po := range pos {
		before := len(po.Items)
		po.RetainItems(func(item *entities.Item) bool {
			return item.Quantity > 0 && item.Quantity <= limit
		})
		dropped += before - len(po.Items)
	}

	return dropped
}
