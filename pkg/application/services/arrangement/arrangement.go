// Package arrangement turns flat ingestion rows into purchase orders and
// chronologically ordered dock slots.
package arrangement

import (
	"sort"

	"github.com/vsinha/dockplan/pkg/domain/entities"
)

// GroupItemsByPO builds one PurchaseOrder per distinct PO id. Orders appear
// in the order their first row was seen; items keep row order.
func GroupItemsByPO(rows []*entities.PORow) []*entities.PurchaseOrder {
	index := make(map[entities.POID]int)
	var orders []*entities.PurchaseOrder

	for _, row := range rows {
		pos, exists := index[row.POID]
		if !exists {
			pos = len(orders)
			index[row.POID] = pos
			orders = append(orders, entities.NewPurchaseOrder(row.POID))
		}
		orders[pos].AddItems(&entities.Item{ID: row.ItemID, Quantity: row.Quantity})
	}

	return orders
}

// MaxCapacities returns the largest capacity each dock has in any row
func MaxCapacities(rows []*entities.DockRow) map[entities.DockID]entities.Quantity {
	maxCapacities := make(map[entities.DockID]entities.Quantity)
	for _, row := range rows {
		if current, ok := maxCapacities[row.DockID]; !ok || row.Capacity > current {
			maxCapacities[row.DockID] = row.Capacity
		}
	}
	return maxCapacities
}

// GroupDocksBySlot buckets dock rows by (start, end) and returns the buckets
// in chronological order. Every returned row carries its dock's maximum
// capacity across all slots. Rows sharing a key keep their input order.
func GroupDocksBySlot(rows []*entities.DockRow) []entities.Slot {
	maxCapacities := MaxCapacities(rows)

	index := make(map[entities.SlotKey]int)
	var slots []entities.Slot

	for _, row := range rows {
		key := row.Key()
		pos, exists := index[key]
		if !exists {
			pos = len(slots)
			index[key] = pos
			slots = append(slots, entities.Slot{Key: key})
		}

		arranged := *row
		arranged.MaxCapacity = maxCapacities[row.DockID]
		slots[pos].Docks = append(slots[pos].Docks, arranged)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Key.Before(slots[j].Key)
	})

	return slots
}
