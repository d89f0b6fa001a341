package eligibility

import (
	"testing"

	"github.com/vsinha/dockplan/pkg/domain/entities"
)

func order(id entities.POID, quantities ...entities.Quantity) *entities.PurchaseOrder {
	po := entities.NewPurchaseOrder(id)
	for i, qty := range quantities {
		po.AddItems(&entities.Item{ID: entities.ItemID(string(rune('A' + i))), Quantity: qty})
	}
	return po
}

func TestFilterUnplaceable(t *testing.T) {
	firstSlot := []entities.DockRow{
		{DockID: "D1", Capacity: 5, MaxCapacity: 8},
		{DockID: "D2", Capacity: 10, MaxCapacity: 10},
	}

	po1 := order("PO1", 4, 0, 10, 11)
	po2 := order("PO2", -3, 7)

	dropped := FilterUnplaceable([]*entities.PurchaseOrder{po1, po2}, firstSlot)
	if dropped != 3 {
		t.Errorf("Expected 3 dropped items, got %d", dropped)
	}

	if len(po1.Items) != 2 || po1.Items[0].Quantity != 4 || po1.Items[1].Quantity != 10 {
		t.Errorf("Expected PO1 to keep quantities 4 and 10, got %+v", po1.Items)
	}
	if len(po2.Items) != 1 || po2.Items[0].Quantity != 7 {
		t.Errorf("Expected PO2 to keep quantity 7, got %+v", po2.Items)
	}

	for _, po := range []*entities.PurchaseOrder{po1, po2} {
		for _, item := range po.Items {
			if item.Quantity > MaxCapacity(firstSlot) || item.Quantity <= 0 {
				t.Errorf("Item %s with quantity %d survived filtering", item.ID, item.Quantity)
			}
		}
	}
}

func TestFilterUnplaceable_NoDocks(t *testing.T) {
	po := order("PO1", 0, 100)
	if dropped := FilterUnplaceable([]*entities.PurchaseOrder{po}, nil); dropped != 0 {
		t.Errorf("Expected nothing dropped without docks, got %d", dropped)
	}
	if len(po.Items) != 2 {
		t.Errorf("Expected items untouched, got %d", len(po.Items))
	}
}
