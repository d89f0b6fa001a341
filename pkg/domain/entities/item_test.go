package entities

import "testing"

func TestTotalQuantity(t *testing.T) {
	items := []*Item{{ID: "A", Quantity: 6}, {ID: "B", Quantity: 4}, {ID: "C", Quantity: 1}}
	if got := TotalQuantity(items); got != 11 {
		t.Errorf("Expected total 11, got %d", got)
	}
	if got := TotalQuantity(nil); got != 0 {
		t.Errorf("Expected total 0 for no items, got %d", got)
	}
}

func TestPurchaseOrder_RemoveItems(t *testing.T) {
	po := NewPurchaseOrder("PO1")
	a := &Item{ID: "A", Quantity: 5}
	dupA := &Item{ID: "A", Quantity: 5}
	b := &Item{ID: "B", Quantity: 3}
	po.AddItems(a, dupA, b)

	po.RemoveItems([]*Item{a})

	if len(po.Items) != 2 {
		t.Fatalf("Expected 2 pending items, got %d", len(po.Items))
	}
	if po.Items[0] != dupA || po.Items[1] != b {
		t.Errorf("Expected duplicate line and B to remain in order, got %+v", po.Items)
	}

	po.RemoveItems([]*Item{dupA, b})
	if !po.IsFulfilled() {
		t.Errorf("Expected order to be fulfilled, %d items pending", len(po.Items))
	}
}

func TestPurchaseOrder_DockAssignment(t *testing.T) {
	po := NewPurchaseOrder("PO1")
	if po.HasDock() {
		t.Fatal("Expected new order to have no dock")
	}

	po.AssignDock("D1")
	if !po.HasDock() || po.DockID != "D1" {
		t.Errorf("Expected dock D1 to be assigned, got %q", po.DockID)
	}

	po.ReleaseDock()
	if po.HasDock() {
		t.Errorf("Expected dock to be released, got %q", po.DockID)
	}
}
