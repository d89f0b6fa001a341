package entities

// PurchaseOrder groups the pending items of one PO and tracks the dock
// currently serving it. DockID is a plain identifier, resolved through the
// scheduler's dock registry.
type PurchaseOrder struct {
	ID     POID
	Items  []*Item
	DockID DockID
}

// NewPurchaseOrder creates an empty purchase order
func NewPurchaseOrder(id POID) *PurchaseOrder {
	return &PurchaseOrder{ID: id}
}

// AddItems appends items to the pending list, preserving order
func (po *PurchaseOrder) AddItems(items ...*Item) {
	po.Items = append(po.Items, items...)
}

// AssignDock records the dock serving this order
func (po *PurchaseOrder) AssignDock(id DockID) {
	po.DockID = id
}

// ReleaseDock clears the dock assignment
func (po *PurchaseOrder) ReleaseDock() {
	po.DockID = ""
}

// HasDock reports whether a dock is assigned
func (po *PurchaseOrder) HasDock() bool {
	return po.DockID != ""
}

// IsFulfilled reports whether every item has been placed
func (po *PurchaseOrder) IsFulfilled() bool {
	return len(po.Items) == 0
}

// RemoveItems drops the given items from the pending list. Items are
// matched by identity, so two lines with the same id and quantity are
// tracked independently.
func (po *PurchaseOrder) RemoveItems(placed []*Item) {
	if len(placed) == 0 {
		return
	}
	drop := make(map[*Item]struct{}, len(placed))
	for _, item := range placed {
		drop[item] = struct{}{}
	}
	po.RetainItems(func(item *Item) bool {
		_, found := drop[item]
		return !found
	})
}

// RetainItems keeps only the items for which keep returns true
func (po *PurchaseOrder) RetainItems(keep func(*Item) bool) {
	pending := po.Items[:0]
	for _, item := range po.Items {
		if keep(item) {
			pending = append(pending, item)
		}
	}
	for i := len(pending); i < len(po.Items); i++ {
		po.Items[i] = nil
	}
	po.Items = pending
}
