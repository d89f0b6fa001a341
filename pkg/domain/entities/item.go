package entities

// ItemID identifies a line item within a purchase order
type ItemID string

// POID identifies a purchase order
type POID string

// DockID identifies a warehouse dock
type DockID string

// Quantity represents an integer quantity of units
type Quantity int64

// Item represents a purchase order line waiting to be inbounded.
// Quantity is never decremented in place; an item leaves its order only
// when it is placed in full.
type Item struct {
	ID       ItemID
	Quantity Quantity
}

// TotalQuantity sums the quantities of the given items
func TotalQuantity(items []*Item) Quantity {
	var total Quantity
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
