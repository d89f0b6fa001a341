// Package packing picks which items of a purchase order to unload at a dock
// and which dock leaves the least unused capacity.
package packing

import (
	"github.com/vsinha/dockplan/pkg/domain/entities"
)

// BestSubset returns the combination of one, two or three items whose total
// is closest to capacity without exceeding it. An exact fit returns as soon
// as it is found. Ties keep the combination generated first, in input order.
// Returns nil when nothing fits.
func BestSubset(items []*entities.Item, capacity entities.Quantity) []*entities.Item {
	if capacity <= 0 {
		return nil
	}

	var best []*entities.Item
	bestLeftover := capacity
	consider := func(total entities.Quantity, combo ...*entities.Item) {
		if leftover := capacity - total; leftover < bestLeftover {
			bestLeftover = leftover
			best = combo
		}
	}

	for i, first := range items {
		if first.Quantity == capacity {
			return []*entities.Item{first}
		}
		if first.Quantity > capacity {
			continue
		}
		consider(first.Quantity, first)

		for j := i + 1; j < len(items); j++ {
			second := items[j]
			total := first.Quantity + second.Quantity
			if total == capacity {
				return []*entities.Item{first, second}
			}
			if total > capacity {
				continue
			}

			third := closestFit(items[j+1:], capacity-total)
			if third == nil {
				consider(total, first, second)
				continue
			}
			if total+third.Quantity == capacity {
				return []*entities.Item{first, second, third}
			}
			consider(total+third.Quantity, first, second, third)
		}
	}

	return best
}

// closestFit returns the first item with the largest positive quantity not
// above room, stopping early on an exact match
func closestFit(items []*entities.Item, room entities.Quantity) *entities.Item {
	var fit *entities.Item
	for _, item := range items {
		if item.Quantity <= 0 || item.Quantity > room {
			continue
		}
		if item.Quantity == room {
			return item
		}
		if fit == nil || item.Quantity > fit.Quantity {
			fit = item
		}
	}
	return fit
}

// SelectDock runs BestSubset against every available dock and returns the
// dock with the smallest leftover capacity together with its combination.
// Ties go to the dock that comes first in docks. Returns nil, nil when no
// dock is available.
func SelectDock(items []*entities.Item, docks []*entities.Dock) (*entities.Dock, []*entities.Item) {
	var (
		chosen      *entities.Dock
		chosenItems []*entities.Item
		minLeftover entities.Quantity
	)

	for _, dock := range docks {
		if !dock.IsAvailable() {
			continue
		}

		combo := BestSubset(items, dock.Capacity)
		leftover := dock.Capacity - entities.TotalQuantity(combo)
		if chosen == nil || leftover < minLeftover {
			chosen = dock
			chosenItems = combo
			minLeftover = leftover
		}
	}

	return chosen, chosenItems
}
