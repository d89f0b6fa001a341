package scheduling

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/dockplan/pkg/domain/entities"
)

// dockRegistry owns one Dock per dock id for the whole run. Docks keep the
// order in which they were first seen so dock selection ties are stable.
type dockRegistry struct {
	byID  map[entities.DockID]*entities.Dock
	order []*entities.Dock
}

func newDockRegistry() *dockRegistry {
	return &dockRegistry{byID: make(map[entities.DockID]*entities.Dock)}
}

// enterSlot resets capacities for the slot's rows, creating unseen docks
func (r *dockRegistry) enterSlot(rows []entities.DockRow) {
	for _, row := range rows {
		if dock, exists := r.byID[row.DockID]; exists {
			dock.ResetSlot(row)
			continue
		}
		dock := entities.NewDock(row)
		r.byID[row.DockID] = dock
		r.order = append(r.order, dock)
	}
}

func (r *dockRegistry) get(id entities.DockID) *entities.Dock {
	return r.byID[id]
}

func (r *dockRegistry) docks() []*entities.Dock {
	return r.order
}

// performance is the mean of remaining/slot capacity over every registered
// dock. Docks with no slot capacity have no meaningful ratio and are skipped.
func (r *dockRegistry) performance() float64 {
	sum := decimal.Zero
	measured := 0
	for _, dock := range r.order {
		if dock.SlotCapacity <= 0 {
			continue
		}
		ratio := decimal.NewFromInt(int64(dock.Capacity)).Div(decimal.NewFromInt(int64(dock.SlotCapacity)))
		sum = sum.Add(ratio)
		measured++
	}
	if measured == 0 {
		return 0
	}
	mean, _ := sum.Div(decimal.NewFromInt(int64(measured))).Float64()
	return mean
}
