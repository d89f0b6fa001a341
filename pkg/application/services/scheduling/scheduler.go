// Package scheduling drives the slot-by-slot placement of purchase orders
// onto docks.
package scheduling

import (
	"github.com/rs/zerolog"

	"github.com/vsinha/dockplan/pkg/application/dto"
	"github.com/vsinha/dockplan/pkg/application/services/arrangement"
	"github.com/vsinha/dockplan/pkg/application/services/eligibility"
	"github.com/vsinha/dockplan/pkg/application/services/packing"
	"github.com/vsinha/dockplan/pkg/domain/entities"
)

// Option configures a Scheduler
type Option func(*Scheduler)

// WithLogger sets the logger used for per-slot summaries
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// Scheduler assigns purchase order items to dock slots. It keeps no state
// between calls; every run builds its own docks and orders.
type Scheduler struct {
	logger zerolog.Logger
}

// NewScheduler creates a scheduler
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CalculateSchedules arranges the raw rows and runs every slot in order
func (s *Scheduler) CalculateSchedules(poRows []*entities.PORow, dockRows []*entities.DockRow) *dto.ScheduleResult {
	return s.Run(arrangement.GroupItemsByPO(poRows), arrangement.GroupDocksBySlot(dockRows))
}

// Run schedules already arranged orders over chronologically sorted slots.
// The orders are mutated in place: on return each holds only the items that
// were never placed.
func (s *Scheduler) Run(pos []*entities.PurchaseOrder, slots []entities.Slot) *dto.ScheduleResult {
	result := &dto.ScheduleResult{
		Inbounds:       []entities.InboundRecord{},
		Performances:   make([]entities.PerformanceSample, 0, len(slots)),
		PurchaseOrders: pos,
	}

	if len(slots) == 0 {
		return result
	}

	result.DroppedItems = eligibility.FilterUnplaceable(pos, slots[0].Docks)
	if result.DroppedItems > 0 {
		s.logger.Debug().Int("dropped", result.DroppedItems).Msg("dropped items that fit no dock")
	}

	registry := newDockRegistry()
	for _, slot := range slots {
		registry.enterSlot(slot.Docks)

		placedBefore := len(result.Inbounds)
		for _, po := range pos {
			s.placeOrder(po, registry, result)
		}

		sample := entities.PerformanceSample{
			SlotStart:   slot.Key.End,
			SlotEnd:     slot.Key.Start,
			Performance: registry.performance(),
		}
		result.Performances = append(result.Performances, sample)

		s.logger.Debug().
			Str("slot", slot.Key.String()).
			Int("docks", len(slot.Docks)).
			Int("inbounded", len(result.Inbounds)-placedBefore).
			Float64("performance", sample.Performance).
			Msg("slot scheduled")
	}

	return result
}

// placeOrder tries to unload one order's pending items during the current slot
func (s *Scheduler) placeOrder(po *entities.PurchaseOrder, registry *dockRegistry, result *dto.ScheduleResult) {
	if po.IsFulfilled() {
		return
	}

	var (
		dock  *entities.Dock
		combo []*entities.Item
	)
	if po.HasDock() {
		dock = registry.get(po.DockID)
		if dock != nil {
			combo = packing.BestSubset(po.Items, dock.Capacity)
		}
	} else {
		dock, combo = packing.SelectDock(po.Items, registry.docks())
	}
	if dock == nil {
		return
	}

	dock.Occupy(po.ID)
	po.AssignDock(dock.ID)

	placed := make([]*entities.Item, 0, len(combo))
unload:
	for _, item := range combo {
		switch outcome := dock.InboundItem(item.Quantity); outcome {
		case entities.Inbounded:
			result.Inbounds = append(result.Inbounds, entities.InboundRecord{
				SlotStart:             dock.SlotStart,
				SlotEnd:               dock.SlotEnd,
				DockID:                dock.ID,
				POID:                  po.ID,
				ItemID:                item.ID,
				Quantity:              item.Quantity,
				DockRemainingCapacity: dock.Capacity,
			})
			placed = append(placed, item)
		case entities.CapacityFull:
			break unload
		default:
			s.logger.Debug().
				Str("po_id", string(po.ID)).
				Str("item_id", string(item.ID)).
				Str("dock_id", string(dock.ID)).
				Stringer("outcome", outcome).
				Msg("item left pending")
		}
	}

	po.RemoveItems(placed)
	if po.IsFulfilled() {
		dock.Release()
		po.ReleaseDock()
	}
}
