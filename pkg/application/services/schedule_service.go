package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vsinha/dockplan/pkg/application/dto"
	"github.com/vsinha/dockplan/pkg/application/services/scheduling"
	"github.com/vsinha/dockplan/pkg/domain/entities"
	"github.com/vsinha/dockplan/pkg/domain/repositories"
	"github.com/vsinha/dockplan/pkg/infrastructure/events"
)

var (
	// ErrNoDocks is returned when no dock slot rows are available
	ErrNoDocks = errors.New("docks missing")
	// ErrNoPurchaseOrders is returned when no PO lines were supplied
	ErrNoPurchaseOrders = errors.New("no purchase orders supplied")
)

// ServiceOption configures a ScheduleService
type ServiceOption func(*ScheduleService)

// WithInboundRepository persists every run's inbound records
func WithInboundRepository(repo repositories.InboundRepository) ServiceOption {
	return func(s *ScheduleService) {
		s.inboundRepo = repo
	}
}

// WithEventStore publishes run events to store, using the run ID as stream
func WithEventStore(store events.EventStore) ServiceOption {
	return func(s *ScheduleService) {
		s.eventStore = store
	}
}

// WithLogger sets the service logger; the scheduler inherits it
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *ScheduleService) {
		s.logger = logger
	}
}

// ScheduleService loads PO lines and dock slots, runs the scheduler and
// records the outcome
type ScheduleService struct {
	inboundRepo repositories.InboundRepository
	eventStore  events.EventStore
	logger      zerolog.Logger
	newRunID    func() string
}

// NewScheduleService creates a schedule service
func NewScheduleService(opts ...ServiceOption) *ScheduleService {
	s := &ScheduleService{
		logger:   zerolog.Nop(),
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule runs one scheduling pass over everything in the repositories.
// The returned result is nil only when err is non-nil.
func (s *ScheduleService) Schedule(
	ctx context.Context,
	poRepo repositories.PurchaseOrderRepository,
	dockRepo repositories.DockSlotRepository,
) (*dto.ScheduleResult, *dto.RunSummary, error) {
	started := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	dockRows, err := dockRepo.GetDockRows()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dock slots: %w", err)
	}
	if len(dockRows) == 0 {
		return nil, nil, ErrNoDocks
	}

	poRows, err := poRepo.GetPORows()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load purchase orders: %w", err)
	}
	if len(poRows) == 0 {
		return nil, nil, ErrNoPurchaseOrders
	}

	runID := s.newRunID()
	logger := s.logger.With().Str("run_id", runID).Logger()

	scheduler := scheduling.NewScheduler(scheduling.WithLogger(logger))
	result := scheduler.CalculateSchedules(poRows, dockRows)
	result.RunID = runID

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if s.inboundRepo != nil && len(result.Inbounds) > 0 {
		if err := s.inboundRepo.SaveInbounds(runID, result.Inbounds); err != nil {
			return nil, nil, fmt.Errorf("failed to save inbounds: %w", err)
		}
	}

	summary := &dto.RunSummary{
		RunID:     runID,
		Slots:     len(result.Performances),
		Inbounded: len(result.Inbounds),
		Pending:   result.PendingItems(),
		Dropped:   result.DroppedItems,
		Completed: len(completedOrders(result)),
		Scheduled: len(result.Inbounds) > 0,
	}

	if err := s.publish(result, summary); err != nil {
		return nil, nil, fmt.Errorf("failed to publish events: %w", err)
	}

	summary.Duration = time.Since(started)
	logger.Info().
		Int("po_lines", len(poRows)).
		Int("dock_rows", len(dockRows)).
		Int("slots", summary.Slots).
		Int("inbounded", summary.Inbounded).
		Int("pending", summary.Pending).
		Int("dropped", summary.Dropped).
		Dur("duration", summary.Duration).
		Msg("schedule calculated")

	return result, summary, nil
}

func (s *ScheduleService) publish(result *dto.ScheduleResult, summary *dto.RunSummary) error {
	if s.eventStore == nil {
		return nil
	}

	stream := result.RunID
	for _, record := range result.Inbounds {
		event := events.NewEvent(events.ItemInboundedEvent, stream, events.ItemInbounded{Record: record})
		if err := s.eventStore.AppendEvent(stream, event); err != nil {
			return err
		}
	}

	for _, completed := range completedOrders(result) {
		event := events.NewEvent(events.POCompletedEvent, stream, completed)
		if err := s.eventStore.AppendEvent(stream, event); err != nil {
			return err
		}
	}

	for _, sample := range result.Performances {
		event := events.NewEvent(events.SlotScheduledEvent, stream, events.SlotScheduled{Sample: sample})
		if err := s.eventStore.AppendEvent(stream, event); err != nil {
			return err
		}
	}

	done := events.RunCompleted{
		Slots:     summary.Slots,
		Inbounded: summary.Inbounded,
		Pending:   summary.Pending,
		Dropped:   summary.Dropped,
	}
	return s.eventStore.AppendEvent(stream, events.NewEvent(events.RunCompletedEvent, stream, done))
}

// completedOrders lists orders that had every remaining item placed, in
// order of their last inbound. Orders emptied only by the eligibility
// filter are not completed.
func completedOrders(result *dto.ScheduleResult) []events.POCompleted {
	fulfilled := make(map[entities.POID]bool, len(result.PurchaseOrders))
	for _, po := range result.PurchaseOrders {
		if po.IsFulfilled() {
			fulfilled[po.ID] = true
		}
	}

	lastDock := make(map[entities.POID]entities.DockID)
	var order []entities.POID
	for _, record := range result.Inbounds {
		if !fulfilled[record.POID] {
			continue
		}
		if _, seen := lastDock[record.POID]; seen {
			order = removePOID(order, record.POID)
		}
		lastDock[record.POID] = record.DockID
		order = append(order, record.POID)
	}

	completed := make([]events.POCompleted, 0, len(order))
	for _, id := range order {
		completed = append(completed, events.POCompleted{POID: id, DockID: lastDock[id]})
	}
	return completed
}

func removePOID(ids []entities.POID, target entities.POID) []entities.POID {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
