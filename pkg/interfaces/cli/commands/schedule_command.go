package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/vsinha/dockplan/pkg/application/services"
	"github.com/vsinha/dockplan/pkg/domain/repositories"
	"github.com/vsinha/dockplan/pkg/infrastructure/events"
	"github.com/vsinha/dockplan/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/dockplan/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/dockplan/pkg/interfaces/cli/output"
)

// ScheduleConfig holds configuration for the schedule command
type ScheduleConfig struct {
	POFile    string
	DockFile  string // optional when a dock store is configured
	OutputDir string
	Format    string
	Save      bool // persist inbounds to the store
	Verbose   bool
}

// ScheduleCommand loads PO lines and dock slots and prints the schedule
type ScheduleCommand struct {
	config   ScheduleConfig
	docks    repositories.DockSlotRepository
	inbounds repositories.InboundRepository
	logger   zerolog.Logger
	out      io.Writer
}

// NewScheduleCommand creates a schedule command. docks supplies dock slots
// when no dock file is given; inbounds receives results when Save is set.
// Either may be nil.
func NewScheduleCommand(
	config ScheduleConfig,
	docks repositories.DockSlotRepository,
	inbounds repositories.InboundRepository,
	logger zerolog.Logger,
) *ScheduleCommand {
	return &ScheduleCommand{
		config:   config,
		docks:    docks,
		inbounds: inbounds,
		logger:   logger,
		out:      os.Stdout,
	}
}

// SetOutput redirects console output
func (c *ScheduleCommand) SetOutput(w io.Writer) {
	c.out = w
}

// Execute runs the schedule command
func (c *ScheduleCommand) Execute(ctx context.Context) error {
	if c.config.POFile == "" {
		return fmt.Errorf("validation error: PO file is required")
	}

	loader := csv.NewLoader()

	if c.config.Verbose {
		fmt.Fprintln(c.out, "📂 Loading data from CSV files...")
	}

	poRows, err := loader.LoadPORows(c.config.POFile)
	if err != nil {
		return fmt.Errorf("error loading purchase orders: %w", err)
	}
	poRepo := memory.NewPurchaseOrderRepository()
	if err := poRepo.LoadPORows(poRows); err != nil {
		return fmt.Errorf("failed to load PO lines into repository: %w", err)
	}

	dockRepo, err := c.resolveDocks(loader)
	if err != nil {
		return err
	}

	eventStore := events.NewInMemoryEventStoreWithLogger(c.logger)
	if err := eventStore.Subscribe(events.SchedulingEventTypes, events.NewLogHandler(c.logger)); err != nil {
		return fmt.Errorf("failed to subscribe event logger: %w", err)
	}

	opts := []services.ServiceOption{
		services.WithLogger(c.logger),
		services.WithEventStore(eventStore),
	}
	if c.config.Save {
		if c.inbounds == nil {
			return fmt.Errorf("validation error: saving inbounds requires a database")
		}
		opts = append(opts, services.WithInboundRepository(c.inbounds))
	}

	if c.config.Verbose {
		fmt.Fprintf(c.out, "✅ Loaded %d PO lines\n", len(poRows))
		fmt.Fprintln(c.out, "🔄 Calculating schedules...")
	}

	result, summary, err := services.NewScheduleService(opts...).Schedule(ctx, poRepo, dockRepo)
	switch {
	case errors.Is(err, services.ErrNoDocks):
		return fmt.Errorf("docks missing: import dock slots or pass a dock file")
	case errors.Is(err, services.ErrNoPurchaseOrders):
		return fmt.Errorf("no POs in file %s", c.config.POFile)
	case err != nil:
		return fmt.Errorf("error calculating schedules: %w", err)
	}

	if c.config.Verbose {
		fmt.Fprintf(c.out, "✅ Schedule calculated in %v\n\n", summary.Duration)
	}

	return output.Generate(result, summary, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		Out:       c.out,
	})
}

// resolveDocks prefers an explicit dock file over the configured store
func (c *ScheduleCommand) resolveDocks(loader *csv.Loader) (repositories.DockSlotRepository, error) {
	if c.config.DockFile == "" {
		if c.docks == nil {
			return nil, fmt.Errorf("validation error: dock file is required when no database is configured")
		}
		return c.docks, nil
	}

	dockRows, err := loader.LoadDockRows(c.config.DockFile)
	if err != nil {
		return nil, fmt.Errorf("error loading dock slots: %w", err)
	}

	dockRepo := memory.NewDockSlotRepository()
	if err := dockRepo.LoadDockRows(dockRows); err != nil {
		return nil, fmt.Errorf("failed to load dock slots into repository: %w", err)
	}

	if c.config.Verbose {
		fmt.Fprintf(c.out, "✅ Loaded %d dock slot rows from %s\n", len(dockRows), c.config.DockFile)
	}
	return dockRepo, nil
}
