package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vsinha/dockplan/pkg/domain/repositories"
	"github.com/vsinha/dockplan/pkg/infrastructure/repositories/csv"
)

// ImportDocksConfig holds configuration for the dock import command
type ImportDocksConfig struct {
	DockFile string
	Verbose  bool
}

// ImportDocksCommand stores dock slot rows from a CSV file
type ImportDocksCommand struct {
	config ImportDocksConfig
	docks  repositories.DockSlotRepository
	out    io.Writer
}

// NewImportDocksCommand creates a dock import command
func NewImportDocksCommand(config ImportDocksConfig, docks repositories.DockSlotRepository) *ImportDocksCommand {
	return &ImportDocksCommand{
		config: config,
		docks:  docks,
		out:    os.Stdout,
	}
}

// SetOutput redirects console output
func (c *ImportDocksCommand) SetOutput(w io.Writer) {
	c.out = w
}

// Execute runs the import
func (c *ImportDocksCommand) Execute(ctx context.Context) error {
	if c.config.DockFile == "" {
		return fmt.Errorf("validation error: dock file is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	rows, err := csv.NewLoader().LoadDockRows(c.config.DockFile)
	if err != nil {
		return fmt.Errorf("error loading dock slots: %w", err)
	}

	if err := c.docks.LoadDockRows(rows); err != nil {
		return fmt.Errorf("failed to store dock slots: %w", err)
	}

	fmt.Fprintf(c.out, "✅ Imported %d dock slot rows from %s\n", len(rows), c.config.DockFile)
	return nil
}
