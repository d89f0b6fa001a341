package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vsinha/dockplan/pkg/application/services/reporting"
	"github.com/vsinha/dockplan/pkg/domain/entities"
	"github.com/vsinha/dockplan/pkg/domain/repositories"
	"github.com/vsinha/dockplan/pkg/interfaces/cli/output"
)

// DateLayout is the calendar day format accepted by history filters
const DateLayout = "2006-01-02"

// HistoryConfig holds configuration for the history command
type HistoryConfig struct {
	DockID    string
	SlotDate  string
	Format    string
	OutputDir string
}

// HistoryCommand lists stored inbound records
type HistoryCommand struct {
	config   HistoryConfig
	inbounds repositories.InboundRepository
	out      io.Writer
}

// NewHistoryCommand creates a history command
func NewHistoryCommand(config HistoryConfig, inbounds repositories.InboundRepository) *HistoryCommand {
	return &HistoryCommand{
		config:   config,
		inbounds: inbounds,
		out:      os.Stdout,
	}
}

// SetOutput redirects console output
func (c *HistoryCommand) SetOutput(w io.Writer) {
	c.out = w
}

// Execute runs the history query
func (c *HistoryCommand) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	filter, err := ParseInboundFilter(c.config.DockID, c.config.SlotDate)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	records, err := c.inbounds.GetInbounds(filter)
	if err != nil {
		return fmt.Errorf("error loading inbound history: %w", err)
	}

	return output.GenerateHistory(reporting.InboundRows(records), output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Out:       c.out,
	})
}

// ParseInboundFilter builds a history filter from raw dock and date values.
// An empty value leaves that filter open.
func ParseInboundFilter(dockID, slotDate string) (repositories.InboundFilter, error) {
	filter := repositories.InboundFilter{DockID: entities.DockID(dockID)}
	if slotDate == "" {
		return filter, nil
	}

	day, err := time.Parse(DateLayout, slotDate)
	if err != nil {
		return filter, fmt.Errorf("invalid slot date %q (expected YYYY-MM-DD)", slotDate)
	}
	filter.SlotDate = day
	return filter, nil
}
