package commands

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/vsinha/dockplan/pkg/application/services/reporting"
)

// Generated file names
const (
	GeneratedPOFile   = "purchase_orders.csv"
	GeneratedDockFile = "dock_slots.csv"
)

// GenerateConfig holds configuration for scenario generation
type GenerateConfig struct {
	Orders      int       // Number of purchase orders to generate
	MaxLines    int       // Maximum lines per purchase order
	Docks       int       // Number of docks
	Slots       int       // Number of consecutive slots
	SlotMinutes int       // Length of each slot
	MaxCapacity int       // Largest capacity a dock may have in a slot
	Start       time.Time // First slot start; zero means the next midnight UTC
	OutputDir   string    // Output directory for generated files
	Seed        int64     // Random seed for reproducible generation
	Verbose     bool      // Verbose output
}

// GenerateCommand handles scenario generation
type GenerateCommand struct {
	config GenerateConfig
	rand   *rand.Rand
	out    io.Writer
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig) *GenerateCommand {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &GenerateCommand{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
		out:    os.Stdout,
	}
}

// SetOutput redirects console output
func (cmd *GenerateCommand) SetOutput(w io.Writer) {
	cmd.out = w
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if err := cmd.validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out,
			"🔧 Generating scenario with %d orders, %d docks, %d slots of %d minutes\n",
			cmd.config.Orders,
			cmd.config.Docks,
			cmd.config.Slots,
			cmd.config.SlotMinutes,
		)
		fmt.Fprintf(cmd.out, "📁 Output directory: %s\n", cmd.config.OutputDir)
		fmt.Fprintf(cmd.out, "🎲 Random seed: %d\n", cmd.config.Seed)
	}

	if err := os.MkdirAll(cmd.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out, "📦 Generating %s...\n", GeneratedDockFile)
	}
	capacities, err := cmd.generateDockSlots()
	if err != nil {
		return fmt.Errorf("failed to generate dock slots: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out, "📋 Generating %s...\n", GeneratedPOFile)
	}
	if err := cmd.generatePurchaseOrders(capacities); err != nil {
		return fmt.Errorf("failed to generate purchase orders: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out, "✅ Scenario generated successfully in %s\n", cmd.config.OutputDir)
	}

	return nil
}

func (cmd *GenerateCommand) validate() error {
	switch {
	case cmd.config.OutputDir == "":
		return fmt.Errorf("output directory is required")
	case cmd.config.Orders <= 0:
		return fmt.Errorf("orders must be positive, got %d", cmd.config.Orders)
	case cmd.config.MaxLines <= 0:
		return fmt.Errorf("max lines must be positive, got %d", cmd.config.MaxLines)
	case cmd.config.Docks <= 0:
		return fmt.Errorf("docks must be positive, got %d", cmd.config.Docks)
	case cmd.config.Slots <= 0:
		return fmt.Errorf("slots must be positive, got %d", cmd.config.Slots)
	case cmd.config.SlotMinutes <= 0:
		return fmt.Errorf("slot minutes must be positive, got %d", cmd.config.SlotMinutes)
	case cmd.config.MaxCapacity <= 0:
		return fmt.Errorf("max capacity must be positive, got %d", cmd.config.MaxCapacity)
	}
	return nil
}

// generateDockSlots writes one row per dock per slot and returns each
// dock's capacity in the first slot
func (cmd *GenerateCommand) generateDockSlots() ([]int, error) {
	file, err := os.Create(filepath.Join(cmd.config.OutputDir, GeneratedDockFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fmt.Fprintln(file, "dock_id,slot_start_date,slot_end_date,capacity")

	start := cmd.config.Start
	if start.IsZero() {
		start = time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
	}
	slotLength := time.Duration(cmd.config.SlotMinutes) * time.Minute

	// Each dock has a nominal size; individual slots vary around it and
	// now and then a dock is closed for a slot
	nominal := make([]int, cmd.config.Docks)
	for d := range nominal {
		nominal[d] = cmd.config.MaxCapacity/2 + cmd.rand.Intn(cmd.config.MaxCapacity/2+1)
	}

	firstSlot := make([]int, cmd.config.Docks)
	for s := 0; s < cmd.config.Slots; s++ {
		slotStart := start.Add(time.Duration(s) * slotLength)
		for d := 0; d < cmd.config.Docks; d++ {
			capacity := cmd.generateCapacity(nominal[d])
			if s == 0 {
				firstSlot[d] = capacity
			}
			fmt.Fprintf(file, "DOCK-%02d,%s,%s,%d\n",
				d+1,
				reporting.FormatTimestamp(slotStart),
				reporting.FormatTimestamp(slotStart.Add(slotLength)),
				capacity)
		}
	}

	return firstSlot, nil
}

func (cmd *GenerateCommand) generateCapacity(nominal int) int {
	if cmd.rand.Float64() < 0.05 {
		return 0
	}
	spread := nominal / 4
	if spread == 0 {
		return nominal
	}
	return nominal - spread + cmd.rand.Intn(2*spread+1)
}

// generatePurchaseOrders writes PO lines sized against the first slot's
// docks; a small share is oversized or non-positive on purpose
func (cmd *GenerateCommand) generatePurchaseOrders(firstSlot []int) error {
	file, err := os.Create(filepath.Join(cmd.config.OutputDir, GeneratedPOFile))
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "po_id,item_id,quantity")

	largest := 1
	for _, capacity := range firstSlot {
		if capacity > largest {
			largest = capacity
		}
	}

	item := 0
	for po := 0; po < cmd.config.Orders; po++ {
		lines := 1 + cmd.rand.Intn(cmd.config.MaxLines)
		for line := 0; line < lines; line++ {
			item++
			fmt.Fprintf(file, "%d,ITEM-%05d,%d\n", 4500000+po+1, item, cmd.generateQuantity(largest))
		}
	}

	return nil
}

func (cmd *GenerateCommand) generateQuantity(largest int) int {
	roll := cmd.rand.Float64()
	switch {
	case roll < 0.02:
		return 0
	case roll < 0.04:
		return largest + 1 + cmd.rand.Intn(largest)
	case roll < 0.7:
		// Small cartons
		return 1 + cmd.rand.Intn(max(1, largest/4))
	default:
		return 1 + cmd.rand.Intn(largest)
	}
}
