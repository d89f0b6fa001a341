package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vsinha/dockplan/pkg/domain/entities"
)

var (
	// ErrEmptyFile is returned when a CSV has no data rows
	ErrEmptyFile = errors.New("CSV must have header and at least one data row")
	// ErrHeaderMismatch is returned when required columns are missing
	ErrHeaderMismatch = errors.New("CSV header mismatch")
)

// column describes a required CSV column and the names it may appear under
type column struct {
	name    string
	aliases []string
}

var (
	poColumns = []column{
		{name: "po_id"},
		{name: "item_id"},
		{name: "quantity"},
	}
	dockColumns = []column{
		{name: "dock_id"},
		{name: "slot_start_date", aliases: []string{"slot_start_dt"}},
		{name: "slot_end_date", aliases: []string{"slot_end_dt"}},
		{name: "capacity"},
	}
)

// timestampLayouts are tried in order; layouts without a zone parse as UTC
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// Loader handles loading purchase order and dock slot rows from CSV
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadPORows loads purchase order lines from a CSV file
func (l *Loader) LoadPORows(filename string) ([]*entities.PORow, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PO file %s: %w", filename, err)
	}
	defer file.Close()

	return l.ReadPORows(file)
}

// ReadPORows reads purchase order lines from CSV content, such as an upload.
// Quantities must be integers but may be zero or negative; those lines are
// dropped later by the eligibility filter.
func (l *Loader) ReadPORows(r io.Reader) ([]*entities.PORow, error) {
	records, index, err := readRecords(r, "PO", poColumns)
	if err != nil {
		return nil, err
	}

	rows := make([]*entities.PORow, 0, len(records))
	for i, record := range records {
		row, err := parsePORow(record, index)
		if err != nil {
			return nil, fmt.Errorf("PO CSV row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// LoadDockRows loads dock slot rows from a CSV file
func (l *Loader) LoadDockRows(filename string) ([]*entities.DockRow, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open dock file %s: %w", filename, err)
	}
	defer file.Close()

	return l.ReadDockRows(file)
}

// ReadDockRows reads dock slot rows from CSV content
func (l *Loader) ReadDockRows(r io.Reader) ([]*entities.DockRow, error) {
	records, index, err := readRecords(r, "dock", dockColumns)
	if err != nil {
		return nil, err
	}

	rows := make([]*entities.DockRow, 0, len(records))
	for i, record := range records {
		row, err := parseDockRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("dock CSV row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Helper functions for parsing CSV records

// readRecords reads all records, resolves the required columns and returns
// the data rows along with each column's position
func readRecords(r io.Reader, kind string, columns []column) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}

	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%s %w", kind, ErrEmptyFile)
	}

	header := records[0]
	index, err := resolveColumns(header, columns)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %w: %v", kind, ErrHeaderMismatch, err)
	}

	data := records[1:]
	for i, record := range data {
		if len(record) != len(header) {
			return nil, nil, fmt.Errorf("%s CSV row %d: expected %d columns, got %d", kind, i+2, len(header), len(record))
		}
	}

	return data, index, nil
}

func resolveColumns(header []string, columns []column) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[normalizeHeader(name)] = i
	}

	index := make(map[string]int, len(columns))
	var missing []string
	for _, col := range columns {
		pos, found := positions[col.name]
		for _, alias := range col.aliases {
			if found {
				break
			}
			pos, found = positions[alias]
		}
		if !found {
			missing = append(missing, col.name)
			continue
		}
		index[col.name] = pos
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns %v, got %v", missing, header)
	}
	return index, nil
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
}

func parsePORow(record []string, index map[string]int) (*entities.PORow, error) {
	poID := strings.TrimSpace(record[index["po_id"]])
	if poID == "" {
		return nil, fmt.Errorf("po_id cannot be empty")
	}

	itemID := strings.TrimSpace(record[index["item_id"]])
	if itemID == "" {
		return nil, fmt.Errorf("item_id cannot be empty")
	}

	quantityStr := strings.TrimSpace(record[index["quantity"]])
	quantity, err := strconv.ParseInt(quantityStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity: %s", quantityStr)
	}

	return &entities.PORow{
		POID:     entities.POID(poID),
		ItemID:   entities.ItemID(itemID),
		Quantity: entities.Quantity(quantity),
	}, nil
}

func parseDockRow(record []string, index map[string]int) (*entities.DockRow, error) {
	start, err := ParseTimestamp(record[index["slot_start_date"]])
	if err != nil {
		return nil, fmt.Errorf("invalid slot_start_date: %w", err)
	}

	end, err := ParseTimestamp(record[index["slot_end_date"]])
	if err != nil {
		return nil, fmt.Errorf("invalid slot_end_date: %w", err)
	}

	capacityStr := strings.TrimSpace(record[index["capacity"]])
	capacity, err := strconv.ParseInt(capacityStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid capacity: %s", capacityStr)
	}

	dockID := entities.DockID(strings.TrimSpace(record[index["dock_id"]]))
	return entities.NewDockRow(dockID, start, end, entities.Quantity(capacity))
}

// ParseTimestamp parses a slot timestamp in any of the accepted layouts
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q (expected YYYY-MM-DDTHH:MM:SS)", value)
}
