package csv

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReadPORows(t *testing.T) {
	content := "po_id,item_id,quantity\n1,100,6\n1,101,4\n2,200,0\n"

	rows, err := NewLoader().ReadPORows(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Failed to read PO rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].POID != "1" || rows[0].ItemID != "100" || rows[0].Quantity != 6 {
		t.Errorf("Unexpected first row %+v", rows[0])
	}
	if rows[2].Quantity != 0 {
		t.Errorf("Expected zero quantity to be kept for the eligibility filter, got %d", rows[2].Quantity)
	}
}

func TestReadPORows_ColumnOrderAndExtras(t *testing.T) {
	content := "\ufeffQuantity, item_id ,note,PO_ID\n5,A,rush,PO9\n"

	rows, err := NewLoader().ReadPORows(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Failed to read PO rows: %v", err)
	}
	if rows[0].POID != "PO9" || rows[0].ItemID != "A" || rows[0].Quantity != 5 {
		t.Errorf("Unexpected row %+v", rows[0])
	}
}

func TestReadPORows_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		sentinel    error
		expectError string
	}{
		{"empty", "", ErrEmptyFile, "PO CSV must have header and at least one data row"},
		{"header only", "po_id,item_id,quantity\n", ErrEmptyFile, "PO CSV must have header and at least one data row"},
		{"missing column", "po_id,item_id\n1,2\n", ErrHeaderMismatch, "missing columns [quantity]"},
		{"bad quantity", "po_id,item_id,quantity\n1,2,many\n", nil, "PO CSV row 2: invalid quantity: many"},
		{"empty po id", "po_id,item_id,quantity\n ,2,3\n", nil, "PO CSV row 2: po_id cannot be empty"},
		{"empty item id", "po_id,item_id,quantity\n1,,3\n", nil, "PO CSV row 2: item_id cannot be empty"},
		{"short row", "po_id,item_id,quantity\n1,2,3\n1,2\n", nil, "PO CSV row 3: expected 3 columns, got 2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().ReadPORows(strings.NewReader(tc.content))
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if tc.sentinel != nil && !errors.Is(err, tc.sentinel) {
				t.Errorf("Expected error to wrap %v, got %v", tc.sentinel, err)
			}
			if !strings.Contains(err.Error(), tc.expectError) {
				t.Errorf("Expected error containing '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestReadDockRows(t *testing.T) {
	content := strings.Join([]string{
		"dock_id,slot_start_dt,slot_end_dt,capacity",
		"1,2018-08-01T00:00:00,2018-08-01T01:00:00,183",
		"2,2018-08-01 01:00:00,2018-08-01 02:00:00,0",
		"3,2018-08-01T02:00:00+02:00,2018-08-01T03:00:00+02:00,12",
	}, "\n")

	rows, err := NewLoader().ReadDockRows(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Failed to read dock rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	start := time.Date(2018, 8, 1, 0, 0, 0, 0, time.UTC)
	if rows[0].DockID != "1" || !rows[0].SlotStart.Equal(start) || rows[0].Capacity != 183 {
		t.Errorf("Unexpected first row %+v", rows[0])
	}
	if !rows[1].SlotStart.Equal(start.Add(time.Hour)) {
		t.Errorf("Expected space separated timestamp to parse, got %v", rows[1].SlotStart)
	}
	if !rows[2].SlotStart.Equal(start) {
		t.Errorf("Expected zoned timestamp to normalize to %v, got %v", start, rows[2].SlotStart)
	}
	if rows[2].SlotStart.Location() != time.UTC {
		t.Errorf("Expected UTC location, got %v", rows[2].SlotStart.Location())
	}
}

func TestReadDockRows_Errors(t *testing.T) {
	header := "dock_id,slot_start_date,slot_end_date,capacity\n"
	testCases := []struct {
		name        string
		content     string
		expectError string
	}{
		{"bad start", header + "1,yesterday,2018-08-01T01:00:00,5\n", "dock CSV row 2: invalid slot_start_date"},
		{"bad capacity", header + "1,2018-08-01T00:00:00,2018-08-01T01:00:00,lots\n", "dock CSV row 2: invalid capacity: lots"},
		{"negative capacity", header + "1,2018-08-01T00:00:00,2018-08-01T01:00:00,-1\n", "capacity cannot be negative, got -1"},
		{"reversed slot", header + "1,2018-08-01T02:00:00,2018-08-01T01:00:00,5\n", "cannot be after slot end"},
		{"missing column", "dock_id,capacity\n1,5\n", "dock CSV header mismatch"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().ReadDockRows(strings.NewReader(tc.content))
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if !strings.Contains(err.Error(), tc.expectError) {
				t.Errorf("Expected error containing '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	poFile := filepath.Join(dir, "pos.csv")
	dockFile := filepath.Join(dir, "docks.csv")

	if err := os.WriteFile(poFile, []byte("po_id,item_id,quantity\n1,A,3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dockFile, []byte("dock_id,slot_start_date,slot_end_date,capacity\nD1,2018-08-01T00:00:00,2018-08-01T01:00:00,10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader()
	if rows, err := loader.LoadPORows(poFile); err != nil || len(rows) != 1 {
		t.Errorf("Expected 1 PO row, got %d (%v)", len(rows), err)
	}
	if rows, err := loader.LoadDockRows(dockFile); err != nil || len(rows) != 1 {
		t.Errorf("Expected 1 dock row, got %d (%v)", len(rows), err)
	}

	if _, err := loader.LoadPORows(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}
