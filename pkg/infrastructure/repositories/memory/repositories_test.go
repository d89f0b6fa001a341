package memory

import (
	"testing"
	"time"

	"github.com/vsinha/dockplan/pkg/domain/entities"
	"github.com/vsinha/dockplan/pkg/domain/repositories"
)

var baseSlot = time.Date(2018, 8, 1, 0, 0, 0, 0, time.UTC)

func dockRow(t *testing.T, id string, hour int, capacity int64) *entities.DockRow {
	t.Helper()
	start := baseSlot.Add(time.Duration(hour) * time.Hour)
	row, err := entities.NewDockRow(entities.DockID(id), start, start.Add(time.Hour), entities.Quantity(capacity))
	if err != nil {
		t.Fatalf("Failed to create dock row: %v", err)
	}
	return row
}

func TestPurchaseOrderRepository_LoadAndGet(t *testing.T) {
	repo := NewPurchaseOrderRepository()

	rows := []*entities.PORow{
		{POID: "1", ItemID: "A", Quantity: 5},
		{POID: "1", ItemID: "B", Quantity: 3},
	}
	if err := repo.LoadPORows(rows); err != nil {
		t.Fatalf("Failed to load PO rows: %v", err)
	}

	// Mutating the input must not leak into the repository
	rows[0].Quantity = 99

	got, err := repo.GetPORows()
	if err != nil {
		t.Fatalf("Failed to get PO rows: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(got))
	}
	if got[0].Quantity != 5 {
		t.Errorf("Expected stored quantity 5, got %d", got[0].Quantity)
	}

	got[1].Quantity = 0
	again, _ := repo.GetPORows()
	if again[1].Quantity != 3 {
		t.Errorf("Expected returned rows to be copies, stored quantity changed to %d", again[1].Quantity)
	}
}

func TestDockSlotRepository_ReplacesCapacity(t *testing.T) {
	repo := NewDockSlotRepository()

	if err := repo.LoadDockRows([]*entities.DockRow{
		dockRow(t, "D1", 0, 10),
		dockRow(t, "D2", 0, 4),
		dockRow(t, "D1", 1, 6),
	}); err != nil {
		t.Fatalf("Failed to load dock rows: %v", err)
	}

	// Re-uploading the same dock and slot replaces the capacity
	if err := repo.LoadDockRows([]*entities.DockRow{dockRow(t, "D1", 0, 12)}); err != nil {
		t.Fatalf("Failed to reload dock rows: %v", err)
	}

	rows, err := repo.GetDockRows()
	if err != nil {
		t.Fatalf("Failed to get dock rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].DockID != "D1" || rows[0].Capacity != 12 {
		t.Errorf("Expected D1 capacity 12 in first position, got %s=%d", rows[0].DockID, rows[0].Capacity)
	}
	if rows[2].Capacity != 6 {
		t.Errorf("Expected later slot untouched, got %d", rows[2].Capacity)
	}
}

func TestInboundRepository_SaveAndFilter(t *testing.T) {
	repo := NewInboundRepository()

	nextDay := baseSlot.Add(24 * time.Hour)
	records := []entities.InboundRecord{
		{SlotStart: baseSlot, SlotEnd: baseSlot.Add(time.Hour), DockID: "D1", POID: "1", ItemID: "A", Quantity: 3, DockRemainingCapacity: 7},
		{SlotStart: baseSlot, SlotEnd: baseSlot.Add(time.Hour), DockID: "D2", POID: "2", ItemID: "B", Quantity: 2, DockRemainingCapacity: 2},
		{SlotStart: nextDay, SlotEnd: nextDay.Add(time.Hour), DockID: "D1", POID: "3", ItemID: "C", Quantity: 1, DockRemainingCapacity: 9},
	}

	if err := repo.SaveInbounds("run-1", records); err != nil {
		t.Fatalf("Failed to save inbounds: %v", err)
	}
	// Saving the same run again stores nothing new
	if err := repo.SaveInbounds("run-1", records); err != nil {
		t.Fatalf("Failed to save inbounds: %v", err)
	}

	if repo.RunCount("run-1") != 3 {
		t.Errorf("Expected run-1 to store 3 records, got %d", repo.RunCount("run-1"))
	}

	testCases := []struct {
		name     string
		filter   repositories.InboundFilter
		expected []entities.ItemID
	}{
		{"all", repositories.InboundFilter{}, []entities.ItemID{"A", "B", "C"}},
		{"by dock", repositories.InboundFilter{DockID: "D1"}, []entities.ItemID{"A", "C"}},
		{"by date", repositories.InboundFilter{SlotDate: nextDay}, []entities.ItemID{"C"}},
		{"by dock and date", repositories.InboundFilter{DockID: "D2", SlotDate: nextDay}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.GetInbounds(tc.filter)
			if err != nil {
				t.Fatalf("Failed to get inbounds: %v", err)
			}
			if len(got) != len(tc.expected) {
				t.Fatalf("Expected %d records, got %d", len(tc.expected), len(got))
			}
			for i, id := range tc.expected {
				if got[i].ItemID != id {
					t.Errorf("Expected item %s at %d, got %s", id, i, got[i].ItemID)
				}
			}
		})
	}
}

func TestInboundRepository_KeepsRepeatedItemLines(t *testing.T) {
	repo := NewInboundRepository()

	// Two lines of PO P for item A placed in the same dock slot
	records := []entities.InboundRecord{
		{SlotStart: baseSlot, SlotEnd: baseSlot.Add(time.Hour), DockID: "D1", POID: "P", ItemID: "A", Quantity: 3, DockRemainingCapacity: 4},
		{SlotStart: baseSlot, SlotEnd: baseSlot.Add(time.Hour), DockID: "D1", POID: "P", ItemID: "A", Quantity: 4, DockRemainingCapacity: 0},
	}

	if err := repo.SaveInbounds("run-1", records); err != nil {
		t.Fatalf("Failed to save inbounds: %v", err)
	}
	if err := repo.SaveInbounds("run-2", records); err != nil {
		t.Fatalf("Failed to save inbounds: %v", err)
	}

	if repo.RunCount("run-1") != 2 {
		t.Errorf("Expected both lines stored for run-1, got %d", repo.RunCount("run-1"))
	}
	if repo.RunCount("run-2") != 2 {
		t.Errorf("Expected a later run to be stored in full, got %d", repo.RunCount("run-2"))
	}

	stored, _ := repo.GetInbounds(repositories.InboundFilter{DockID: "D1"})
	if len(stored) != 4 {
		t.Fatalf("Expected 4 stored records, got %d", len(stored))
	}
	if stored[0].Quantity != 3 || stored[1].Quantity != 4 {
		t.Errorf("Expected quantities 3 then 4, got %d then %d", stored[0].Quantity, stored[1].Quantity)
	}
}
