package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/vsinha/dockplan/pkg/domain/entities"
	"github.com/vsinha/dockplan/pkg/infrastructure/repositories/csv"
	testhelpers "github.com/vsinha/dockplan/pkg/infrastructure/testing"
)

func record(dock, po, item string, hour int) entities.InboundRecord {
	start := testhelpers.SlotBase.Add(time.Duration(hour) * time.Hour)
	return entities.InboundRecord{
		SlotStart: start,
		SlotEnd:   start.Add(time.Hour),
		DockID:    entities.DockID(dock),
		POID:      entities.POID(po),
		ItemID:    entities.ItemID(item),
		Quantity:  1,
	}
}

func mustDockRows(t *testing.T, content string) []*entities.DockRow {
	t.Helper()
	rows, err := csv.NewLoader().ReadDockRows(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Failed to parse dock rows: %v", err)
	}
	return rows
}
