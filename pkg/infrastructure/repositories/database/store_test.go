package database

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/dockplan/pkg/domain/entities"
	"github.com/vsinha/dockplan/pkg/domain/repositories"
	"github.com/vsinha/dockplan/pkg/infrastructure/config"
)

var slotBase = time.Date(2018, 8, 1, 0, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := &config.Config{
		Environment: "test",
		DBBackend:   config.DatabaseSQLite,
		DBDSN:       fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")),
	}
	db, err := Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	return NewStore(db)
}

func dockRow(dock string, hour int, capacity int64) *entities.DockRow {
	start := slotBase.Add(time.Duration(hour) * time.Hour)
	return &entities.DockRow{
		DockID:    entities.DockID(dock),
		SlotStart: start,
		SlotEnd:   start.Add(time.Hour),
		Capacity:  entities.Quantity(capacity),
	}
}

func TestConnectRejectsUnknownBackend(t *testing.T) {
	_, err := Connect(&config.Config{DBBackend: "oracle", DBDSN: "x"})
	assert.ErrorContains(t, err, "unknown database backend: oracle")
}

func TestStore_DockRows(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.LoadDockRows([]*entities.DockRow{
		dockRow("D2", 1, 5),
		dockRow("D1", 0, 10),
		dockRow("D2", 0, 4),
	}))
	// Re-uploading a dock slot replaces its capacity
	require.NoError(t, store.LoadDockRows([]*entities.DockRow{dockRow("D1", 0, 12)}))

	rows, err := store.GetDockRows()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, entities.DockID("D1"), rows[0].DockID)
	assert.Equal(t, entities.Quantity(12), rows[0].Capacity)
	assert.True(t, rows[0].SlotStart.Equal(slotBase))
	assert.Equal(t, time.UTC, rows[0].SlotStart.Location())
	assert.Equal(t, entities.DockID("D2"), rows[1].DockID)
	assert.Equal(t, entities.DockID("D2"), rows[2].DockID)
	assert.True(t, rows[2].SlotStart.Equal(slotBase.Add(time.Hour)))
}

func TestStore_PORows(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.LoadPORows([]*entities.PORow{
		{POID: "1", ItemID: "A", Quantity: 4},
		{POID: "1", ItemID: "B", Quantity: -2},
	}))

	rows, err := store.GetPORows()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, entities.ItemID("A"), rows[0].ItemID)
	assert.Equal(t, entities.Quantity(-2), rows[1].Quantity)
}

func TestStore_Inbounds(t *testing.T) {
	store := newTestStore(t)

	nextDay := slotBase.Add(24 * time.Hour)
	records := []entities.InboundRecord{
		{SlotStart: slotBase, SlotEnd: slotBase.Add(time.Hour), DockID: "D1", POID: "1", ItemID: "A", Quantity: 3, DockRemainingCapacity: 7},
		{SlotStart: slotBase, SlotEnd: slotBase.Add(time.Hour), DockID: "D2", POID: "2", ItemID: "B", Quantity: 2, DockRemainingCapacity: 2},
		{SlotStart: nextDay, SlotEnd: nextDay.Add(time.Hour), DockID: "D1", POID: "3", ItemID: "C", Quantity: 1, DockRemainingCapacity: 9},
	}

	require.NoError(t, store.SaveInbounds("run-1", records))
	// Saving the same run again is ignored
	require.NoError(t, store.SaveInbounds("run-1", records))

	all, err := store.GetInbounds(repositories.InboundFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].SlotStart.Equal(records[0].SlotStart))
	assert.True(t, all[0].SlotEnd.Equal(records[0].SlotEnd))
	assert.Equal(t, entities.Quantity(3), all[0].Quantity)
	assert.Equal(t, entities.Quantity(7), all[0].DockRemainingCapacity)

	byDock, err := store.GetInbounds(repositories.InboundFilter{DockID: "D1"})
	require.NoError(t, err)
	require.Len(t, byDock, 2)
	assert.Equal(t, entities.ItemID("C"), byDock[1].ItemID)

	byDate, err := store.GetInbounds(repositories.InboundFilter{SlotDate: nextDay})
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, entities.ItemID("C"), byDate[0].ItemID)

	none, err := store.GetInbounds(repositories.InboundFilter{DockID: "D2", SlotDate: nextDay})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_KeepsRepeatedItemLines(t *testing.T) {
	store := newTestStore(t)

	// Two lines of PO P for item A placed in the same dock slot
	records := []entities.InboundRecord{
		{SlotStart: slotBase, SlotEnd: slotBase.Add(time.Hour), DockID: "D1", POID: "P", ItemID: "A", Quantity: 3, DockRemainingCapacity: 4},
		{SlotStart: slotBase, SlotEnd: slotBase.Add(time.Hour), DockID: "D1", POID: "P", ItemID: "A", Quantity: 4, DockRemainingCapacity: 0},
	}

	require.NoError(t, store.SaveInbounds("run-1", records))
	require.NoError(t, store.SaveInbounds("run-1", records))
	require.NoError(t, store.SaveInbounds("run-2", records[:1]))

	stored, err := store.GetInbounds(repositories.InboundFilter{})
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, entities.Quantity(3), stored[0].Quantity)
	assert.Equal(t, entities.Quantity(4), stored[1].Quantity)
	assert.Equal(t, entities.Quantity(3), stored[2].Quantity)
}

func TestStore_EmptyInputsAreNoops(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.LoadDockRows(nil))
	assert.NoError(t, store.LoadPORows(nil))
	assert.NoError(t, store.SaveInbounds("run", nil))

	rows, err := store.GetDockRows()
	require.NoError(t, err)
	assert.Empty(t, rows)
}
