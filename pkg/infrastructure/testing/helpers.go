package testing

import (
	"time"

	"github.com/vsinha/dockplan/pkg/domain/entities"
	"github.com/vsinha/dockplan/pkg/infrastructure/repositories/memory"
)

// SlotBase is the first slot start used by every fixture
var SlotBase = time.Date(2018, 8, 1, 0, 0, 0, 0, time.UTC)

// HourlyDockRow builds a one hour dock row starting hour hours after SlotBase
func HourlyDockRow(dockID string, hour int, capacity int64) *entities.DockRow {
	start := SlotBase.Add(time.Duration(hour) * time.Hour)
	row, err := entities.NewDockRow(entities.DockID(dockID), start, start.Add(time.Hour), entities.Quantity(capacity))
	if err != nil {
		panic(err)
	}
	return row
}

// PORow builds one purchase order line
func PORow(poID, itemID string, quantity int64) *entities.PORow {
	return &entities.PORow{
		POID:     entities.POID(poID),
		ItemID:   entities.ItemID(itemID),
		Quantity: entities.Quantity(quantity),
	}
}

// BuildSimpleTestData builds one dock with capacity 10 for one slot and a PO
// whose two items fill it exactly
func BuildSimpleTestData() (*memory.PurchaseOrderRepository, *memory.DockSlotRepository) {
	poRepo := memory.NewPurchaseOrderRepository()
	dockRepo := memory.NewDockSlotRepository()

	mustLoad(poRepo.LoadPORows([]*entities.PORow{
		PORow("1", "A", 6),
		PORow("1", "B", 4),
	}))
	mustLoad(dockRepo.LoadDockRows([]*entities.DockRow{
		HourlyDockRow("D1", 0, 10),
	}))

	return poRepo, dockRepo
}

// BuildWarehouseTestData builds a day shift with three docks over four
// hourly slots and five purchase orders of mixed sizes, including a zero
// quantity line and one line too large for any first-slot dock.
func BuildWarehouseTestData() (*memory.PurchaseOrderRepository, *memory.DockSlotRepository) {
	poRepo := memory.NewPurchaseOrderRepository()
	dockRepo := memory.NewDockSlotRepository()

	mustLoad(poRepo.LoadPORows([]*entities.PORow{
		PORow("4500001", "PALLET-STEEL", 40),
		PORow("4500001", "PALLET-BOLTS", 12),
		PORow("4500001", "CARTON-WASHERS", 8),
		PORow("4500002", "DRUM-OIL", 25),
		PORow("4500002", "DRUM-GREASE", 25),
		PORow("4500003", "CRATE-PUMP", 60),
		PORow("4500003", "CRATE-MOTOR", 30),
		PORow("4500003", "CARTON-SEALS", 0),
		PORow("4500004", "CARTON-FILTERS", 5),
		PORow("4500004", "CARTON-BELTS", 7),
		PORow("4500004", "CARTON-HOSES", 3),
		PORow("4500004", "CARTON-CLAMPS", 2),
		PORow("4500005", "SKID-TRANSFORMER", 500),
	}))

	var docks []*entities.DockRow
	for hour := 0; hour < 4; hour++ {
		docks = append(docks,
			HourlyDockRow("DOCK-01", hour, 60),
			HourlyDockRow("DOCK-02", hour, 50),
			HourlyDockRow("DOCK-03", hour, 20),
		)
	}
	mustLoad(dockRepo.LoadDockRows(docks))

	return poRepo, dockRepo
}

func mustLoad(err error) {
	if err != nil {
		panic(err)
	}
}
