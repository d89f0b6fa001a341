package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/vsinha/dockplan/pkg/application/services"
	"github.com/vsinha/dockplan/pkg/application/services/reporting"
	"github.com/vsinha/dockplan/pkg/domain/entities"
	"github.com/vsinha/dockplan/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Create repositories
	poRepo := memory.NewPurchaseOrderRepository()
	dockRepo := memory.NewDockSlotRepository()

	// Two docks open for a morning shift
	setupMorningShift(dockRepo)

	// Inbound purchase orders
	if err := poRepo.LoadPORows([]*entities.PORow{
		{POID: "4500001", ItemID: "PALLET-STEEL", Quantity: 40},
		{POID: "4500001", ItemID: "PALLET-BOLTS", Quantity: 12},
		{POID: "4500002", ItemID: "DRUM-OIL", Quantity: 25},
		{POID: "4500002", ItemID: "DRUM-COOLANT", Quantity: 25},
		{POID: "4500003", ItemID: "CARTON-FILTERS", Quantity: 30},
	}); err != nil {
		log.Fatalf("load PO lines: %v", err)
	}

	result, summary, err := services.NewScheduleService().Schedule(ctx, poRepo, dockRepo)
	if err != nil {
		log.Fatalf("schedule: %v", err)
	}

	fmt.Printf("Run %s: %d inbounds over %d slots, %d items pending\n\n",
		summary.RunID, summary.Inbounded, summary.Slots, summary.Pending)

	report := reporting.BuildReport(result)
	for _, row := range report.Inbounds {
		fmt.Printf("%s  dock %-8s  PO %s  %-15s %4d  (dock left %d)\n",
			row.SlotStartDate, row.DockID, row.POID, row.ItemID, row.Quantity, row.DockCurrentCapacity)
	}

	fmt.Println()
	for _, row := range report.Performances {
		fmt.Printf("%s - %s  idle %s\n", row.SlotStartDate, row.SlotEndDate, row.Performance)
	}
}

func setupMorningShift(dockRepo *memory.DockSlotRepository) {
	shiftStart := time.Date(2018, 8, 1, 6, 0, 0, 0, time.UTC)
	capacities := map[entities.DockID]entities.Quantity{
		"DOCK-01": 60,
		"DOCK-02": 40,
	}

	var rows []*entities.DockRow
	for hour := 0; hour < 3; hour++ {
		start := shiftStart.Add(time.Duration(hour) * time.Hour)
		for _, dockID := range []entities.DockID{"DOCK-01", "DOCK-02"} {
			row, err := entities.NewDockRow(dockID, start, start.Add(time.Hour), capacities[dockID])
			if err != nil {
				log.Fatalf("dock row: %v", err)
			}
			rows = append(rows, row)
		}
	}

	if err := dockRepo.LoadDockRows(rows); err != nil {
		log.Fatalf("load dock slots: %v", err)
	}
}
