// Package reporting shapes scheduling results into the row format consumed
// by report writers and the inbound store.
package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/dockplan/pkg/application/dto"
	"github.com/vsinha/dockplan/pkg/domain/entities"
)

// TimestampLayout is how slot bounds are written in report rows
const TimestampLayout = "2006-01-02T15:04:05"

// PerformancePlaces is the number of decimal places kept for performance
const PerformancePlaces = 4

// BuildReport converts a scheduling result into report rows
func BuildReport(result *dto.ScheduleResult) dto.Report {
	return dto.Report{
		RunID:        result.RunID,
		Inbounds:     InboundRows(result.Inbounds),
		Performances: PerformanceRows(result.Performances),
	}
}

// InboundRows converts inbound records, keeping placement order
func InboundRows(records []entities.InboundRecord) []dto.InboundRow {
	rows := make([]dto.InboundRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, dto.InboundRow{
			SlotStartDate:       FormatTimestamp(record.SlotStart),
			SlotEndDate:         FormatTimestamp(record.SlotEnd),
			DockID:              string(record.DockID),
			POID:                string(record.POID),
			ItemID:              string(record.ItemID),
			Quantity:            int64(record.Quantity),
			DockCurrentCapacity: int64(record.DockRemainingCapacity),
		})
	}
	return rows
}

// PerformanceRows converts performance samples, keeping slot order
func PerformanceRows(samples []entities.PerformanceSample) []dto.PerformanceRow {
	rows := make([]dto.PerformanceRow, 0, len(samples))
	for _, sample := range samples {
		rows = append(rows, dto.PerformanceRow{
			SlotStartDate: FormatTimestamp(sample.SlotStart),
			SlotEndDate:   FormatTimestamp(sample.SlotEnd),
			Performance:   FormatPerformance(sample.Performance),
		})
	}
	return rows
}

// FormatTimestamp renders a slot bound in UTC
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatPerformance rounds a performance ratio to PerformancePlaces
func FormatPerformance(performance float64) string {
	return decimal.NewFromFloat(performance).Round(PerformancePlaces).String()
}
