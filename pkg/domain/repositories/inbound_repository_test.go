package repositories

import (
	"testing"
	"time"

	"github.com/vsinha/dockplan/pkg/domain/entities"
)

func TestInboundFilter_Matches(t *testing.T) {
	start := time.Date(2018, 8, 1, 23, 0, 0, 0, time.UTC)
	record := entities.InboundRecord{
		SlotStart: start,
		SlotEnd:   start.Add(2 * time.Hour),
		DockID:    "D1",
		POID:      "PO1",
		ItemID:    "A",
		Quantity:  4,
	}

	testCases := []struct {
		name     string
		filter   InboundFilter
		expected bool
	}{
		{"empty filter", InboundFilter{}, true},
		{"matching dock", InboundFilter{DockID: "D1"}, true},
		{"other dock", InboundFilter{DockID: "D2"}, false},
		{"start date", InboundFilter{SlotDate: time.Date(2018, 8, 1, 0, 0, 0, 0, time.UTC)}, true},
		{"end date", InboundFilter{SlotDate: time.Date(2018, 8, 2, 0, 0, 0, 0, time.UTC)}, true},
		{"unrelated date", InboundFilter{SlotDate: time.Date(2018, 8, 3, 0, 0, 0, 0, time.UTC)}, false},
		{"dock and date", InboundFilter{DockID: "D2", SlotDate: time.Date(2018, 8, 1, 0, 0, 0, 0, time.UTC)}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Matches(record); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}
