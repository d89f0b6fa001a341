package dto

import "strconv"

// InboundRow is the report/persistence shape of one inbound record
type InboundRow struct {
	SlotStartDate       string `json:"slot_start_date"`
	SlotEndDate         string `json:"slot_end_date"`
	DockID              string `json:"dock_id"`
	POID                string `json:"po_id"`
	ItemID              string `json:"item_id"`
	Quantity            int64  `json:"quantity"`
	DockCurrentCapacity int64  `json:"dock_current_capacity"`
}

// InboundHeader lists the CSV columns for inbound rows
var InboundHeader = []string{
	"slot_start_date", "slot_end_date", "dock_id", "po_id", "item_id", "quantity", "dock_current_capacity",
}

// Values returns the row in InboundHeader order
func (r InboundRow) Values() []string {
	return []string{
		r.SlotStartDate,
		r.SlotEndDate,
		r.DockID,
		r.POID,
		r.ItemID,
		strconv.FormatInt(r.Quantity, 10),
		strconv.FormatInt(r.DockCurrentCapacity, 10),
	}
}

// PerformanceRow is the report shape of one slot performance sample
type PerformanceRow struct {
	SlotStartDate string `json:"slot_start_date"`
	SlotEndDate   string `json:"slot_end_date"`
	Performance   string `json:"performance"`
}

// PerformanceHeader lists the CSV columns for performance rows
var PerformanceHeader = []string{"slot_start_date", "slot_end_date", "performance"}

// Values returns the row in PerformanceHeader order
func (r PerformanceRow) Values() []string {
	return []string{r.SlotStartDate, r.SlotEndDate, r.Performance}
}

// Report is the output handed to report sinks
type Report struct {
	RunID        string           `json:"run_id,omitempty"`
	Inbounds     []InboundRow     `json:"inbounds"`
	Performances []PerformanceRow `json:"performances"`
}
