package repositories

import (
	"time"

	"github.com/vsinha/dockplan/pkg/domain/entities"
)

// InboundFilter narrows an inbound history query. Zero values match everything.
// SlotDate matches records whose slot starts or ends on that calendar day.
type InboundFilter struct {
	DockID   entities.DockID
	SlotDate time.Time
}

// Matches reports whether a record passes the filter
func (f InboundFilter) Matches(record entities.InboundRecord) bool {
	if f.DockID != "" && record.DockID != f.DockID {
		return false
	}
	if f.SlotDate.IsZero() {
		return true
	}
	return sameDay(record.SlotStart, f.SlotDate) || sameDay(record.SlotEnd, f.SlotDate)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// InboundRepository stores scheduled inbound records
type InboundRepository interface {
	SaveInbounds(runID string, records []entities.InboundRecord) error
	GetInbounds(filter InboundFilter) ([]entities.InboundRecord, error)
}
