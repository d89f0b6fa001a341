package memory

import (
	"sync"

	"github.com/vsinha/dockplan/pkg/domain/entities"
	"github.com/vsinha/dockplan/pkg/domain/repositories"
)

// InboundRepository keeps inbound records from every scheduling run
type InboundRepository struct {
	records []entities.InboundRecord
	seen    map[inboundKey]bool
	runs    map[string]int
	mutex   sync.RWMutex
}

// inboundKey identifies a record by its position within a run. Two lines of
// one PO may carry the same item id and land in the same slot.
type inboundKey struct {
	run      string
	sequence int
}

// NewInboundRepository creates a new in-memory inbound repository
func NewInboundRepository() *InboundRepository {
	return &InboundRepository{
		records: []entities.InboundRecord{},
		seen:    make(map[inboundKey]bool),
		runs:    make(map[string]int),
	}
}

// Verify interface compliance
var _ repositories.InboundRepository = (*InboundRepository)(nil)

// SaveInbounds appends a run's records in placement order. Saving the same
// run again skips records already stored at the same position.
func (r *InboundRepository) SaveInbounds(runID string, records []entities.InboundRecord) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, record := range records {
		key := inboundKey{run: runID, sequence: i}
		if r.seen[key] {
			continue
		}
		r.seen[key] = true
		r.records = append(r.records, record)
		r.runs[runID]++
	}
	return nil
}

// GetInbounds returns stored records matching the filter in save order
func (r *InboundRepository) GetInbounds(filter repositories.InboundFilter) ([]entities.InboundRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var matched []entities.InboundRecord
	for _, record := range r.records {
		if filter.Matches(record) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// RunCount returns how many new records a run stored
func (r *InboundRepository) RunCount(runID string) int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.runs[runID]
}
