package memory

import (
	"fmt"
	"sync"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
	"github.com/reliefops/aidcycle/pkg/domain/repositories"
)

// HistoryRepository provides in-memory, append-only storage of cycle records
type HistoryRepository struct {
	mu      sync.RWMutex
	records []*entities.CycleRecord
}

// NewHistoryRepository creates a new in-memory history repository
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{
		records: []*entities.CycleRecord{},
	}
}

// Verify interface compliance
var _ repositories.HistoryRepository = (*HistoryRepository)(nil)

// Append adds a completed cycle record to history
func (r *HistoryRepository) Append(record *entities.CycleRecord) error {
	if record == nil {
		return fmt.Errorf("cycle record cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

// All returns every recorded cycle in append order
func (r *HistoryRepository) All() ([]*entities.CycleRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entities.CycleRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Len returns the number of recorded cycles
func (r *HistoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
