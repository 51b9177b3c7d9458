package repositories

import (
	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// HistoryRepository is the append-only store of completed cycle records.
// Records are immutable once appended; readers must not modify them.
type HistoryRepository interface {
	// Append adds a completed cycle record to history
	Append(record *entities.CycleRecord) error

	// All returns every recorded cycle in append order
	All() ([]*entities.CycleRecord, error)

	// Len returns the number of recorded cycles
	Len() int
}
