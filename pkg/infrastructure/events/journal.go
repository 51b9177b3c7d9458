package events

import (
	"sync"
	"time"
)

// Event types recorded by the cycle journal
const (
	PhaseStarted   = "phase_started"
	PhaseCompleted = "phase_completed"
	PhaseFailed    = "phase_failed"
	CycleCompleted = "cycle_completed"
)

// Event is one entry in the cycle journal
type Event struct {
	Type      string
	Cycle     int
	Phase     string
	Timestamp time.Time
	Detail    string
}

// Journal is an in-memory, append-only log of cycle phase transitions.
// It exists for post-run inspection and tests; it is not a durability layer.
type Journal struct {
	mu     sync.RWMutex
	events []Event
}

// NewJournal creates an empty cycle journal
func NewJournal() *Journal {
	return &Journal{events: make([]Event, 0)}
}

// Append records an event, stamping it with the current time if unset
func (j *Journal) Append(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, event)
}

// All returns every recorded event in append order
func (j *Journal) All() []Event {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]Event, len(j.events))
	copy(out, j.events)
	return out
}

// ForCycle returns the events recorded for one cycle, in append order
func (j *Journal) ForCycle(cycle int) []Event {
	j.mu.RLock()
	defer j.mu.RUnlock()
	var out []Event
	for _, e := range j.events {
		if e.Cycle == cycle {
			out = append(out, e)
		}
	}
	return out
}
