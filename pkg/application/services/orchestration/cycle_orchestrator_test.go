package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/reliefops/aidcycle/pkg/application/services/allocation"
	"github.com/reliefops/aidcycle/pkg/application/services/assessment"
	"github.com/reliefops/aidcycle/pkg/application/services/execution"
	"github.com/reliefops/aidcycle/pkg/application/services/logistics"
	"github.com/reliefops/aidcycle/pkg/application/services/monitoring"
	"github.com/reliefops/aidcycle/pkg/domain/entities"
	"github.com/reliefops/aidcycle/pkg/domain/repositories"
	"github.com/reliefops/aidcycle/pkg/infrastructure/events"
	"github.com/reliefops/aidcycle/pkg/infrastructure/repositories/memory"
	aidtesting "github.com/reliefops/aidcycle/pkg/infrastructure/testing"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// staticSource serves a fixed snapshot and does not implement ZoneUpdater
type staticSource struct {
	zonesErr error
}

func (s *staticSource) Zones() ([]entities.Zone, error) {
	if s.zonesErr != nil {
		return nil, s.zonesErr
	}
	return aidtesting.BuildTestZones(), nil
}

func (s *staticSource) AvailableResources(scenario entities.Scenario) (*entities.ResourcePool, error) {
	return aidtesting.BuildTestPool(), nil
}

// updatingSource additionally records zone feedback calls
type updatingSource struct {
	staticSource
	updated map[entities.ZoneID]map[entities.ResourceKind]entities.Quantity
}

func (s *updatingSource) UpdateZoneAfterDelivery(id entities.ZoneID, delivered map[entities.ResourceKind]entities.Quantity) error {
	if s.updated == nil {
		s.updated = make(map[entities.ZoneID]map[entities.ResourceKind]entities.Quantity)
	}
	s.updated[id] = delivered
	return nil
}

func newTestOrchestrator(source *staticSource, updater *updatingSource) (*CycleOrchestrator, *events.Journal) {
	log := testLogger()
	journal := events.NewJournal()

	var src repositories.ZoneSource = source
	if updater != nil {
		src = updater
	}

	orch := NewCycleOrchestrator(
		src,
		assessment.NewService(nil, log),
		allocation.NewService(nil, 0.10, log),
		logistics.NewPlanner(nil, log),
		execution.NewSimulator(42, log),
		monitoring.NewService(nil, log),
		memory.NewHistoryRepository(),
		journal,
		entities.ScenarioNormal,
		0,
		log,
	)
	return orch, journal
}

func TestRunCycleCompletes(t *testing.T) {
	orch, journal := newTestOrchestrator(&staticSource{}, nil)

	record, err := orch.RunCycle(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.CycleNumber != 1 {
		t.Errorf("cycle number = %d, want 1", record.CycleNumber)
	}
	if record.RunID != orch.RunID() {
		t.Errorf("record run id %q does not match orchestrator %q", record.RunID, orch.RunID())
	}
	if len(record.Zones) != 3 {
		t.Errorf("got %d zones, want 3", len(record.Zones))
	}
	if len(record.Assessments) != 3 {
		t.Errorf("got %d assessments, want 3", len(record.Assessments))
	}
	if len(record.Allocations) == 0 {
		t.Error("no allocations produced")
	}
	if len(record.DeliveryPlan.Routes) == 0 {
		t.Error("no delivery routes produced")
	}
	if len(record.Schedule) != len(record.DeliveryPlan.Routes) {
		t.Errorf("got %d schedules for %d routes", len(record.Schedule), len(record.DeliveryPlan.Routes))
	}
	if len(record.Outcomes) != len(record.Allocations) {
		t.Errorf("got %d outcomes for %d allocations", len(record.Outcomes), len(record.Allocations))
	}
	if record.Analysis.OverallSuccessRate.IsZero() {
		t.Error("analysis success rate not set")
	}
	if record.Metrics.ZonesServed != len(record.Allocations) {
		t.Errorf("metrics zones served = %d, want %d", record.Metrics.ZonesServed, len(record.Allocations))
	}

	history, err := orch.History()
	if err != nil {
		t.Fatalf("history error: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("history has %d records, want 1", len(history))
	}

	cycleEvents := journal.ForCycle(1)
	var completed int
	for _, e := range cycleEvents {
		if e.Type == events.PhaseFailed {
			t.Errorf("unexpected failed phase event: %+v", e)
		}
		if e.Type == events.PhaseCompleted {
			completed++
		}
	}
	if completed != 7 {
		t.Errorf("journal records %d completed phases, want 7", completed)
	}
	last := cycleEvents[len(cycleEvents)-1]
	if last.Type != events.CycleCompleted {
		t.Errorf("final event type = %s, want cycle completed", last.Type)
	}
}

func TestRunCycleSnapshotFailure(t *testing.T) {
	boom := fmt.Errorf("registry offline")
	orch, _ := newTestOrchestrator(&staticSource{zonesErr: boom}, nil)

	_, err := orch.RunCycle(context.Background(), 1)
	var phaseErr *PhaseError
	if !errors.As(err, &phaseErr) {
		t.Fatalf("expected PhaseError, got %v", err)
	}
	if phaseErr.Phase != PhaseSnapshot {
		t.Errorf("failed phase = %s, want snapshot", phaseErr.Phase)
	}
	if !errors.Is(err, boom) {
		t.Error("PhaseError must unwrap to the underlying cause")
	}

	history, _ := orch.History()
	if len(history) != 0 {
		t.Errorf("failed cycle must not append to history, got %d records", len(history))
	}
}

func TestRunCyclesAccumulateHistory(t *testing.T) {
	orch, _ := newTestOrchestrator(&staticSource{}, nil)

	records, err := orch.RunCycles(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, r := range records {
		if r.CycleNumber != i+1 {
			t.Errorf("record %d has cycle number %d", i, r.CycleNumber)
		}
	}

	summary, err := orch.SummaryReport()
	if err != nil {
		t.Fatalf("summary error: %v", err)
	}
	if summary.TotalCyclesCompleted != 3 {
		t.Errorf("summary cycles = %d, want 3", summary.TotalCyclesCompleted)
	}
	if summary.AverageSuccessRate.IsZero() {
		t.Error("summary average not set")
	}
	if summary.BestCycleNumber < 1 || summary.BestCycleNumber > 3 {
		t.Errorf("best cycle = %d, out of range", summary.BestCycleNumber)
	}
}

func TestSummaryReportEmptyHistory(t *testing.T) {
	orch, _ := newTestOrchestrator(&staticSource{}, nil)
	if _, err := orch.SummaryReport(); err == nil {
		t.Error("expected error with no completed cycles")
	}
}

func TestRunCycleAppliesZoneFeedback(t *testing.T) {
	src := &updatingSource{}
	orch, _ := newTestOrchestrator(nil, src)

	record, err := orch.RunCycle(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(src.updated) != len(record.Allocations) {
		t.Fatalf("feedback reached %d zones, want %d", len(src.updated), len(record.Allocations))
	}
	for _, alloc := range record.Allocations {
		delivered, ok := src.updated[alloc.ZoneID]
		if !ok {
			t.Errorf("zone %s received no feedback", alloc.ZoneID)
			continue
		}
		for kind, planned := range alloc.Quantities {
			if delivered[kind] > planned {
				t.Errorf("zone %s kind %s: delivered %d exceeds planned %d", alloc.ZoneID, kind, delivered[kind], planned)
			}
		}
	}
}

func TestRunCycleStaticSourceSkipsFeedback(t *testing.T) {
	orch, _ := newTestOrchestrator(&staticSource{}, nil)
	if _, err := orch.RunCycle(context.Background(), 1); err != nil {
		t.Fatalf("static source must not require update support: %v", err)
	}
}
