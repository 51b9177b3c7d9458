// Package orchestration runs complete aid distribution cycles, coordinating
// assessment, allocation, logistics, execution and monitoring.
package orchestration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/reliefops/aidcycle/pkg/application/services/allocation"
	"github.com/reliefops/aidcycle/pkg/application/services/assessment"
	"github.com/reliefops/aidcycle/pkg/application/services/execution"
	"github.com/reliefops/aidcycle/pkg/application/services/logistics"
	"github.com/reliefops/aidcycle/pkg/application/services/monitoring"
	"github.com/reliefops/aidcycle/pkg/domain/entities"
	"github.com/reliefops/aidcycle/pkg/domain/repositories"
	"github.com/reliefops/aidcycle/pkg/infrastructure/events"
)

// Phase names recorded in the cycle journal
const (
	PhaseSnapshot   = "snapshot"
	PhaseAssessment = "assessment"
	PhaseAllocation = "allocation"
	PhaseLogistics  = "logistics"
	PhaseExecution  = "execution"
	PhaseAnalysis   = "analysis"
	PhaseRecord     = "record"
)

// PhaseError wraps a failure with the cycle and phase it occurred in.
// A failed phase aborts its cycle; no partial record is appended to history.
type PhaseError struct {
	Phase string
	Cycle int
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("cycle %d: phase %s failed: %v", e.Cycle, e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// ZoneUpdater is the optional feedback capability of a zone source: after a
// cycle, delivered aid reduces the receiving zones' recorded shortages. The
// simulated source implements it; static fixture sources do not.
type ZoneUpdater interface {
	UpdateZoneAfterDelivery(id entities.ZoneID, delivered map[entities.ResourceKind]entities.Quantity) error
}

// CycleOrchestrator drives distribution cycles end to end
type CycleOrchestrator struct {
	source     repositories.ZoneSource
	assessment *assessment.Service
	allocation *allocation.Service
	logistics  *logistics.Planner
	execution  *execution.Simulator
	monitoring *monitoring.Service
	history    repositories.HistoryRepository
	journal    *events.Journal

	scenario entities.Scenario
	maxZones int
	runID    string
	log      *logrus.Entry
}

// NewCycleOrchestrator creates an orchestrator over the given services.
// maxZones caps how many zones a single cycle serves; zero means no cap.
func NewCycleOrchestrator(
	source repositories.ZoneSource,
	assessmentSvc *assessment.Service,
	allocationSvc *allocation.Service,
	logisticsSvc *logistics.Planner,
	executionSvc *execution.Simulator,
	monitoringSvc *monitoring.Service,
	history repositories.HistoryRepository,
	journal *events.Journal,
	scenario entities.Scenario,
	maxZones int,
	log *logrus.Logger,
) *CycleOrchestrator {
	return &CycleOrchestrator{
		source:     source,
		assessment: assessmentSvc,
		allocation: allocationSvc,
		logistics:  logisticsSvc,
		execution:  executionSvc,
		monitoring: monitoringSvc,
		history:    history,
		journal:    journal,
		scenario:   scenario,
		maxZones:   maxZones,
		runID:      uuid.NewString(),
		log:        log.WithField("component", "orchestration"),
	}
}

// RunID identifies this orchestrator's run across all its cycles
func (o *CycleOrchestrator) RunID() string {
	return o.runID
}

// RunCycle executes one complete distribution cycle and appends its record
// to history. Any phase failure aborts the cycle with a PhaseError.
func (o *CycleOrchestrator) RunCycle(ctx context.Context, cycleNumber int) (*entities.CycleRecord, error) {
	start := time.Now()
	o.log.WithFields(logrus.Fields{
		"cycle":    cycleNumber,
		"scenario": o.scenario,
	}).Info("distribution cycle started")

	record := &entities.CycleRecord{
		RunID:       o.runID,
		CycleNumber: cycleNumber,
		Timestamp:   start,
		Scenario:    o.scenario,
	}

	// Phase 1: settlement snapshot
	if err := o.runPhase(cycleNumber, PhaseSnapshot, func() error {
		zones, err := o.source.Zones()
		if err != nil {
			return fmt.Errorf("loading zones: %w", err)
		}
		pool, err := o.source.AvailableResources(o.scenario)
		if err != nil {
			return fmt.Errorf("loading resources: %w", err)
		}
		record.Zones = zones
		record.Resources = *pool
		return nil
	}); err != nil {
		return nil, err
	}

	// Phase 2: needs assessment
	if err := o.runPhase(cycleNumber, PhaseAssessment, func() error {
		ranked, err := o.assessment.AssessAllZones(ctx, record.Zones)
		if err != nil {
			return err
		}
		report, err := o.assessment.GenerateNeedsReport(ranked)
		if err != nil {
			return err
		}
		record.Assessments = ranked
		record.NeedsReport = report
		return nil
	}); err != nil {
		return nil, err
	}

	// Phase 3: resource allocation
	if err := o.runPhase(cycleNumber, PhaseAllocation, func() error {
		allocs, err := o.allocation.AllocateResources(ctx, record.Assessments, &record.Resources, o.maxZones)
		if err != nil {
			return err
		}
		record.Allocations = allocs
		record.Coverage = o.allocation.Coverage(allocs, record.Zones)
		return nil
	}); err != nil {
		return nil, err
	}

	// Phase 4: logistics planning
	if err := o.runPhase(cycleNumber, PhaseLogistics, func() error {
		plan, err := o.logistics.PlanDeliveryRoutes(ctx, record.Allocations, record.Zones)
		if err != nil {
			return err
		}
		record.DeliveryPlan = *plan
		record.LoadingPlans = o.logistics.CalculateLoadingPlans(plan, record.Allocations)
		record.Schedule = o.logistics.GenerateDeliverySchedule(plan)
		return nil
	}); err != nil {
		return nil, err
	}

	// Phase 5: delivery execution
	if err := o.runPhase(cycleNumber, PhaseExecution, func() error {
		outcomes, err := o.execution.SimulateDelivery(record.Allocations)
		if err != nil {
			return err
		}
		record.Outcomes = outcomes
		o.applyDeliveries(outcomes)
		return nil
	}); err != nil {
		return nil, err
	}

	// Phase 6: outcome analysis
	if err := o.runPhase(cycleNumber, PhaseAnalysis, func() error {
		analysis, err := o.monitoring.AnalyzeDeliveryOutcomes(ctx, &record.DeliveryPlan, record.Outcomes, record.Allocations)
		if err != nil {
			return err
		}
		record.Analysis = analysis
		return nil
	}); err != nil {
		return nil, err
	}

	// Phase 7: record and append to history
	if err := o.runPhase(cycleNumber, PhaseRecord, func() error {
		record.Duration = time.Since(start)
		record.Metrics = entities.PerformanceMetrics{
			ZonesServed:        len(record.Allocations),
			SuccessRate:        record.Analysis.OverallSuccessRate,
			PopulationServed:   record.Coverage.PopulationServed,
			CoveragePercentage: record.Coverage.CoveragePercentage,
		}
		return o.history.Append(record)
	}); err != nil {
		return nil, err
	}

	o.journal.Append(events.Event{
		Type:  events.CycleCompleted,
		Cycle: cycleNumber,
	})
	o.log.WithFields(logrus.Fields{
		"cycle":        cycleNumber,
		"duration":     record.Duration,
		"success_rate": record.Metrics.SuccessRate,
		"population":   record.Metrics.PopulationServed,
	}).Info("distribution cycle complete")

	return record, nil
}

// RunCycles executes the given number of cycles in sequence, logging the
// performance trend after each cycle beyond the first. The first failed
// cycle stops the run; completed cycles remain in history.
func (o *CycleOrchestrator) RunCycles(ctx context.Context, numCycles int) ([]*entities.CycleRecord, error) {
	records := make([]*entities.CycleRecord, 0, numCycles)
	for cycle := 1; cycle <= numCycles; cycle++ {
		record, err := o.RunCycle(ctx, cycle)
		if err != nil {
			return records, err
		}
		records = append(records, record)

		if cycle > 1 {
			previous := make([]entities.OutcomeAnalysis, 0, len(records)-1)
			for _, r := range records[:len(records)-1] {
				previous = append(previous, r.Analysis)
			}
			trend := o.monitoring.TrackHistoricalPerformance(record.Analysis, previous)
			o.log.WithFields(logrus.Fields{
				"cycle":       cycle,
				"trend":       trend.Trend,
				"improvement": trend.ImprovementPercentage,
			}).Info("performance trend updated")
		}
	}
	return records, nil
}

// History returns every completed cycle record in append order
func (o *CycleOrchestrator) History() ([]*entities.CycleRecord, error) {
	return o.history.All()
}

// SummaryReport aggregates performance across all completed cycles
func (o *CycleOrchestrator) SummaryReport() (entities.SummaryReport, error) {
	records, err := o.history.All()
	if err != nil {
		return entities.SummaryReport{}, err
	}
	if len(records) == 0 {
		return entities.SummaryReport{}, fmt.Errorf("no cycles completed yet")
	}

	total := decimal.Zero
	population := 0
	best := records[0]
	for _, r := range records {
		total = total.Add(r.Metrics.SuccessRate)
		population += r.Metrics.PopulationServed
		if r.Metrics.SuccessRate.GreaterThan(best.Metrics.SuccessRate) {
			best = r
		}
	}
	avg := total.Div(decimal.NewFromInt(int64(len(records)))).Round(1)

	return entities.SummaryReport{
		TotalCyclesCompleted:  len(records),
		AverageSuccessRate:    avg,
		TotalPopulationServed: population,
		BestCycleNumber:       best.CycleNumber,
		Summary:               fmt.Sprintf("Completed %d cycles with %s%% average success rate", len(records), avg),
	}, nil
}

// runPhase wraps one phase with journal events and error tagging
func (o *CycleOrchestrator) runPhase(cycle int, phase string, fn func() error) error {
	o.journal.Append(events.Event{Type: events.PhaseStarted, Cycle: cycle, Phase: phase})
	if err := fn(); err != nil {
		o.journal.Append(events.Event{Type: events.PhaseFailed, Cycle: cycle, Phase: phase, Detail: err.Error()})
		o.log.WithFields(logrus.Fields{"cycle": cycle, "phase": phase}).WithError(err).Error("cycle phase failed")
		return &PhaseError{Phase: phase, Cycle: cycle, Err: err}
	}
	o.journal.Append(events.Event{Type: events.PhaseCompleted, Cycle: cycle, Phase: phase})
	return nil
}

// applyDeliveries feeds delivered quantities back into the zone source so the
// next cycle assesses reduced shortages. Quantities are scaled by the
// delivered percentage, rounded down. Sources without update support and
// per-zone update errors are skipped; feedback is best effort.
func (o *CycleOrchestrator) applyDeliveries(outcomes []entities.Outcome) {
	updater, ok := o.source.(ZoneUpdater)
	if !ok {
		return
	}

	hundred := decimal.NewFromInt(100)
	for _, outcome := range outcomes {
		delivered := make(map[entities.ResourceKind]entities.Quantity, len(outcome.PlannedDelivery))
		for kind, qty := range outcome.PlannedDelivery {
			actual := decimal.NewFromInt(int64(qty)).Mul(outcome.DeliveredPercentage).Div(hundred).Floor()
			delivered[kind] = entities.Quantity(actual.IntPart())
		}
		if err := updater.UpdateZoneAfterDelivery(outcome.ZoneID, delivered); err != nil {
			o.log.WithField("zone", outcome.ZoneID).WithError(err).Warn("zone feedback update failed")
		}
	}
}
