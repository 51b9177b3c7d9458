// Package aidcycle is the library entry point: a preassembled distribution
// cycle engine with sensible defaults, for callers that do not want to wire
// the services themselves.
package aidcycle

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/reliefops/aidcycle/pkg/application/services/allocation"
	"github.com/reliefops/aidcycle/pkg/application/services/assessment"
	"github.com/reliefops/aidcycle/pkg/application/services/execution"
	"github.com/reliefops/aidcycle/pkg/application/services/logistics"
	"github.com/reliefops/aidcycle/pkg/application/services/monitoring"
	"github.com/reliefops/aidcycle/pkg/application/services/orchestration"
	"github.com/reliefops/aidcycle/pkg/domain/entities"
	"github.com/reliefops/aidcycle/pkg/domain/repositories"
	"github.com/reliefops/aidcycle/pkg/infrastructure/advisory"
	"github.com/reliefops/aidcycle/pkg/infrastructure/events"
	"github.com/reliefops/aidcycle/pkg/infrastructure/repositories/memory"
	"github.com/reliefops/aidcycle/pkg/infrastructure/settlement"
)

// Options configures a cycle engine. The zero value runs a ten zone
// simulated settlement under the normal scenario with deterministic
// fallbacks only.
type Options struct {
	// Zones is the simulated settlement size; ignored when Source is set
	Zones int

	// Seed drives both settlement generation and delivery simulation
	Seed int64

	// Scenario selects resource availability; defaults to normal
	Scenario entities.Scenario

	// MaxZonesPerCycle caps zones served per cycle; zero means no cap
	MaxZonesPerCycle int

	// ReserveFraction is the fallback allocator's emergency hold-back;
	// zero means the default 10%
	ReserveFraction float64

	// Source overrides the simulated settlement with a custom zone source
	Source repositories.ZoneSource

	// Advisor enables the LLM advisory path; nil runs deterministic only
	Advisor *advisory.Client

	// Logger receives structured logs; nil discards them
	Logger *logrus.Logger
}

// Engine runs aid distribution cycles over a fixed configuration
type Engine struct {
	orchestrator *orchestration.CycleOrchestrator
	journal      *events.Journal
}

// New assembles a cycle engine from the options
func New(opts Options) *Engine {
	if opts.Zones <= 0 {
		opts.Zones = 10
	}
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	if opts.Scenario == "" {
		opts.Scenario = entities.ScenarioNormal
	}
	if opts.ReserveFraction <= 0 {
		opts.ReserveFraction = allocation.DefaultReserveFraction
	}

	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	source := opts.Source
	if source == nil {
		source = settlement.NewSimulator(opts.Zones, opts.Seed)
	}

	var (
		assessAdvisor   assessment.Advisor
		allocAdvisor    allocation.Advisor
		logisticAdvisor logistics.Advisor
		monitorAdvisor  monitoring.Advisor
	)
	if opts.Advisor != nil {
		assessAdvisor = opts.Advisor
		allocAdvisor = opts.Advisor
		logisticAdvisor = opts.Advisor
		monitorAdvisor = opts.Advisor
	}

	journal := events.NewJournal()
	orchestrator := orchestration.NewCycleOrchestrator(
		source,
		assessment.NewService(assessAdvisor, log),
		allocation.NewService(allocAdvisor, opts.ReserveFraction, log),
		logistics.NewPlanner(logisticAdvisor, log),
		execution.NewSimulator(opts.Seed, log),
		monitoring.NewService(monitorAdvisor, log),
		memory.NewHistoryRepository(),
		journal,
		opts.Scenario,
		opts.MaxZonesPerCycle,
		log,
	)

	return &Engine{orchestrator: orchestrator, journal: journal}
}

// RunCycle executes a single distribution cycle
func (e *Engine) RunCycle(ctx context.Context, cycleNumber int) (*entities.CycleRecord, error) {
	return e.orchestrator.RunCycle(ctx, cycleNumber)
}

// RunCycles executes numCycles cycles in sequence
func (e *Engine) RunCycles(ctx context.Context, numCycles int) ([]*entities.CycleRecord, error) {
	return e.orchestrator.RunCycles(ctx, numCycles)
}

// History returns every completed cycle record in order
func (e *Engine) History() ([]*entities.CycleRecord, error) {
	return e.orchestrator.History()
}

// SummaryReport aggregates performance across completed cycles
func (e *Engine) SummaryReport() (entities.SummaryReport, error) {
	return e.orchestrator.SummaryReport()
}

// Journal returns the phase event journal for inspection
func (e *Engine) Journal() *events.Journal {
	return e.journal
}
