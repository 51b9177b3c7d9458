package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trend classifies the multi-cycle success trajectory
type Trend string

const (
	TrendFirstCycle Trend = "first_cycle"
	TrendImproving  Trend = "improving"
	TrendDeclining  Trend = "declining"
	TrendStable     Trend = "stable"
)

// TrendAnalysis compares the newest cycle's success rate against prior cycles
type TrendAnalysis struct {
	Trend                 Trend
	CurrentSuccessRate    decimal.Decimal
	AveragePreviousRate   decimal.Decimal
	ImprovementPercentage decimal.Decimal
	TotalCyclesCompleted  int
	BestCycleNumber       int
	Message               string
}

// PerformanceMetrics are the headline figures for one completed cycle
type PerformanceMetrics struct {
	ZonesServed        int
	SuccessRate        decimal.Decimal
	PopulationServed   int
	CoveragePercentage decimal.Decimal
}

// CycleRecord aggregates everything produced by one distribution cycle.
// A record is created once at the end of a cycle and never mutated after
// it is appended to history; downstream consumers only read it.
type CycleRecord struct {
	RunID       string
	CycleNumber int
	Timestamp   time.Time
	Duration    time.Duration
	Scenario    Scenario

	Zones     []Zone
	Resources ResourcePool

	Assessments []Assessment
	NeedsReport NeedsReport

	Allocations []Allocation
	Coverage    CoverageStats

	DeliveryPlan DeliveryPlan
	Schedule     []RouteSchedule
	LoadingPlans []LoadingPlan

	Outcomes []Outcome
	Analysis OutcomeAnalysis

	Metrics PerformanceMetrics
}

// SummaryReport aggregates performance across every completed cycle
type SummaryReport struct {
	TotalCyclesCompleted  int
	AverageSuccessRate    decimal.Decimal
	TotalPopulationServed int
	BestCycleNumber       int
	Summary               string
}
