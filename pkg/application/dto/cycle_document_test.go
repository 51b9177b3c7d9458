package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
	aidtesting "github.com/reliefops/aidcycle/pkg/infrastructure/testing"
)

func sampleRecord() *entities.CycleRecord {
	return &entities.CycleRecord{
		RunID:       "run-1",
		CycleNumber: 2,
		Timestamp:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Duration:    1500 * time.Millisecond,
		Scenario:    entities.ScenarioNormal,
		Zones:       aidtesting.BuildTestZones(),
		Resources:   *aidtesting.BuildTestPool(),
		Assessments: aidtesting.BuildTestAssessments(),
		NeedsReport: entities.NeedsReport{
			TotalZonesAssessed:   3,
			CriticalZones:        1,
			HighPriorityZones:    1,
			AveragePriorityScore: decimal.NewFromFloat(60.2),
			MostCommonNeeds:      map[string]int{"food": 2},
		},
		Allocations: aidtesting.BuildTestAllocations(),
		Coverage: entities.CoverageStats{
			ZonesServed:        2,
			TotalZones:         3,
			PopulationServed:   3900,
			TotalPopulation:    4600,
			CoveragePercentage: decimal.NewFromFloat(84.8),
		},
		DeliveryPlan: entities.DeliveryPlan{
			Routes: []entities.Route{{
				RouteID:            1,
				VehicleNumber:      1,
				ZoneSequence:       []entities.ZoneID{"Z01", "Z02"},
				TotalDistanceKm:    decimal.NewFromFloat(27.5),
				EstimatedTimeHours: decimal.NewFromFloat(2.9),
				RoadConditions:     "poor, fair",
			}},
			TotalVehiclesNeeded:    1,
			TotalDeliveryTimeHours: decimal.NewFromFloat(2.9),
			EstimatedCompletion:    "Day 1",
		},
		Schedule: []entities.RouteSchedule{{
			RouteID:   1,
			StartTime: entities.ClockTime(8.0),
			Stops: []entities.StopSchedule{{
				Sequence:         1,
				ZoneID:           "Z01",
				ArrivalTime:      entities.ClockTime(8.0),
				UnloadingMinutes: 30,
				DepartureTime:    entities.ClockTime(8.5),
			}},
			EndTime: entities.ClockTime(10.0),
		}},
		LoadingPlans: []entities.LoadingPlan{{
			RouteID: 1,
			LoadingSequence: []entities.ZoneLoad{{
				ZoneID: "Z02",
				Items: map[entities.ResourceKind]entities.LoadItem{
					entities.FoodPackages: {Quantity: 2000, WeightKg: decimal.NewFromInt(1000)},
				},
				TotalWeightKg: decimal.NewFromInt(1000),
			}},
			TotalWeightKg:       decimal.NewFromInt(1000),
			CapacityUsedPercent: decimal.NewFromFloat(33.3),
			WeightStatus:        entities.WeightOK,
		}},
		Outcomes: []entities.Outcome{{
			ZoneID:              "Z01",
			ZoneName:            "Sector A",
			PlannedDelivery:     map[entities.ResourceKind]entities.Quantity{entities.FoodPackages: 4000},
			DeliveredPercentage: decimal.NewFromFloat(96.3),
			Challenge:           entities.ChallengeNone,
			Status:              entities.DeliveryComplete,
		}},
		Analysis: entities.OutcomeAnalysis{
			OverallSuccessRate: decimal.NewFromFloat(96.3),
			ZonesFullyServed:   []entities.ZoneID{"Z01"},
		},
		Metrics: entities.PerformanceMetrics{
			ZonesServed:        2,
			SuccessRate:        decimal.NewFromFloat(96.3),
			PopulationServed:   3900,
			CoveragePercentage: decimal.NewFromFloat(84.8),
		},
	}
}

func TestNewCycleDocument(t *testing.T) {
	doc := NewCycleDocument(sampleRecord())

	if doc.CycleNumber != 2 {
		t.Errorf("cycle number = %d, want 2", doc.CycleNumber)
	}
	if doc.Timestamp != "2026-03-14T09:30:00Z" {
		t.Errorf("timestamp = %q", doc.Timestamp)
	}
	if doc.DurationSeconds != 1.5 {
		t.Errorf("duration = %g, want 1.5", doc.DurationSeconds)
	}
	if doc.Scenario != "normal" {
		t.Errorf("scenario = %q", doc.Scenario)
	}
	if doc.Settlement.TotalZones != 3 || doc.Settlement.TotalPopulation != 4600 {
		t.Errorf("settlement totals = %d zones, %d people", doc.Settlement.TotalZones, doc.Settlement.TotalPopulation)
	}
	if doc.Resources.Quantities["food_packages"] != 10000 {
		t.Errorf("pool food = %d, want 10000", doc.Resources.Quantities["food_packages"])
	}
	if doc.NeedsAssessment.PrioritizedZones[0].PriorityScore != 85.0 {
		t.Errorf("top priority = %g, want 85.0", doc.NeedsAssessment.PrioritizedZones[0].PriorityScore)
	}
	if doc.ResourceAllocation.Coverage.CoveragePercentage != 84.8 {
		t.Errorf("coverage = %g, want 84.8", doc.ResourceAllocation.Coverage.CoveragePercentage)
	}
	if doc.LogisticsPlan.DeliveryPlan.Routes[0].ZoneSequence[0] != "Z01" {
		t.Errorf("route sequence = %v", doc.LogisticsPlan.DeliveryPlan.Routes[0].ZoneSequence)
	}
	if doc.LogisticsPlan.Schedule[0].StartTime != "08:00" {
		t.Errorf("schedule start = %q, want 08:00", doc.LogisticsPlan.Schedule[0].StartTime)
	}
	if doc.LogisticsPlan.Schedule[0].Stops[0].DepartureTime != "08:30" {
		t.Errorf("departure = %q, want 08:30", doc.LogisticsPlan.Schedule[0].Stops[0].DepartureTime)
	}
	if doc.DeliveryOutcomes.ActualResults[0].DeliveredPercentage != 96.3 {
		t.Errorf("delivered = %g, want 96.3", doc.DeliveryOutcomes.ActualResults[0].DeliveredPercentage)
	}
	if doc.DeliveryOutcomes.ActualResults[0].DeliveryStatus != "complete" {
		t.Errorf("status = %q", doc.DeliveryOutcomes.ActualResults[0].DeliveryStatus)
	}
	if doc.PerformanceMetrics.SuccessRate != 96.3 {
		t.Errorf("metrics rate = %g, want 96.3", doc.PerformanceMetrics.SuccessRate)
	}
}

func TestCycleDocumentJSONKeys(t *testing.T) {
	data, err := json.Marshal(NewCycleDocument(sampleRecord()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var tree map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{
		"run_id", "cycle_number", "resource_scenario",
		"settlement_data", "available_resources",
		"needs_assessment", "resource_allocation",
		"logistics_plan", "delivery_outcomes", "performance_metrics",
	} {
		if _, ok := tree[key]; !ok {
			t.Errorf("document missing top-level key %q", key)
		}
	}

	settlement := tree["settlement_data"].(map[string]interface{})
	if _, ok := settlement["zones_data"]; !ok {
		t.Error("settlement section missing zones_data")
	}

	assessment := tree["needs_assessment"].(map[string]interface{})
	if _, ok := assessment["prioritized_zones"]; !ok {
		t.Error("assessment section missing prioritized_zones")
	}

	logistics := tree["logistics_plan"].(map[string]interface{})
	for _, key := range []string{"delivery_plan", "loading_plans", "schedule"} {
		if _, ok := logistics[key]; !ok {
			t.Errorf("logistics section missing %q", key)
		}
	}

	outcomes := tree["delivery_outcomes"].(map[string]interface{})
	for _, key := range []string{"actual_results", "analysis"} {
		if _, ok := outcomes[key]; !ok {
			t.Errorf("outcome section missing %q", key)
		}
	}
}
