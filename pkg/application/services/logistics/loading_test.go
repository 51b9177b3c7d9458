package logistics

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

func TestCalculateLoadingPlansWeights(t *testing.T) {
	p := NewPlanner(nil, testLogger())

	plan := &entities.DeliveryPlan{Routes: []entities.Route{
		{RouteID: 1, ZoneSequence: []entities.ZoneID{"Z01", "Z02"}},
	}}
	allocations := []entities.Allocation{
		{ZoneID: "Z01", ZoneName: "A", Quantities: map[entities.ResourceKind]entities.Quantity{
			entities.FoodPackages: 100, // 100 * 0.5 = 50 kg
			entities.WaterLiters:  200, // 200 * 1.0 = 200 kg
		}},
		{ZoneID: "Z02", ZoneName: "B", Quantities: map[entities.ResourceKind]entities.Quantity{
			entities.MedicalKits:      10, // 10 * 2.0 = 20 kg
			entities.ShelterMaterials: 4,  // 4 * 15.0 = 60 kg
			entities.Blankets:         20, // 20 * 1.5 = 30 kg
			entities.HygieneKits:      10, // 10 * 3.0 = 30 kg
		}},
	}

	plans := p.CalculateLoadingPlans(plan, allocations)
	if len(plans) != 1 {
		t.Fatalf("got %d loading plans, want 1", len(plans))
	}

	lp := plans[0]
	if !lp.TotalWeightKg.Equal(decimal.NewFromInt(390)) {
		t.Errorf("total weight = %s, want 390", lp.TotalWeightKg)
	}
	if lp.WeightStatus != entities.WeightOK {
		t.Errorf("status = %s, want OK", lp.WeightStatus)
	}
	if !lp.CapacityUsedPercent.Equal(decimal.NewFromInt(13)) {
		t.Errorf("capacity used = %s, want 13", lp.CapacityUsedPercent)
	}

	// Last stop's cargo loads first
	if lp.LoadingSequence[0].ZoneID != "Z02" {
		t.Errorf("first loaded zone = %s, want Z02", lp.LoadingSequence[0].ZoneID)
	}
	if !lp.LoadingSequence[0].TotalWeightKg.Equal(decimal.NewFromInt(140)) {
		t.Errorf("Z02 load = %s, want 140", lp.LoadingSequence[0].TotalWeightKg)
	}
	if !lp.LoadingSequence[1].TotalWeightKg.Equal(decimal.NewFromInt(250)) {
		t.Errorf("Z01 load = %s, want 250", lp.LoadingSequence[1].TotalWeightKg)
	}
}

func TestCalculateLoadingPlansOverweight(t *testing.T) {
	p := NewPlanner(nil, testLogger())

	plan := &entities.DeliveryPlan{Routes: []entities.Route{
		{RouteID: 1, ZoneSequence: []entities.ZoneID{"Z01"}},
	}}
	allocations := []entities.Allocation{
		{ZoneID: "Z01", Quantities: map[entities.ResourceKind]entities.Quantity{
			entities.ShelterMaterials: 250, // 3750 kg, over the 3000 kg capacity
		}},
	}

	plans := p.CalculateLoadingPlans(plan, allocations)
	if plans[0].WeightStatus != entities.WeightOverweight {
		t.Errorf("status = %s, want OVERWEIGHT", plans[0].WeightStatus)
	}
	if !plans[0].TotalWeightKg.Equal(decimal.NewFromInt(3750)) {
		t.Errorf("weight = %s, want 3750", plans[0].TotalWeightKg)
	}
}

func TestUnitWeightKg(t *testing.T) {
	tests := []struct {
		kind entities.ResourceKind
		want float64
	}{
		{entities.FoodPackages, 0.5},
		{entities.WaterLiters, 1.0},
		{entities.MedicalKits, 2.0},
		{entities.ShelterMaterials, 15.0},
		{entities.Blankets, 1.5},
		{entities.HygieneKits, 3.0},
	}
	for _, tt := range tests {
		if got := UnitWeightKg(tt.kind); !got.Equal(decimal.NewFromFloat(tt.want)) {
			t.Errorf("UnitWeightKg(%s) = %s, want %v", tt.kind, got, tt.want)
		}
	}
}
