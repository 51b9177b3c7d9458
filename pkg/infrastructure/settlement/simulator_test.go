package settlement

import (
	"testing"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

func TestSimulatorDeterministicForSeed(t *testing.T) {
	first, err := NewSimulator(10, 42).Zones()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewSimulator(10, 42).Zones()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != 10 {
		t.Fatalf("got %d zones, want 10", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("zone %d differs across same-seed simulators", i)
		}
	}
}

func TestSimulatorZoneAttributeRanges(t *testing.T) {
	zones, err := NewSimulator(50, 7).Zones()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ratios := []struct {
		name   string
		get    func(entities.Zone) float64
		lo, hi float64
	}{
		{"children_ratio", func(z entities.Zone) float64 { return z.ChildrenRatio }, 0.30, 0.50},
		{"elderly_ratio", func(z entities.Zone) float64 { return z.ElderlyRatio }, 0.05, 0.15},
		{"food_shortage", func(z entities.Zone) float64 { return z.FoodShortage }, 0.30, 0.95},
		{"water_shortage", func(z entities.Zone) float64 { return z.WaterShortage }, 0.20, 0.85},
		{"medical_severity", func(z entities.Zone) float64 { return z.MedicalSeverity }, 0.20, 0.90},
		{"shelter_damage", func(z entities.Zone) float64 { return z.ShelterDamage }, 0.10, 0.70},
		{"sanitation_need", func(z entities.Zone) float64 { return z.SanitationNeed }, 0.30, 0.80},
	}

	for _, z := range zones {
		if z.Population < 500 || z.Population >= 3000 {
			t.Errorf("zone %s population %d outside [500, 3000)", z.ZoneID, z.Population)
		}
		if z.DistanceFromDepotKm < 1.0 || z.DistanceFromDepotKm > 20.0 {
			t.Errorf("zone %s distance %.1f outside [1, 20]", z.ZoneID, z.DistanceFromDepotKm)
		}
		for _, r := range ratios {
			if v := r.get(z); v < r.lo || v > r.hi {
				t.Errorf("zone %s %s = %.2f outside [%.2f, %.2f]", z.ZoneID, r.name, v, r.lo, r.hi)
			}
		}
	}
}

func TestSimulatorZoneIDsSequential(t *testing.T) {
	zones, _ := NewSimulator(3, 1).Zones()
	want := []entities.ZoneID{"Z01", "Z02", "Z03"}
	for i, z := range zones {
		if z.ZoneID != want[i] {
			t.Errorf("zone %d id = %s, want %s", i, z.ZoneID, want[i])
		}
	}
}

func TestAvailableResourcesScenarioScaling(t *testing.T) {
	// Same seed so both simulators draw identical base quantities
	abundant, err := NewSimulator(5, 11).AvailableResources(entities.ScenarioAbundant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	normal, err := NewSimulator(5, 11).AvailableResources(entities.ScenarioNormal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for kind, base := range normal.Quantities {
		want := entities.Quantity(float64(base) * 1.5)
		if abundant.Quantities[kind] != want {
			t.Errorf("%s: abundant %d, want 1.5x normal = %d", kind, abundant.Quantities[kind], want)
		}
	}
	if abundant.VehiclesAvailable != normal.VehiclesAvailable {
		t.Error("vehicle count must not depend on scenario")
	}
}

func TestAvailableResourcesRanges(t *testing.T) {
	pool, err := NewSimulator(5, 3).AvailableResources(entities.ScenarioNormal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q := pool.Quantities[entities.FoodPackages]; q < 5000 || q >= 15000 {
		t.Errorf("food packages %d outside [5000, 15000)", q)
	}
	if pool.VehiclesAvailable < 5 || pool.VehiclesAvailable >= 12 {
		t.Errorf("vehicles %d outside [5, 12)", pool.VehiclesAvailable)
	}
	if pool.PersonnelAvailable < 20 || pool.PersonnelAvailable >= 50 {
		t.Errorf("personnel %d outside [20, 50)", pool.PersonnelAvailable)
	}
}

func TestUpdateZoneAfterDelivery(t *testing.T) {
	sim := NewSimulator(3, 42)
	zones, _ := sim.Zones()
	before := zones[0]

	err := sim.UpdateZoneAfterDelivery(before.ZoneID, map[entities.ResourceKind]entities.Quantity{
		entities.FoodPackages: 100,
		entities.WaterLiters:  200,
		entities.MedicalKits:  10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, err := sim.GetZoneByID(before.ZoneID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if after.FoodShortage >= before.FoodShortage {
		t.Errorf("food shortage %0.2f not reduced from %0.2f", after.FoodShortage, before.FoodShortage)
	}
	if after.WaterShortage >= before.WaterShortage {
		t.Errorf("water shortage %0.2f not reduced from %0.2f", after.WaterShortage, before.WaterShortage)
	}
	if after.MedicalSeverity >= before.MedicalSeverity {
		t.Errorf("medical severity %0.2f not reduced from %0.2f", after.MedicalSeverity, before.MedicalSeverity)
	}
	if after.LastAidReceivedDays != 0 {
		t.Errorf("days since aid = %d, want 0", after.LastAidReceivedDays)
	}
}

func TestUpdateZoneAfterDeliveryPartialKinds(t *testing.T) {
	sim := NewSimulator(3, 42)
	zones, _ := sim.Zones()
	before := zones[1]

	// Only food delivered; water and medical state must not change
	if err := sim.UpdateZoneAfterDelivery(before.ZoneID, map[entities.ResourceKind]entities.Quantity{
		entities.FoodPackages: 50,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, _ := sim.GetZoneByID(before.ZoneID)
	if after.WaterShortage != before.WaterShortage {
		t.Error("water shortage changed without a water delivery")
	}
	if after.MedicalSeverity != before.MedicalSeverity {
		t.Error("medical severity changed without a medical delivery")
	}
}

func TestUpdateZoneAfterDeliveryUnknownZone(t *testing.T) {
	sim := NewSimulator(3, 1)
	if err := sim.UpdateZoneAfterDelivery("Z99", nil); err == nil {
		t.Error("expected error for unknown zone")
	}
}
