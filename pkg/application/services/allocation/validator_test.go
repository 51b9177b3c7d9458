package allocation

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func poolWith(food, water entities.Quantity) *entities.ResourcePool {
	return &entities.ResourcePool{
		Quantities: map[entities.ResourceKind]entities.Quantity{
			entities.FoodPackages: food,
			entities.WaterLiters:  water,
		},
	}
}

func TestValidateRescalesOverallocation(t *testing.T) {
	v := NewValidator(testLogger())

	// Two zones each proposed 700 against a pool of 1000: the exact scale
	// is 1000/1400, so each zone lands on exactly 500.
	proposals := []entities.Allocation{
		{ZoneID: "Z01", Quantities: map[entities.ResourceKind]entities.Quantity{entities.FoodPackages: 700}},
		{ZoneID: "Z02", Quantities: map[entities.ResourceKind]entities.Quantity{entities.FoodPackages: 700}},
	}

	validated := v.Validate(proposals, poolWith(1000, 0))

	if got := validated[0].Quantities[entities.FoodPackages]; got != 500 {
		t.Errorf("Z01 food = %d, want 500", got)
	}
	if got := validated[1].Quantities[entities.FoodPackages]; got != 500 {
		t.Errorf("Z02 food = %d, want 500", got)
	}
	if total := entities.TotalAllocated(validated, entities.FoodPackages); total > 1000 {
		t.Errorf("total %d exceeds pool 1000", total)
	}
}

func TestValidateLeavesValidAllocationUntouched(t *testing.T) {
	v := NewValidator(testLogger())
	proposals := []entities.Allocation{
		{ZoneID: "Z01", Quantities: map[entities.ResourceKind]entities.Quantity{entities.FoodPackages: 400}},
		{ZoneID: "Z02", Quantities: map[entities.ResourceKind]entities.Quantity{entities.FoodPackages: 300}},
	}

	validated := v.Validate(proposals, poolWith(1000, 0))

	if validated[0].Quantities[entities.FoodPackages] != 400 ||
		validated[1].Quantities[entities.FoodPackages] != 300 {
		t.Error("valid allocation was modified")
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	v := NewValidator(testLogger())
	proposals := []entities.Allocation{
		{ZoneID: "Z01", Quantities: map[entities.ResourceKind]entities.Quantity{entities.FoodPackages: 900}},
		{ZoneID: "Z02", Quantities: map[entities.ResourceKind]entities.Quantity{entities.FoodPackages: 600}},
	}

	once := v.Validate(proposals, poolWith(1000, 0))
	twice := v.Validate(once, poolWith(1000, 0))

	for i := range once {
		if once[i].Quantities[entities.FoodPackages] != twice[i].Quantities[entities.FoodPackages] {
			t.Errorf("zone %s changed on re-validation: %d vs %d",
				once[i].ZoneID,
				once[i].Quantities[entities.FoodPackages],
				twice[i].Quantities[entities.FoodPackages])
		}
	}
}

func TestValidateScalesKindsIndependently(t *testing.T) {
	v := NewValidator(testLogger())

	// Food is over pool, water is not: only food gets rescaled.
	proposals := []entities.Allocation{
		{ZoneID: "Z01", Quantities: map[entities.ResourceKind]entities.Quantity{
			entities.FoodPackages: 1500,
			entities.WaterLiters:  400,
		}},
	}

	validated := v.Validate(proposals, poolWith(1000, 1000))

	if got := validated[0].Quantities[entities.FoodPackages]; got != 1000 {
		t.Errorf("food = %d, want 1000", got)
	}
	if got := validated[0].Quantities[entities.WaterLiters]; got != 400 {
		t.Errorf("water = %d, want unchanged 400", got)
	}
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	v := NewValidator(testLogger())
	proposals := []entities.Allocation{
		{ZoneID: "Z01", Quantities: map[entities.ResourceKind]entities.Quantity{entities.FoodPackages: 1500}},
	}

	v.Validate(proposals, poolWith(1000, 0))

	if proposals[0].Quantities[entities.FoodPackages] != 1500 {
		t.Error("input proposal was mutated")
	}
}
