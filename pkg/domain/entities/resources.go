package entities

// ResourceKind names a distributable resource category
type ResourceKind string

const (
	FoodPackages     ResourceKind = "food_packages"
	WaterLiters      ResourceKind = "water_liters"
	MedicalKits      ResourceKind = "medical_kits"
	ShelterMaterials ResourceKind = "shelter_materials"
	Blankets         ResourceKind = "blankets"
	HygieneKits      ResourceKind = "hygiene_kits"
)

// Quantity represents an integer quantity of discrete resource units
type Quantity int64

// DistributableKinds returns the distributable resource kinds in stable order.
// Operational capacities (vehicles, personnel, budget) are tracked separately
// on the pool and are never allocated per zone.
func DistributableKinds() []ResourceKind {
	return []ResourceKind{
		FoodPackages,
		WaterLiters,
		MedicalKits,
		ShelterMaterials,
		Blankets,
		HygieneKits,
	}
}

// Scenario selects the resource availability level at the distribution center
type Scenario string

const (
	ScenarioAbundant Scenario = "abundant"
	ScenarioNormal   Scenario = "normal"
	ScenarioScarce   Scenario = "scarce"
)

// Multiplier returns the scaling factor this scenario applies to base quantities
func (s Scenario) Multiplier() float64 {
	switch s {
	case ScenarioAbundant:
		return 1.5
	case ScenarioScarce:
		return 0.6
	default:
		return 1.0
	}
}

// ResourcePool is a read-only snapshot of resources available for one cycle
type ResourcePool struct {
	Quantities         map[ResourceKind]Quantity
	VehiclesAvailable  int
	PersonnelAvailable int
	BudgetUSD          int64
}

// Quantity returns the available quantity for a kind, zero if absent
func (p *ResourcePool) Quantity(kind ResourceKind) Quantity {
	return p.Quantities[kind]
}
