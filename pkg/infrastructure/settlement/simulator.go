package settlement

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
	"github.com/reliefops/aidcycle/pkg/domain/repositories"
)

// Simulator generates settlement zone snapshots and resource pools with
// realistic attribute ranges. All draws come from a single seeded source,
// so a given seed always produces the same settlement.
type Simulator struct {
	numZones int
	rng      *rand.Rand
	zones    []entities.Zone
}

// NewSimulator creates a simulator for numZones zones using the given seed
func NewSimulator(numZones int, seed int64) *Simulator {
	s := &Simulator{
		numZones: numZones,
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.zones = s.generateZones()
	return s
}

// Verify interface compliance
var _ repositories.ZoneSource = (*Simulator)(nil)

// Zones returns the current settlement zone records
func (s *Simulator) Zones() ([]entities.Zone, error) {
	out := make([]entities.Zone, len(s.zones))
	copy(out, s.zones)
	return out, nil
}

// GetZoneByID returns a specific zone by ID
func (s *Simulator) GetZoneByID(id entities.ZoneID) (entities.Zone, error) {
	if z, ok := entities.FindZone(s.zones, id); ok {
		return z, nil
	}
	return entities.Zone{}, fmt.Errorf("zone not found: %s", id)
}

// AvailableResources simulates the resource pool at the distribution center.
// The scenario multiplier scales every distributable quantity and the budget;
// vehicle and personnel counts are independent of scenario.
func (s *Simulator) AvailableResources(scenario entities.Scenario) (*entities.ResourcePool, error) {
	mult := scenario.Multiplier()
	return &entities.ResourcePool{
		Quantities: map[entities.ResourceKind]entities.Quantity{
			entities.FoodPackages:     s.scaledQty(5000, 15000, mult),
			entities.WaterLiters:      s.scaledQty(10000, 30000, mult),
			entities.MedicalKits:      s.scaledQty(200, 800, mult),
			entities.ShelterMaterials: s.scaledQty(100, 500, mult),
			entities.Blankets:         s.scaledQty(1000, 3000, mult),
			entities.HygieneKits:      s.scaledQty(500, 1500, mult),
		},
		VehiclesAvailable:  s.intBetween(5, 12),
		PersonnelAvailable: s.intBetween(20, 50),
		BudgetUSD:          int64(s.scaledQty(50000, 150000, mult)),
	}, nil
}

// UpdateZoneAfterDelivery adjusts a zone's state after aid arrives: food and
// water shortages halve, medical severity drops to 60%, and the days-since-aid
// counter resets. Only meaningful when zone state is carried across cycles.
func (s *Simulator) UpdateZoneAfterDelivery(id entities.ZoneID, delivered map[entities.ResourceKind]entities.Quantity) error {
	for i := range s.zones {
		if s.zones[i].ZoneID != id {
			continue
		}
		if delivered[entities.FoodPackages] > 0 {
			s.zones[i].FoodShortage = round2(s.zones[i].FoodShortage * 0.5)
		}
		if delivered[entities.WaterLiters] > 0 {
			s.zones[i].WaterShortage = round2(s.zones[i].WaterShortage * 0.5)
		}
		if delivered[entities.MedicalKits] > 0 {
			s.zones[i].MedicalSeverity = round2(s.zones[i].MedicalSeverity * 0.6)
		}
		s.zones[i].LastAidReceivedDays = 0
		return nil
	}
	return fmt.Errorf("zone not found: %s", id)
}

func (s *Simulator) generateZones() []entities.Zone {
	zones := make([]entities.Zone, 0, s.numZones)
	for i := 0; i < s.numZones; i++ {
		zones = append(zones, entities.Zone{
			ZoneID:   entities.ZoneID(fmt.Sprintf("Z%02d", i+1)),
			ZoneName: fmt.Sprintf("Sector %c", rune('A'+i%26)),

			Population:          s.intBetween(500, 3000),
			ChildrenRatio:       s.ratioBetween(0.30, 0.50),
			ElderlyRatio:        s.ratioBetween(0.05, 0.15),
			PregnantWomen:       s.intBetween(10, 50),
			ChronicIllnessCases: s.intBetween(20, 100),

			FoodShortage:    s.ratioBetween(0.30, 0.95),
			WaterShortage:   s.ratioBetween(0.20, 0.85),
			MedicalSeverity: s.ratioBetween(0.20, 0.90),
			ShelterDamage:   s.ratioBetween(0.10, 0.70),
			SanitationNeed:  s.ratioBetween(0.30, 0.80),

			DistanceFromDepotKm: math.Round((1.0+s.rng.Float64()*19.0)*10) / 10,
			RoadCondition: choose(s.rng, []entities.RoadCondition{
				entities.RoadGood, entities.RoadFair, entities.RoadPoor,
			}, []float64{0.3, 0.4, 0.3}),
			Accessibility: choose(s.rng, []entities.Accessibility{
				entities.AccessEasy, entities.AccessModerate, entities.AccessDifficult,
			}, []float64{0.4, 0.4, 0.2}),
			SecurityLevel: choose(s.rng, []entities.SecurityLevel{
				entities.SecuritySafe, entities.SecurityCaution, entities.SecurityRisk,
			}, []float64{0.6, 0.3, 0.1}),

			LastAidReceivedDays:     s.intBetween(1, 30),
			PreviousAidSatisfaction: s.ratioBetween(0.50, 0.95),

			Latitude:  math.Round((30.0+s.rng.Float64()*5.0)*10000) / 10000,
			Longitude: math.Round((40.0+s.rng.Float64()*5.0)*10000) / 10000,
		})
	}
	return zones
}

// intBetween draws an integer in [lo, hi)
func (s *Simulator) intBetween(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo)
}

// ratioBetween draws a fraction in [lo, hi) rounded to two decimals
func (s *Simulator) ratioBetween(lo, hi float64) float64 {
	return round2(lo + s.rng.Float64()*(hi-lo))
}

func (s *Simulator) scaledQty(lo, hi int, mult float64) entities.Quantity {
	return entities.Quantity(float64(s.intBetween(lo, hi)) * mult)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// choose draws one value from values with the given probabilities.
// Probabilities must sum to 1; the last value absorbs rounding remainder.
func choose[T any](rng *rand.Rand, values []T, probs []float64) T {
	r := rng.Float64()
	cum := 0.0
	for i, p := range probs {
		cum += p
		if r < cum {
			return values[i]
		}
	}
	return values[len(values)-1]
}
