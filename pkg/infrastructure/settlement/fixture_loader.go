package settlement

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
	"github.com/reliefops/aidcycle/pkg/domain/repositories"
)

// FixtureSource serves zones and resources pinned in a YAML fixture file,
// for reproducible runs and tests. The pool in the fixture is served for
// every scenario after applying the scenario multiplier.
type FixtureSource struct {
	zones []entities.Zone
	pool  poolFixture
}

// Verify interface compliance
var _ repositories.ZoneSource = (*FixtureSource)(nil)

type zoneFixture struct {
	ZoneID              string  `yaml:"zone_id"`
	ZoneName            string  `yaml:"zone_name"`
	Population          int     `yaml:"population"`
	ChildrenRatio       float64 `yaml:"children_ratio"`
	ElderlyRatio        float64 `yaml:"elderly_ratio"`
	PregnantWomen       int     `yaml:"pregnant_women"`
	ChronicIllnessCases int     `yaml:"chronic_illness_cases"`
	FoodShortage        float64 `yaml:"food_shortage"`
	WaterShortage       float64 `yaml:"water_shortage"`
	MedicalSeverity     float64 `yaml:"medical_severity"`
	ShelterDamage       float64 `yaml:"shelter_damage"`
	SanitationNeed      float64 `yaml:"sanitation_need"`
	DistanceFromDepot   float64 `yaml:"distance_from_depot"`
	RoadCondition       string  `yaml:"road_condition"`
	Accessibility       string  `yaml:"accessibility"`
	SecurityLevel       string  `yaml:"security_level"`
	LastAidReceivedDays int     `yaml:"last_aid_received_days"`
	PreviousSatisfaction float64 `yaml:"previous_aid_satisfaction"`
	Latitude            float64 `yaml:"latitude"`
	Longitude           float64 `yaml:"longitude"`
}

type poolFixture struct {
	FoodPackages       int64 `yaml:"food_packages"`
	WaterLiters        int64 `yaml:"water_liters"`
	MedicalKits        int64 `yaml:"medical_kits"`
	ShelterMaterials   int64 `yaml:"shelter_materials"`
	Blankets           int64 `yaml:"blankets"`
	HygieneKits        int64 `yaml:"hygiene_kits"`
	VehiclesAvailable  int   `yaml:"vehicles_available"`
	PersonnelAvailable int   `yaml:"personnel_available"`
	BudgetUSD          int64 `yaml:"budget_usd"`
}

type fixtureFile struct {
	Zones     []zoneFixture `yaml:"zones"`
	Resources poolFixture   `yaml:"resources"`
}

// LoadFixture reads a settlement fixture from a YAML file
func LoadFixture(path string) (*FixtureSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file %s: %w", path, err)
	}
	if len(file.Zones) == 0 {
		return nil, fmt.Errorf("fixture file %s contains no zones", path)
	}

	zones := make([]entities.Zone, 0, len(file.Zones))
	for i, zf := range file.Zones {
		zone, err := zf.toEntity()
		if err != nil {
			return nil, fmt.Errorf("invalid zone at index %d: %w", i, err)
		}
		zones = append(zones, zone)
	}

	return &FixtureSource{zones: zones, pool: file.Resources}, nil
}

// Zones returns the fixture's settlement zone records
func (f *FixtureSource) Zones() ([]entities.Zone, error) {
	out := make([]entities.Zone, len(f.zones))
	copy(out, f.zones)
	return out, nil
}

// AvailableResources returns the fixture pool scaled by the scenario multiplier
func (f *FixtureSource) AvailableResources(scenario entities.Scenario) (*entities.ResourcePool, error) {
	mult := scenario.Multiplier()
	scale := func(base int64) entities.Quantity {
		return entities.Quantity(float64(base) * mult)
	}
	return &entities.ResourcePool{
		Quantities: map[entities.ResourceKind]entities.Quantity{
			entities.FoodPackages:     scale(f.pool.FoodPackages),
			entities.WaterLiters:      scale(f.pool.WaterLiters),
			entities.MedicalKits:      scale(f.pool.MedicalKits),
			entities.ShelterMaterials: scale(f.pool.ShelterMaterials),
			entities.Blankets:         scale(f.pool.Blankets),
			entities.HygieneKits:      scale(f.pool.HygieneKits),
		},
		VehiclesAvailable:  f.pool.VehiclesAvailable,
		PersonnelAvailable: f.pool.PersonnelAvailable,
		BudgetUSD:          int64(float64(f.pool.BudgetUSD) * mult),
	}, nil
}

func (zf zoneFixture) toEntity() (entities.Zone, error) {
	if zf.ZoneID == "" {
		return entities.Zone{}, fmt.Errorf("zone_id cannot be empty")
	}
	if zf.Population <= 0 {
		return entities.Zone{}, fmt.Errorf("population must be positive, got %d", zf.Population)
	}

	road := entities.RoadCondition(zf.RoadCondition)
	switch road {
	case entities.RoadGood, entities.RoadFair, entities.RoadPoor:
	default:
		return entities.Zone{}, fmt.Errorf("unknown road_condition %q", zf.RoadCondition)
	}

	access := entities.Accessibility(zf.Accessibility)
	switch access {
	case entities.AccessEasy, entities.AccessModerate, entities.AccessDifficult:
	default:
		return entities.Zone{}, fmt.Errorf("unknown accessibility %q", zf.Accessibility)
	}

	security := entities.SecurityLevel(zf.SecurityLevel)
	switch security {
	case entities.SecuritySafe, entities.SecurityCaution, entities.SecurityRisk:
	default:
		return entities.Zone{}, fmt.Errorf("unknown security_level %q", zf.SecurityLevel)
	}

	return entities.Zone{
		ZoneID:                  entities.ZoneID(zf.ZoneID),
		ZoneName:                zf.ZoneName,
		Population:              zf.Population,
		ChildrenRatio:           zf.ChildrenRatio,
		ElderlyRatio:            zf.ElderlyRatio,
		PregnantWomen:           zf.PregnantWomen,
		ChronicIllnessCases:     zf.ChronicIllnessCases,
		FoodShortage:            zf.FoodShortage,
		WaterShortage:           zf.WaterShortage,
		MedicalSeverity:         zf.MedicalSeverity,
		ShelterDamage:           zf.ShelterDamage,
		SanitationNeed:          zf.SanitationNeed,
		DistanceFromDepotKm:     zf.DistanceFromDepot,
		RoadCondition:           road,
		Accessibility:           access,
		SecurityLevel:           security,
		LastAidReceivedDays:     zf.LastAidReceivedDays,
		PreviousAidSatisfaction: zf.PreviousSatisfaction,
		Latitude:                zf.Latitude,
		Longitude:               zf.Longitude,
	}, nil
}
