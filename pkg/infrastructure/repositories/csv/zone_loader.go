// Package csv loads settlement zone snapshots from CSV files.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
	"github.com/reliefops/aidcycle/pkg/domain/repositories"
)

var zoneHeader = []string{
	"zone_id", "zone_name", "population", "children_ratio", "elderly_ratio",
	"pregnant_women", "chronic_illness_cases",
	"food_shortage", "water_shortage", "medical_severity", "shelter_damage", "sanitation_need",
	"distance_from_depot", "road_condition", "accessibility", "security_level",
	"last_aid_received_days", "previous_aid_satisfaction",
	"latitude", "longitude",
}

// Base pool quantities for CSV-backed runs, scaled by the scenario
// multiplier. CSV snapshots carry zones only; the pool uses the midpoints
// of the simulated ranges.
var basePool = entities.ResourcePool{
	Quantities: map[entities.ResourceKind]entities.Quantity{
		entities.FoodPackages:     10000,
		entities.WaterLiters:      20000,
		entities.MedicalKits:      500,
		entities.ShelterMaterials: 300,
		entities.Blankets:         2000,
		entities.HygieneKits:      1000,
	},
	VehiclesAvailable:  8,
	PersonnelAvailable: 35,
	BudgetUSD:          100000,
}

// ZoneSource is a static zone source backed by a CSV snapshot
type ZoneSource struct {
	zones []entities.Zone
}

var _ repositories.ZoneSource = (*ZoneSource)(nil)

// LoadZones reads a zone snapshot from a CSV file
func LoadZones(filename string) (*ZoneSource, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open zones file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read zones CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("zones CSV must have header and at least one data row")
	}

	if !validateHeader(records[0], zoneHeader) {
		return nil, fmt.Errorf("zones CSV header mismatch. Expected: %v, Got: %v", zoneHeader, records[0])
	}

	var zones []entities.Zone
	for i, record := range records[1:] {
		if len(record) != len(zoneHeader) {
			return nil, fmt.Errorf("zones CSV row %d: expected %d columns, got %d", i+2, len(zoneHeader), len(record))
		}

		zone, err := parseZone(record)
		if err != nil {
			return nil, fmt.Errorf("zones CSV row %d: %w", i+2, err)
		}

		zones = append(zones, zone)
	}

	return &ZoneSource{zones: zones}, nil
}

// Zones returns the loaded zone snapshot
func (s *ZoneSource) Zones() ([]entities.Zone, error) {
	out := make([]entities.Zone, len(s.zones))
	copy(out, s.zones)
	return out, nil
}

// AvailableResources returns the base pool scaled by the scenario
func (s *ZoneSource) AvailableResources(scenario entities.Scenario) (*entities.ResourcePool, error) {
	mult := scenario.Multiplier()
	pool := &entities.ResourcePool{
		Quantities:         make(map[entities.ResourceKind]entities.Quantity, len(basePool.Quantities)),
		VehiclesAvailable:  basePool.VehiclesAvailable,
		PersonnelAvailable: basePool.PersonnelAvailable,
		BudgetUSD:          int64(float64(basePool.BudgetUSD) * mult),
	}
	for kind, qty := range basePool.Quantities {
		pool.Quantities[kind] = entities.Quantity(float64(qty) * mult)
	}
	return pool, nil
}

func parseZone(record []string) (entities.Zone, error) {
	population, err := strconv.Atoi(record[2])
	if err != nil {
		return entities.Zone{}, fmt.Errorf("invalid population %q: %w", record[2], err)
	}
	if population <= 0 {
		return entities.Zone{}, fmt.Errorf("population must be positive, got %d", population)
	}

	floats := make(map[string]float64)
	for _, col := range []struct {
		name string
		idx  int
	}{
		{"children_ratio", 3}, {"elderly_ratio", 4},
		{"food_shortage", 7}, {"water_shortage", 8}, {"medical_severity", 9},
		{"shelter_damage", 10}, {"sanitation_need", 11},
		{"distance_from_depot", 12}, {"previous_aid_satisfaction", 17},
		{"latitude", 18}, {"longitude", 19},
	} {
		v, err := strconv.ParseFloat(record[col.idx], 64)
		if err != nil {
			return entities.Zone{}, fmt.Errorf("invalid %s %q: %w", col.name, record[col.idx], err)
		}
		floats[col.name] = v
	}

	ints := make(map[string]int)
	for _, col := range []struct {
		name string
		idx  int
	}{
		{"pregnant_women", 5}, {"chronic_illness_cases", 6}, {"last_aid_received_days", 16},
	} {
		v, err := strconv.Atoi(record[col.idx])
		if err != nil {
			return entities.Zone{}, fmt.Errorf("invalid %s %q: %w", col.name, record[col.idx], err)
		}
		ints[col.name] = v
	}

	road := entities.RoadCondition(record[13])
	switch road {
	case entities.RoadGood, entities.RoadFair, entities.RoadPoor:
	default:
		return entities.Zone{}, fmt.Errorf("unknown road condition %q", record[13])
	}
	access := entities.Accessibility(record[14])
	switch access {
	case entities.AccessEasy, entities.AccessModerate, entities.AccessDifficult:
	default:
		return entities.Zone{}, fmt.Errorf("unknown accessibility %q", record[14])
	}
	security := entities.SecurityLevel(record[15])
	switch security {
	case entities.SecuritySafe, entities.SecurityCaution, entities.SecurityRisk:
	default:
		return entities.Zone{}, fmt.Errorf("unknown security level %q", record[15])
	}

	return entities.Zone{
		ZoneID:                  entities.ZoneID(record[0]),
		ZoneName:                record[1],
		Population:              population,
		ChildrenRatio:           floats["children_ratio"],
		ElderlyRatio:            floats["elderly_ratio"],
		PregnantWomen:           ints["pregnant_women"],
		ChronicIllnessCases:     ints["chronic_illness_cases"],
		FoodShortage:            floats["food_shortage"],
		WaterShortage:           floats["water_shortage"],
		MedicalSeverity:         floats["medical_severity"],
		ShelterDamage:           floats["shelter_damage"],
		SanitationNeed:          floats["sanitation_need"],
		DistanceFromDepotKm:     floats["distance_from_depot"],
		RoadCondition:           road,
		Accessibility:           access,
		SecurityLevel:           security,
		LastAidReceivedDays:     ints["last_aid_received_days"],
		PreviousAidSatisfaction: floats["previous_aid_satisfaction"],
		Latitude:                floats["latitude"],
		Longitude:               floats["longitude"],
	}, nil
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range expected {
		if header[i] != col {
			return false
		}
	}
	return true
}
