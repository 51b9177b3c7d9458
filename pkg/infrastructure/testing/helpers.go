// Package testing provides shared fixtures for aidcycle tests.
package testing

import (
	"github.com/shopspring/decimal"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// BuildTestZones returns a small fixed settlement snapshot spanning the
// severity spectrum: one acute zone, one moderate, one mild.
func BuildTestZones() []entities.Zone {
	return []entities.Zone{
		{
			ZoneID:                  "Z01",
			ZoneName:                "Sector A",
			Population:              2400,
			ChildrenRatio:           0.45,
			ElderlyRatio:            0.12,
			PregnantWomen:           40,
			ChronicIllnessCases:     90,
			FoodShortage:            0.90,
			WaterShortage:           0.80,
			MedicalSeverity:         0.85,
			ShelterDamage:           0.60,
			SanitationNeed:          0.70,
			DistanceFromDepotKm:     18.5,
			RoadCondition:           entities.RoadPoor,
			Accessibility:           entities.AccessDifficult,
			SecurityLevel:           entities.SecurityCaution,
			LastAidReceivedDays:     25,
			PreviousAidSatisfaction: 0.55,
			Latitude:                32.1,
			Longitude:               42.7,
		},
		{
			ZoneID:                  "Z02",
			ZoneName:                "Sector B",
			Population:              1500,
			ChildrenRatio:           0.38,
			ElderlyRatio:            0.08,
			PregnantWomen:           22,
			ChronicIllnessCases:     45,
			FoodShortage:            0.55,
			WaterShortage:           0.45,
			MedicalSeverity:         0.50,
			ShelterDamage:           0.30,
			SanitationNeed:          0.50,
			DistanceFromDepotKm:     9.0,
			RoadCondition:           entities.RoadFair,
			Accessibility:           entities.AccessModerate,
			SecurityLevel:           entities.SecuritySafe,
			LastAidReceivedDays:     12,
			PreviousAidSatisfaction: 0.75,
			Latitude:                32.8,
			Longitude:               43.2,
		},
		{
			ZoneID:                  "Z03",
			ZoneName:                "Sector C",
			Population:              700,
			ChildrenRatio:           0.32,
			ElderlyRatio:            0.06,
			PregnantWomen:           12,
			ChronicIllnessCases:     25,
			FoodShortage:            0.35,
			WaterShortage:           0.25,
			MedicalSeverity:         0.30,
			ShelterDamage:           0.15,
			SanitationNeed:          0.35,
			DistanceFromDepotKm:     3.5,
			RoadCondition:           entities.RoadGood,
			Accessibility:           entities.AccessEasy,
			SecurityLevel:           entities.SecuritySafe,
			LastAidReceivedDays:     4,
			PreviousAidSatisfaction: 0.90,
			Latitude:                33.4,
			Longitude:               41.9,
		},
	}
}

// BuildTestPool returns a resource pool matching the test zones
func BuildTestPool() *entities.ResourcePool {
	return &entities.ResourcePool{
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
}

// BuildTestAssessments returns ranked assessments for the test zones,
// highest priority first
func BuildTestAssessments() []entities.Assessment {
	return []entities.Assessment{
		{
			ZoneID:        "Z01",
			ZoneName:      "Sector A",
			PriorityScore: decimal.NewFromFloat(85.0),
			CriticalNeeds: []string{"food", "water", "medical"},
		},
		{
			ZoneID:        "Z02",
			ZoneName:      "Sector B",
			PriorityScore: decimal.NewFromFloat(60.5),
			CriticalNeeds: []string{"food"},
		},
		{
			ZoneID:        "Z03",
			ZoneName:      "Sector C",
			PriorityScore: decimal.NewFromFloat(35.0),
			CriticalNeeds: nil,
		},
	}
}

// BuildTestAllocations returns allocations for the top two test zones
func BuildTestAllocations() []entities.Allocation {
	return []entities.Allocation{
		{
			ZoneID:        "Z01",
			ZoneName:      "Sector A",
			PriorityScore: decimal.NewFromFloat(85.0),
			Quantities: map[entities.ResourceKind]entities.Quantity{
				entities.FoodPackages:     4000,
				entities.WaterLiters:      8000,
				entities.MedicalKits:      200,
				entities.ShelterMaterials: 120,
				entities.Blankets:         800,
				entities.HygieneKits:      400,
			},
			Justification: "Highest priority zone",
		},
		{
			ZoneID:        "Z02",
			ZoneName:      "Sector B",
			PriorityScore: decimal.NewFromFloat(60.5),
			Quantities: map[entities.ResourceKind]entities.Quantity{
				entities.FoodPackages:     2000,
				entities.WaterLiters:      4000,
				entities.MedicalKits:      100,
				entities.ShelterMaterials: 60,
				entities.Blankets:         400,
				entities.HygieneKits:      200,
			},
			Justification: "Second priority zone",
		},
	}
}
