package assessment

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// Criteria weights for the deterministic priority score. The five
// sub-scores sum to at most 100.
const (
	vulnerabilityWeight = 25.0
	shortageWeight      = 35.0
	timeWeight          = 20.0
	populationWeight    = 10.0
	conditionsWeight    = 10.0

	// A zone that has waited this long scores full time points
	maxAidGapDays = 30.0

	// Population at which the size sub-score saturates
	maxZonePopulation = 3000.0
)

// Shortage-index thresholds above which a need is flagged critical
const (
	foodNeedThreshold       = 0.70
	waterNeedThreshold      = 0.60
	medicalNeedThreshold    = 0.70
	shelterNeedThreshold    = 0.50
	sanitationNeedThreshold = 0.60
)

// ScoreZone computes a deterministic priority assessment from zone
// attributes alone. It is the fallback when no advisory assessment is
// available, and the primary path when the advisor is disabled.
func ScoreZone(zone entities.Zone) entities.Assessment {
	vulnerability := vulnerabilityWeight * clamp01(
		zone.ChildrenRatio+zone.ElderlyRatio+
			safeFraction(zone.PregnantWomen+zone.ChronicIllnessCases, zone.Population))

	shortage := shortageWeight * clamp01(
		0.4*zone.FoodShortage+0.3*zone.WaterShortage+0.3*zone.MedicalSeverity)

	timeScore := timeWeight * clamp01(float64(zone.LastAidReceivedDays)/maxAidGapDays)

	population := populationWeight * clamp01(float64(zone.Population)/maxZonePopulation)

	conditions := conditionsWeight * clamp01(
		0.5*zone.ShelterDamage+0.5*zone.SanitationNeed)

	vulnerabilityDec := decimal.NewFromFloat(vulnerability).Round(1)
	shortageDec := decimal.NewFromFloat(shortage).Round(1)
	timeDec := decimal.NewFromFloat(timeScore).Round(1)
	populationDec := decimal.NewFromFloat(population).Round(1)
	conditionsDec := decimal.NewFromFloat(conditions).Round(1)

	priority := vulnerabilityDec.Add(shortageDec).Add(timeDec).Add(populationDec).Add(conditionsDec)

	needs := criticalNeeds(zone)

	return entities.Assessment{
		ZoneID:             zone.ZoneID,
		ZoneName:           zone.ZoneName,
		PriorityScore:      priority,
		VulnerabilityScore: vulnerabilityDec,
		ShortageScore:      shortageDec,
		TimeScore:          timeDec,
		PopulationScore:    populationDec,
		ConditionsScore:    conditionsDec,
		CriticalNeeds:      needs,
		Reasoning: fmt.Sprintf(
			"Rule-based assessment: %d critical needs, %d days since last aid, population %d",
			len(needs), zone.LastAidReceivedDays, zone.Population),
	}
}

// criticalNeeds derives the named needs whose shortage indices cross their
// critical thresholds, in a fixed label order
func criticalNeeds(zone entities.Zone) []string {
	var needs []string
	if zone.FoodShortage >= foodNeedThreshold {
		needs = append(needs, "food")
	}
	if zone.WaterShortage >= waterNeedThreshold {
		needs = append(needs, "water")
	}
	if zone.MedicalSeverity >= medicalNeedThreshold {
		needs = append(needs, "medical")
	}
	if zone.ShelterDamage >= shelterNeedThreshold {
		needs = append(needs, "shelter")
	}
	if zone.SanitationNeed >= sanitationNeedThreshold {
		needs = append(needs, "sanitation")
	}
	return needs
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func safeFraction(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}
