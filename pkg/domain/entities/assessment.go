package entities

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Assessment represents a zone's priority assessment for one cycle.
// PriorityScore is in [0,100]; the sub-scores decompose it per the
// assessment criteria weights (vulnerability 25, shortage 35, time 20,
// population 10, living conditions 10).
type Assessment struct {
	ZoneID   ZoneID
	ZoneName string

	PriorityScore      decimal.Decimal
	VulnerabilityScore decimal.Decimal
	ShortageScore      decimal.Decimal
	TimeScore          decimal.Decimal
	PopulationScore    decimal.Decimal
	ConditionsScore    decimal.Decimal

	CriticalNeeds []string
	Reasoning     string
}

// SortByPriority orders assessments by priority score descending.
// The sort is stable: ties keep their original input order, so repeated
// runs over the same scored inputs always yield the same ranking.
func SortByPriority(assessments []Assessment) {
	sort.SliceStable(assessments, func(i, j int) bool {
		return assessments[i].PriorityScore.GreaterThan(assessments[j].PriorityScore)
	})
}

// ZoneRank is a compact reference to a ranked zone
type ZoneRank struct {
	ZoneID        ZoneID
	ZoneName      string
	PriorityScore decimal.Decimal
}

// NeedsReport summarizes an assessment pass across all zones
type NeedsReport struct {
	TotalZonesAssessed   int
	CriticalZones        int // score >= 75
	HighPriorityZones    int // score in [60, 75)
	AveragePriorityScore decimal.Decimal
	MostCommonNeeds      map[string]int
	TopPriorityZones     []ZoneRank
}
