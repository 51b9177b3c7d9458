package entities

import (
	"github.com/shopspring/decimal"
)

// Challenge tags the single disruption (if any) encountered while serving a zone
type Challenge string

const (
	ChallengeNone             Challenge = "none"
	ChallengeWeatherDelay     Challenge = "weather_delay"
	ChallengeRoadConditions   Challenge = "road_conditions"
	ChallengeSecurityConcern  Challenge = "security_concern"
	ChallengeVehicleBreakdown Challenge = "vehicle_breakdown"
)

// DeliveryStatus classifies how completely a zone's allocation was delivered
type DeliveryStatus string

const (
	DeliveryComplete   DeliveryStatus = "complete"
	DeliveryPartial    DeliveryStatus = "partial"
	DeliveryIncomplete DeliveryStatus = "incomplete"
)

// StatusForDelivered maps a delivered percentage to its delivery status:
// >= 95 complete, [75,95) partial, < 75 incomplete
func StatusForDelivered(pct decimal.Decimal) DeliveryStatus {
	switch {
	case pct.GreaterThanOrEqual(decimal.NewFromInt(95)):
		return DeliveryComplete
	case pct.GreaterThanOrEqual(decimal.NewFromInt(75)):
		return DeliveryPartial
	default:
		return DeliveryIncomplete
	}
}

// Outcome is the delivery result for one zone
type Outcome struct {
	ZoneID              ZoneID
	ZoneName            string
	PlannedDelivery     map[ResourceKind]Quantity
	DeliveredPercentage decimal.Decimal // in [0,100], one decimal place
	Challenge           Challenge
	Status              DeliveryStatus
}

// CriticalGap describes a zone whose delivery shortfall needs urgent follow-up
type CriticalGap struct {
	ZoneID            ZoneID
	GapDescription    string
	Urgency           string
	RecommendedAction string
}

// ChallengeReport aggregates one challenge type across affected zones
type ChallengeReport struct {
	ChallengeType Challenge
	ZonesAffected int
	Impact        string
	Mitigation    string
}

// ReallocationRequest flags zones needing resources carried into the next cycle
type ReallocationRequest struct {
	Zones           []ZoneID
	ResourcesNeeded map[ResourceKind]Quantity
	Reason          string
}

// OutcomeAnalysis is the per-cycle evaluation of delivery outcomes
type OutcomeAnalysis struct {
	OverallSuccessRate       decimal.Decimal
	ZonesFullyServed         []ZoneID
	ZonesPartiallyServed     []ZoneID
	ZonesRequiringFollowup   []ZoneID
	CriticalGaps             []CriticalGap
	ChallengesIdentified     []ChallengeReport
	PerformanceInsights      string
	RecommendationsNextCycle []string
	PriorityAdjustments      string
	ResourceReallocation     ReallocationRequest
}

// Lessons summarizes what a cycle's analysis teaches for future cycles
type Lessons struct {
	Successes           []string
	Challenges          []string
	BestPractices       []string
	AreasForImprovement []string
}
