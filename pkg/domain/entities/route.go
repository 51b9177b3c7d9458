package entities

import (
	"github.com/shopspring/decimal"
)

// Route represents an ordered visitation sequence of zones for one vehicle
type Route struct {
	RouteID             int
	VehicleNumber       int
	ZoneSequence        []ZoneID
	ZoneNames           []string
	TotalDistanceKm     decimal.Decimal
	EstimatedTimeHours  decimal.Decimal
	RoadConditions      string
	SpecialRequirements string
	DeliveryNotes       string
}

// DeliveryPlan groups all routes for one cycle
type DeliveryPlan struct {
	Routes                 []Route
	TotalVehiclesNeeded    int
	TotalDeliveryTimeHours decimal.Decimal
	EstimatedCompletion    string
	LogisticsSummary       string
	PotentialChallenges    []string
}

// WeightStatus reports whether a route load fits a vehicle's nominal payload
type WeightStatus string

const (
	WeightOK         WeightStatus = "OK"
	WeightOverweight WeightStatus = "OVERWEIGHT"
)

// LoadItem is the quantity and weight of one resource kind loaded for a zone
type LoadItem struct {
	Quantity Quantity
	WeightKg decimal.Decimal
}

// ZoneLoad is the full load destined for a single zone on a route
type ZoneLoad struct {
	ZoneID        ZoneID
	ZoneName      string
	Items         map[ResourceKind]LoadItem
	TotalWeightKg decimal.Decimal
}

// LoadingPlan is the weight breakdown for one route against vehicle capacity.
// The weight status is advisory: an OVERWEIGHT route is reported, not re-split.
type LoadingPlan struct {
	RouteID             int
	LoadingSequence     []ZoneLoad
	TotalWeightKg       decimal.Decimal
	CapacityUsedPercent decimal.Decimal
	WeightStatus        WeightStatus
}
