package entities

import (
	"github.com/shopspring/decimal"
)

// Allocation represents the resource quantities assigned to one zone for one cycle
type Allocation struct {
	ZoneID        ZoneID
	ZoneName      string
	PriorityScore decimal.Decimal
	Quantities    map[ResourceKind]Quantity
	Justification string
}

// Quantity returns the allocated quantity for a kind, zero if absent
func (a *Allocation) Quantity(kind ResourceKind) Quantity {
	return a.Quantities[kind]
}

// TotalAllocated sums the allocated quantity for a kind across zones
func TotalAllocated(allocations []Allocation, kind ResourceKind) Quantity {
	var total Quantity
	for _, a := range allocations {
		total += a.Quantities[kind]
	}
	return total
}

// CoverageStats reports what share of zones and population an allocation reaches
type CoverageStats struct {
	ZonesServed        int
	TotalZones         int
	PopulationServed   int
	TotalPopulation    int
	CoveragePercentage decimal.Decimal
}
