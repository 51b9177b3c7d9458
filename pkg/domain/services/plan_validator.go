// Package services holds pure domain services with no infrastructure
// dependencies.
package services

import (
	"fmt"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// PlanValidator checks delivery plan structure against the allocations it
// is meant to serve
type PlanValidator struct{}

// NewPlanValidator creates a new delivery plan validator
func NewPlanValidator() *PlanValidator {
	return &PlanValidator{}
}

// PlanValidationResult contains the results of delivery plan validation
type PlanValidationResult struct {
	MissingZones   []entities.ZoneID // allocated but on no route
	DuplicateZones []entities.ZoneID // on more than one route position
	UnknownZones   []entities.ZoneID // routed but never allocated
	Errors         []string
}

// Valid reports whether the plan passed every check
func (r *PlanValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// ValidatePlan verifies that every allocated zone appears on exactly one
// route and that no route visits a zone without an allocation
func (v *PlanValidator) ValidatePlan(plan *entities.DeliveryPlan, allocations []entities.Allocation) *PlanValidationResult {
	result := &PlanValidationResult{}

	allocated := make(map[entities.ZoneID]bool, len(allocations))
	for _, a := range allocations {
		allocated[a.ZoneID] = true
	}

	seen := make(map[entities.ZoneID]int)
	for _, route := range plan.Routes {
		for _, zoneID := range route.ZoneSequence {
			seen[zoneID]++
			if !allocated[zoneID] {
				result.UnknownZones = append(result.UnknownZones, zoneID)
			}
		}
	}

	for _, a := range allocations {
		switch seen[a.ZoneID] {
		case 0:
			result.MissingZones = append(result.MissingZones, a.ZoneID)
		case 1:
		default:
			result.DuplicateZones = append(result.DuplicateZones, a.ZoneID)
		}
	}

	if len(result.MissingZones) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("allocated zones missing from routes: %v", result.MissingZones))
	}
	if len(result.DuplicateZones) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("zones routed more than once: %v", result.DuplicateZones))
	}
	if len(result.UnknownZones) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("routed zones with no allocation: %v", result.UnknownZones))
	}

	return result
}
