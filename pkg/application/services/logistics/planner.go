// Package logistics turns allocations into vehicle routes, loading plans
// and a time-of-day delivery schedule.
package logistics

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
	"github.com/reliefops/aidcycle/pkg/domain/services"
	"github.com/reliefops/aidcycle/pkg/infrastructure/advisory"
)

// Fallback routing constants: zones are grouped in threes by priority
// order, route time is distance at a fixed average speed plus fixed
// loading/unloading overhead.
const (
	zonesPerRoute      = 3
	averageSpeedKmh    = 30.0
	routeOverheadHours = 2.0
)

// Advisor proposes a delivery plan for the allocated zones
type Advisor interface {
	ProposeDeliveryPlan(ctx context.Context, allocations []entities.Allocation, zones []entities.Zone) (*entities.DeliveryPlan, error)
}

// Planner builds delivery plans for allocated zones
type Planner struct {
	advisor   Advisor
	validator *services.PlanValidator
	log       *logrus.Entry
}

// NewPlanner creates a route planner; advisor may be nil
func NewPlanner(advisor Advisor, log *logrus.Logger) *Planner {
	return &Planner{
		advisor:   advisor,
		validator: services.NewPlanValidator(),
		log:       log.WithField("component", "logistics"),
	}
}

// PlanDeliveryRoutes partitions the allocated zones into vehicle routes.
// A malformed advisory plan falls back to fixed-size grouping in priority
// order; transport failures abort the phase.
func (p *Planner) PlanDeliveryRoutes(ctx context.Context, allocations []entities.Allocation, zones []entities.Zone) (*entities.DeliveryPlan, error) {
	if len(allocations) == 0 {
		return nil, fmt.Errorf("no allocations to route")
	}

	if p.advisor != nil {
		plan, err := p.advisor.ProposeDeliveryPlan(ctx, allocations, zones)
		switch {
		case err == nil:
			if result := p.validator.ValidatePlan(plan, allocations); !result.Valid() {
				p.log.WithField("errors", result.Errors).Warn("advisory delivery plan failed validation, using fallback routing")
				break
			}
			p.log.WithField("routes", len(plan.Routes)).Info("advisory delivery plan accepted")
			return plan, nil
		case !advisory.IsParseError(err):
			return nil, err
		default:
			p.log.WithError(err).Warn("malformed advisory delivery plan, using fallback routing")
		}
	}

	plan := p.fallbackPlan(allocations, zones)
	p.log.WithField("routes", len(plan.Routes)).Info("fallback delivery plan created")
	return plan, nil
}

// fallbackPlan groups zones into routes of three, preserving priority order
// within and across routes. Route distance is the sum of member depot
// distances (inter-zone legs are not modeled) and time follows the fixed
// speed-plus-overhead formula.
func (p *Planner) fallbackPlan(allocations []entities.Allocation, zones []entities.Zone) *entities.DeliveryPlan {
	plan := &entities.DeliveryPlan{
		EstimatedCompletion: "Day 1-2",
		LogisticsSummary:    "Fixed-grouping routing plan in priority order",
		PotentialChallenges: []string{"Weather dependent", "Road conditions"},
	}

	totalTime := decimal.Zero
	for start := 0; start < len(allocations); start += zonesPerRoute {
		end := start + zonesPerRoute
		if end > len(allocations) {
			end = len(allocations)
		}
		group := allocations[start:end]

		route := entities.Route{
			RouteID:       len(plan.Routes) + 1,
			VehicleNumber: len(plan.Routes) + 1,
			DeliveryNotes: "Standard delivery route",
		}

		totalDistance := 0.0
		var conditions []string
		for _, alloc := range group {
			route.ZoneSequence = append(route.ZoneSequence, alloc.ZoneID)
			route.ZoneNames = append(route.ZoneNames, alloc.ZoneName)
			if zone, ok := entities.FindZone(zones, alloc.ZoneID); ok {
				totalDistance += zone.DistanceFromDepotKm
				conditions = append(conditions, string(zone.RoadCondition))
			}
		}

		route.TotalDistanceKm = decimal.NewFromFloat(totalDistance).Round(1)
		route.EstimatedTimeHours = decimal.NewFromFloat(totalDistance/averageSpeedKmh + routeOverheadHours).Round(1)
		route.RoadConditions = strings.Join(conditions, ", ")

		totalTime = totalTime.Add(route.EstimatedTimeHours)
		plan.Routes = append(plan.Routes, route)
	}

	plan.TotalVehiclesNeeded = len(plan.Routes)
	plan.TotalDeliveryTimeHours = totalTime
	return plan
}
