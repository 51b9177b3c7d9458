package logistics

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// VehicleCapacityKg is the nominal payload of one delivery vehicle
const VehicleCapacityKg = 3000

// unitWeightsKg is the per-unit weight of each distributable kind
var unitWeightsKg = map[entities.ResourceKind]decimal.Decimal{
	entities.FoodPackages:     decimal.NewFromFloat(0.5),
	entities.WaterLiters:      decimal.NewFromFloat(1.0),
	entities.MedicalKits:      decimal.NewFromFloat(2.0),
	entities.ShelterMaterials: decimal.NewFromFloat(15.0),
	entities.Blankets:         decimal.NewFromFloat(1.5),
	entities.HygieneKits:      decimal.NewFromFloat(3.0),
}

// UnitWeightKg returns the per-unit weight for a resource kind, zero for
// kinds with no weight entry
func UnitWeightKg(kind entities.ResourceKind) decimal.Decimal {
	return unitWeightsKg[kind]
}

// CalculateLoadingPlans computes the weight breakdown for every route. Zones
// on a route are loaded in reverse visitation order so the first stop's cargo
// sits nearest the doors. An overweight route is flagged, not re-split.
func (p *Planner) CalculateLoadingPlans(plan *entities.DeliveryPlan, allocations []entities.Allocation) []entities.LoadingPlan {
	byZone := make(map[entities.ZoneID]entities.Allocation, len(allocations))
	for _, a := range allocations {
		byZone[a.ZoneID] = a
	}

	capacity := decimal.NewFromInt(VehicleCapacityKg)
	plans := make([]entities.LoadingPlan, 0, len(plan.Routes))
	for _, route := range plan.Routes {
		lp := entities.LoadingPlan{
			RouteID:       route.RouteID,
			TotalWeightKg: decimal.Zero,
		}

		for i := len(route.ZoneSequence) - 1; i >= 0; i-- {
			zoneID := route.ZoneSequence[i]
			alloc, ok := byZone[zoneID]
			if !ok {
				continue
			}

			load := entities.ZoneLoad{
				ZoneID:        zoneID,
				ZoneName:      alloc.ZoneName,
				Items:         make(map[entities.ResourceKind]entities.LoadItem),
				TotalWeightKg: decimal.Zero,
			}
			for _, kind := range entities.DistributableKinds() {
				qty := alloc.Quantities[kind]
				if qty == 0 {
					continue
				}
				weight := unitWeightsKg[kind].Mul(decimal.NewFromInt(int64(qty)))
				load.Items[kind] = entities.LoadItem{Quantity: qty, WeightKg: weight}
				load.TotalWeightKg = load.TotalWeightKg.Add(weight)
			}

			lp.LoadingSequence = append(lp.LoadingSequence, load)
			lp.TotalWeightKg = lp.TotalWeightKg.Add(load.TotalWeightKg)
		}

		lp.CapacityUsedPercent = lp.TotalWeightKg.Mul(decimal.NewFromInt(100)).Div(capacity).Round(1)
		lp.WeightStatus = entities.WeightOK
		if lp.TotalWeightKg.GreaterThan(capacity) {
			lp.WeightStatus = entities.WeightOverweight
			p.log.WithFields(logrus.Fields{
				"route":     lp.RouteID,
				"weight_kg": lp.TotalWeightKg,
			}).Warn("route load exceeds vehicle capacity")
		}

		plans = append(plans, lp)
	}
	return plans
}
