package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// Per-phase sampling temperatures. Allocation runs coldest for the most
// deterministic plans; analysis runs warmest for broader recommendations.
const (
	assessmentTemperature = 0.3
	allocationTemperature = 0.2
	logisticsTemperature  = 0.3
	analysisTemperature   = 0.4
)

// AssessZone requests a priority assessment for a single zone
func (c *Client) AssessZone(ctx context.Context, zone entities.Zone) (entities.Assessment, error) {
	prompt := assessmentPrompt(zone)

	raw, err := c.generate(ctx, prompt, assessmentTemperature)
	if err != nil {
		return entities.Assessment{}, err
	}

	var resp assessmentResponse
	if err := decodeJSON(raw, &resp); err != nil {
		return entities.Assessment{}, &ParseError{Phase: "assessment", Raw: raw, Err: err}
	}
	if err := resp.validate(); err != nil {
		return entities.Assessment{}, &ParseError{Phase: "assessment", Raw: raw, Err: err}
	}

	return entities.Assessment{
		ZoneID:             zone.ZoneID,
		ZoneName:           zone.ZoneName,
		PriorityScore:      decimal.NewFromFloat(resp.PriorityScore).Round(1),
		VulnerabilityScore: decimal.NewFromFloat(resp.VulnerabilityScore).Round(1),
		ShortageScore:      decimal.NewFromFloat(resp.ShortageScore).Round(1),
		TimeScore:          decimal.NewFromFloat(resp.TimeScore).Round(1),
		PopulationScore:    decimal.NewFromFloat(resp.PopulationScore).Round(1),
		ConditionsScore:    decimal.NewFromFloat(resp.ConditionsScore).Round(1),
		CriticalNeeds:      resp.CriticalNeeds,
		Reasoning:          resp.Reasoning,
	}, nil
}

// ProposeAllocations requests an allocation plan for the ranked target zones.
// The caller is responsible for validating the proposal against the pool.
func (c *Client) ProposeAllocations(ctx context.Context, ranked []entities.Assessment, pool *entities.ResourcePool) ([]entities.Allocation, error) {
	prompt := allocationPrompt(ranked, pool)

	raw, err := c.generate(ctx, prompt, allocationTemperature)
	if err != nil {
		return nil, err
	}

	var resp []allocationResponse
	if err := decodeJSON(raw, &resp); err != nil {
		return nil, &ParseError{Phase: "allocation", Raw: raw, Err: err}
	}
	if len(resp) == 0 {
		return nil, &ParseError{Phase: "allocation", Raw: raw, Err: fmt.Errorf("empty allocation array")}
	}

	allocations := make([]entities.Allocation, 0, len(resp))
	for i, ar := range resp {
		if ar.ZoneID == "" {
			return nil, &ParseError{Phase: "allocation", Raw: raw, Err: fmt.Errorf("allocation %d missing zone_id", i)}
		}
		if ar.FoodPackages < 0 || ar.WaterLiters < 0 || ar.MedicalKits < 0 ||
			ar.ShelterMaterials < 0 || ar.Blankets < 0 || ar.HygieneKits < 0 {
			return nil, &ParseError{Phase: "allocation", Raw: raw, Err: fmt.Errorf("allocation %d has negative quantity", i)}
		}
		allocations = append(allocations, entities.Allocation{
			ZoneID:        entities.ZoneID(ar.ZoneID),
			ZoneName:      ar.ZoneName,
			PriorityScore: decimal.NewFromFloat(ar.PriorityScore).Round(1),
			Quantities: map[entities.ResourceKind]entities.Quantity{
				entities.FoodPackages:     entities.Quantity(ar.FoodPackages),
				entities.WaterLiters:      entities.Quantity(ar.WaterLiters),
				entities.MedicalKits:      entities.Quantity(ar.MedicalKits),
				entities.ShelterMaterials: entities.Quantity(ar.ShelterMaterials),
				entities.Blankets:         entities.Quantity(ar.Blankets),
				entities.HygieneKits:      entities.Quantity(ar.HygieneKits),
			},
			Justification: ar.Justification,
		})
	}
	return allocations, nil
}

// ProposeDeliveryPlan requests delivery routes for the allocated zones
func (c *Client) ProposeDeliveryPlan(ctx context.Context, allocations []entities.Allocation, zones []entities.Zone) (*entities.DeliveryPlan, error) {
	prompt := logisticsPrompt(allocations, zones)

	raw, err := c.generate(ctx, prompt, logisticsTemperature)
	if err != nil {
		return nil, err
	}

	var resp planResponse
	if err := decodeJSON(raw, &resp); err != nil {
		return nil, &ParseError{Phase: "logistics", Raw: raw, Err: err}
	}
	if len(resp.Routes) == 0 {
		return nil, &ParseError{Phase: "logistics", Raw: raw, Err: fmt.Errorf("plan contains no routes")}
	}

	plan := &entities.DeliveryPlan{
		TotalVehiclesNeeded:    resp.TotalVehiclesNeeded,
		TotalDeliveryTimeHours: decimal.NewFromFloat(resp.TotalDeliveryTimeHours).Round(1),
		EstimatedCompletion:    resp.EstimatedCompletion,
		LogisticsSummary:       resp.LogisticsSummary,
		PotentialChallenges:    resp.PotentialChallenges,
	}
	for i, rr := range resp.Routes {
		if len(rr.ZonesSequence) == 0 {
			return nil, &ParseError{Phase: "logistics", Raw: raw, Err: fmt.Errorf("route %d has no zones", i)}
		}
		route := entities.Route{
			RouteID:             rr.RouteID,
			VehicleNumber:       rr.VehicleNumber,
			ZoneNames:           rr.ZoneNames,
			TotalDistanceKm:     decimal.NewFromFloat(rr.TotalDistanceKm).Round(1),
			EstimatedTimeHours:  decimal.NewFromFloat(rr.EstimatedTimeHours).Round(1),
			RoadConditions:      rr.RoadConditions,
			SpecialRequirements: rr.SpecialRequirements,
			DeliveryNotes:       rr.DeliveryNotes,
		}
		for _, id := range rr.ZonesSequence {
			route.ZoneSequence = append(route.ZoneSequence, entities.ZoneID(id))
		}
		plan.Routes = append(plan.Routes, route)
	}
	return plan, nil
}

// AnalyzeOutcomes requests an evaluation of delivery outcomes
func (c *Client) AnalyzeOutcomes(ctx context.Context, plan *entities.DeliveryPlan, outcomes []entities.Outcome, allocations []entities.Allocation) (entities.OutcomeAnalysis, error) {
	prompt := analysisPrompt(plan, outcomes, allocations)

	raw, err := c.generate(ctx, prompt, analysisTemperature)
	if err != nil {
		return entities.OutcomeAnalysis{}, err
	}

	var resp analysisResponse
	if err := decodeJSON(raw, &resp); err != nil {
		return entities.OutcomeAnalysis{}, &ParseError{Phase: "analysis", Raw: raw, Err: err}
	}
	if resp.OverallSuccessRate < 0 || resp.OverallSuccessRate > 100 {
		return entities.OutcomeAnalysis{}, &ParseError{
			Phase: "analysis", Raw: raw,
			Err: fmt.Errorf("overall_success_rate %.1f outside [0,100]", resp.OverallSuccessRate),
		}
	}

	analysis := entities.OutcomeAnalysis{
		OverallSuccessRate:       decimal.NewFromFloat(resp.OverallSuccessRate).Round(1),
		ZonesFullyServed:         toZoneIDs(resp.ZonesFullyServed),
		ZonesPartiallyServed:     toZoneIDs(resp.ZonesPartiallyServed),
		ZonesRequiringFollowup:   toZoneIDs(resp.ZonesRequiringFollowup),
		PerformanceInsights:      resp.PerformanceInsights,
		RecommendationsNextCycle: resp.RecommendationsNextCycle,
		PriorityAdjustments:      resp.PriorityAdjustments,
	}
	for _, g := range resp.CriticalGaps {
		analysis.CriticalGaps = append(analysis.CriticalGaps, entities.CriticalGap{
			ZoneID:            entities.ZoneID(g.ZoneID),
			GapDescription:    g.GapDescription,
			Urgency:           g.Urgency,
			RecommendedAction: g.RecommendedAction,
		})
	}
	for _, ch := range resp.ChallengesIdentified {
		analysis.ChallengesIdentified = append(analysis.ChallengesIdentified, entities.ChallengeReport{
			ChallengeType: entities.Challenge(ch.ChallengeType),
			ZonesAffected: ch.ZonesAffected,
			Impact:        ch.Impact,
			Mitigation:    ch.Mitigation,
		})
	}
	analysis.ResourceReallocation = entities.ReallocationRequest{
		Zones:           toZoneIDs(resp.ResourceReallocation.Zones),
		ResourcesNeeded: map[entities.ResourceKind]entities.Quantity{},
		Reason:          resp.ResourceReallocation.Reason,
	}
	for kind, qty := range resp.ResourceReallocation.ResourcesNeeded {
		analysis.ResourceReallocation.ResourcesNeeded[entities.ResourceKind(kind)] = entities.Quantity(qty)
	}
	return analysis, nil
}

func toZoneIDs(ids []string) []entities.ZoneID {
	out := make([]entities.ZoneID, 0, len(ids))
	for _, id := range ids {
		out = append(out, entities.ZoneID(id))
	}
	return out
}

// decodeJSON extracts the JSON document from a completion and decodes it
// strictly into v. Completions sometimes carry prose around the document,
// so everything before the first brace/bracket and after the matching last
// one is discarded before decoding.
func decodeJSON(raw string, v interface{}) error {
	doc := extractJSON(raw)
	if doc == "" {
		return fmt.Errorf("no JSON document found in response")
	}
	return json.Unmarshal([]byte(doc), v)
}

func extractJSON(raw string) string {
	objStart := strings.Index(raw, "{")
	arrStart := strings.Index(raw, "[")

	start := objStart
	end := strings.LastIndex(raw, "}")
	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		start = arrStart
		end = strings.LastIndex(raw, "]")
	}
	if start < 0 || end <= start {
		return ""
	}
	return raw[start : end+1]
}
