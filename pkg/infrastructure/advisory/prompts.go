package advisory

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// Prompt builders for each advisory phase. The request context is rendered
// as indented JSON and the expected response schema is spelled out verbatim,
// so that decoding can be strict on the way back in.

type zoneContext struct {
	ZoneID              string  `json:"zone_id"`
	ZoneName            string  `json:"zone_name"`
	Population          int     `json:"population"`
	ChildrenRatio       float64 `json:"children_ratio"`
	ElderlyRatio        float64 `json:"elderly_ratio"`
	PregnantWomen       int     `json:"pregnant_women"`
	ChronicIllnessCases int     `json:"chronic_illness_cases"`
	FoodShortage        float64 `json:"food_shortage"`
	WaterShortage       float64 `json:"water_shortage"`
	MedicalSeverity     float64 `json:"medical_severity"`
	ShelterDamage       float64 `json:"shelter_damage"`
	SanitationNeed      float64 `json:"sanitation_need"`
	DistanceFromDepot   float64 `json:"distance_from_depot"`
	RoadCondition       string  `json:"road_condition"`
	Accessibility       string  `json:"accessibility"`
	SecurityLevel       string  `json:"security_level"`
	LastAidReceivedDays int     `json:"last_aid_received_days"`
	PreviousSatisfaction float64 `json:"previous_aid_satisfaction"`
}

func newZoneContext(z entities.Zone) zoneContext {
	return zoneContext{
		ZoneID:              string(z.ZoneID),
		ZoneName:            z.ZoneName,
		Population:          z.Population,
		ChildrenRatio:       z.ChildrenRatio,
		ElderlyRatio:        z.ElderlyRatio,
		PregnantWomen:       z.PregnantWomen,
		ChronicIllnessCases: z.ChronicIllnessCases,
		FoodShortage:        z.FoodShortage,
		WaterShortage:       z.WaterShortage,
		MedicalSeverity:     z.MedicalSeverity,
		ShelterDamage:       z.ShelterDamage,
		SanitationNeed:      z.SanitationNeed,
		DistanceFromDepot:   z.DistanceFromDepotKm,
		RoadCondition:       string(z.RoadCondition),
		Accessibility:       string(z.Accessibility),
		SecurityLevel:       string(z.SecurityLevel),
		LastAidReceivedDays: z.LastAidReceivedDays,
		PreviousSatisfaction: z.PreviousAidSatisfaction,
	}
}

type rankedZoneContext struct {
	ZoneID        string   `json:"zone_id"`
	ZoneName      string   `json:"zone_name"`
	PriorityScore float64  `json:"priority_score"`
	CriticalNeeds []string `json:"critical_needs"`
}

type poolContext struct {
	FoodPackages       int64 `json:"food_packages"`
	WaterLiters        int64 `json:"water_liters"`
	MedicalKits        int64 `json:"medical_kits"`
	ShelterMaterials   int64 `json:"shelter_materials"`
	Blankets           int64 `json:"blankets"`
	HygieneKits        int64 `json:"hygiene_kits"`
	VehiclesAvailable  int   `json:"vehicles_available"`
	PersonnelAvailable int   `json:"personnel_available"`
	BudgetUSD          int64 `json:"budget_usd"`
}

func newPoolContext(p *entities.ResourcePool) poolContext {
	return poolContext{
		FoodPackages:       int64(p.Quantity(entities.FoodPackages)),
		WaterLiters:        int64(p.Quantity(entities.WaterLiters)),
		MedicalKits:        int64(p.Quantity(entities.MedicalKits)),
		ShelterMaterials:   int64(p.Quantity(entities.ShelterMaterials)),
		Blankets:           int64(p.Quantity(entities.Blankets)),
		HygieneKits:        int64(p.Quantity(entities.HygieneKits)),
		VehiclesAvailable:  p.VehiclesAvailable,
		PersonnelAvailable: p.PersonnelAvailable,
		BudgetUSD:          p.BudgetUSD,
	}
}

type allocationContext struct {
	ZoneID           string  `json:"zone_id"`
	ZoneName         string  `json:"zone_name"`
	PriorityScore    float64 `json:"priority_score"`
	FoodPackages     int64   `json:"food_packages"`
	WaterLiters      int64   `json:"water_liters"`
	MedicalKits      int64   `json:"medical_kits"`
	ShelterMaterials int64   `json:"shelter_materials"`
	Blankets         int64   `json:"blankets"`
	HygieneKits      int64   `json:"hygiene_kits"`
}

func newAllocationContext(a entities.Allocation) allocationContext {
	return allocationContext{
		ZoneID:           string(a.ZoneID),
		ZoneName:         a.ZoneName,
		PriorityScore:    a.PriorityScore.InexactFloat64(),
		FoodPackages:     int64(a.Quantity(entities.FoodPackages)),
		WaterLiters:      int64(a.Quantity(entities.WaterLiters)),
		MedicalKits:      int64(a.Quantity(entities.MedicalKits)),
		ShelterMaterials: int64(a.Quantity(entities.ShelterMaterials)),
		Blankets:         int64(a.Quantity(entities.Blankets)),
		HygieneKits:      int64(a.Quantity(entities.HygieneKits)),
	}
}

type logisticsZoneContext struct {
	ZoneID            string  `json:"zone_id"`
	ZoneName          string  `json:"zone_name"`
	DistanceFromDepot float64 `json:"distance_from_depot"`
	RoadCondition     string  `json:"road_condition"`
	Accessibility     string  `json:"accessibility"`
	SecurityLevel     string  `json:"security_level"`
	Population        int     `json:"population"`
}

type outcomeContext struct {
	ZoneID              string  `json:"zone_id"`
	ZoneName            string  `json:"zone_name"`
	DeliveredPercentage float64 `json:"delivered_percentage"`
	Challenge           string  `json:"challenges"`
	Status              string  `json:"delivery_status"`
}

func indentJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func assessmentPrompt(zone entities.Zone) string {
	return fmt.Sprintf(`You are an expert humanitarian needs assessment specialist.
Analyze this settlement zone and calculate a priority score from 0-100 (100 = most urgent).

ZONE DATA:
%s

ASSESSMENT CRITERIA:
1. Vulnerable populations (children, elderly, pregnant women, chronic illness) - 25 points
2. Critical shortages (food, water, medical) - 35 points
3. Time since last aid received - 20 points
4. Population size and density - 10 points
5. Shelter and sanitation conditions - 10 points

IMPORTANT: Return ONLY valid JSON in this exact format:
{
  "priority_score": <number between 0-100>,
  "critical_needs": ["need1", "need2", "need3"],
  "vulnerability_score": <number 0-25>,
  "shortage_score": <number 0-35>,
  "time_score": <number 0-20>,
  "population_score": <number 0-10>,
  "conditions_score": <number 0-10>,
  "reasoning": "2-3 sentence explanation of priority level"
}

Do not include any text before or after the JSON.`, indentJSON(newZoneContext(zone)))
}

func allocationPrompt(ranked []entities.Assessment, pool *entities.ResourcePool) string {
	targets := make([]rankedZoneContext, 0, len(ranked))
	for _, a := range ranked {
		targets = append(targets, rankedZoneContext{
			ZoneID:        string(a.ZoneID),
			ZoneName:      a.ZoneName,
			PriorityScore: a.PriorityScore.InexactFloat64(),
			CriticalNeeds: a.CriticalNeeds,
		})
	}

	return fmt.Sprintf(`You are a resource allocation optimizer for humanitarian aid distribution.
Your goal is to reduce suffering by optimally distributing limited resources.

TOP PRIORITY ZONES (in order of urgency):
%s

AVAILABLE RESOURCES:
%s

ALLOCATION RULES:
1. Highest priority zones MUST receive resources first
2. Critical needs (food, water, medical) take precedence
3. Never exceed available resources
4. Each zone gets resources proportional to population and need severity
5. Reserve 10%% of resources for emergencies

Return ONLY a valid JSON array of allocations:
[
  {
    "zone_id": "Z01",
    "zone_name": "Sector A",
    "priority_score": 85.5,
    "food_packages": 1200,
    "water_liters": 8000,
    "medical_kits": 45,
    "shelter_materials": 20,
    "blankets": 300,
    "hygiene_kits": 150,
    "justification": "Brief reason for this allocation"
  }
]

Ensure allocations do not exceed 90%% of available resources.
Do not include any text before or after the JSON array.`,
		indentJSON(targets), indentJSON(newPoolContext(pool)))
}

func logisticsPrompt(allocations []entities.Allocation, zones []entities.Zone) string {
	allocCtx := make([]allocationContext, 0, len(allocations))
	allocated := map[entities.ZoneID]bool{}
	for _, a := range allocations {
		allocCtx = append(allocCtx, newAllocationContext(a))
		allocated[a.ZoneID] = true
	}

	var logisticsCtx []logisticsZoneContext
	for _, z := range zones {
		if !allocated[z.ZoneID] {
			continue
		}
		logisticsCtx = append(logisticsCtx, logisticsZoneContext{
			ZoneID:            string(z.ZoneID),
			ZoneName:          z.ZoneName,
			DistanceFromDepot: z.DistanceFromDepotKm,
			RoadCondition:     string(z.RoadCondition),
			Accessibility:     string(z.Accessibility),
			SecurityLevel:     string(z.SecurityLevel),
			Population:        z.Population,
		})
	}

	return fmt.Sprintf(`You are an expert logistics coordinator for humanitarian aid operations.
Plan efficient delivery routes considering real-world constraints.

RESOURCE ALLOCATIONS TO DELIVER:
%s

ZONE LOGISTICS DATA:
%s

LOGISTICS CONSTRAINTS:
- Each vehicle carries approximately 3000 kg of mixed supplies
- Average speed: 40 km/h on good roads, 25 km/h on fair roads, 15 km/h on poor roads
- Loading time at depot: 1 hour
- Unloading time per zone: 30-45 minutes depending on accessibility
- Security concerns may require escorts
- Priority zones should be visited first

Return ONLY valid JSON in this exact format:
{
  "routes": [
    {
      "route_id": 1,
      "vehicle_number": 1,
      "zones_sequence": ["Z01", "Z03"],
      "zone_names": ["Sector A", "Sector C"],
      "total_distance_km": 25.5,
      "estimated_time_hours": 4.5,
      "road_conditions": "mostly good, some fair",
      "special_requirements": "security escort for Z03",
      "delivery_notes": "Priority route"
    }
  ],
  "total_vehicles_needed": 2,
  "total_delivery_time_hours": 8.5,
  "estimated_completion": "Day 1",
  "logistics_summary": "Brief overview of logistics plan",
  "potential_challenges": ["challenge1", "challenge2"]
}

Do not include any text before or after the JSON.`,
		indentJSON(allocCtx), indentJSON(logisticsCtx))
}

func analysisPrompt(plan *entities.DeliveryPlan, outcomes []entities.Outcome, allocations []entities.Allocation) string {
	outcomeCtx := make([]outcomeContext, 0, len(outcomes))
	challengeCounts := map[string]int{}
	for _, o := range outcomes {
		outcomeCtx = append(outcomeCtx, outcomeContext{
			ZoneID:              string(o.ZoneID),
			ZoneName:            o.ZoneName,
			DeliveredPercentage: o.DeliveredPercentage.InexactFloat64(),
			Challenge:           string(o.Challenge),
			Status:              string(o.Status),
		})
		if o.Challenge != entities.ChallengeNone {
			challengeCounts[string(o.Challenge)]++
		}
	}

	var summary strings.Builder
	fmt.Fprintf(&summary, "- Routes planned: %d\n", len(plan.Routes))
	fmt.Fprintf(&summary, "- Zones targeted: %d\n", len(allocations))
	fmt.Fprintf(&summary, "- Total delivery time planned: %s hours", plan.TotalDeliveryTimeHours)

	return fmt.Sprintf(`You are a humanitarian operations monitoring and evaluation specialist.
Analyze delivery outcomes and provide actionable recommendations for improvement.

PLANNED DELIVERY:
%s

ACTUAL OUTCOMES:
%s

CHALLENGES ENCOUNTERED:
%s

Return ONLY valid JSON in this exact format:
{
  "overall_success_rate": 85.5,
  "zones_fully_served": ["Z01"],
  "zones_partially_served": ["Z03"],
  "zones_requiring_followup": ["Z04"],
  "critical_gaps": [
    {
      "zone_id": "Z04",
      "gap_description": "Only 60%% delivered due to road conditions",
      "urgency": "high",
      "recommended_action": "Schedule follow-up delivery"
    }
  ],
  "challenges_identified": [
    {
      "challenge_type": "weather_delay",
      "zones_affected": 2,
      "impact": "Added 2 hours to delivery time",
      "mitigation": "Start deliveries earlier in the day"
    }
  ],
  "performance_insights": "Brief analysis of what went well and what didn't",
  "recommendations_next_cycle": ["recommendation 1", "recommendation 2"],
  "priority_adjustments": "Suggested changes to zone priorities for next cycle",
  "resource_reallocation_needed": {
    "zones": ["Z04"],
    "resources_needed": {"food_packages": 500},
    "reason": "Shortfall from partial delivery"
  }
}

Do not include any text before or after the JSON.`,
		summary.String(), indentJSON(outcomeCtx), indentJSON(challengeCounts))
}
