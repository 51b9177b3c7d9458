package advisory

import (
	"fmt"
)

// Fixed response schemas, one per advisory phase. These mirror the JSON
// formats demanded in the prompts; anything that fails to decode or
// validate against them becomes a ParseError.

type assessmentResponse struct {
	PriorityScore      float64  `json:"priority_score"`
	CriticalNeeds      []string `json:"critical_needs"`
	VulnerabilityScore float64  `json:"vulnerability_score"`
	ShortageScore      float64  `json:"shortage_score"`
	TimeScore          float64  `json:"time_score"`
	PopulationScore    float64  `json:"population_score"`
	ConditionsScore    float64  `json:"conditions_score"`
	Reasoning          string   `json:"reasoning"`
}

func (r assessmentResponse) validate() error {
	if r.PriorityScore < 0 || r.PriorityScore > 100 {
		return fmt.Errorf("priority_score %.1f outside [0,100]", r.PriorityScore)
	}
	if r.VulnerabilityScore < 0 || r.VulnerabilityScore > 25 {
		return fmt.Errorf("vulnerability_score %.1f outside [0,25]", r.VulnerabilityScore)
	}
	if r.ShortageScore < 0 || r.ShortageScore > 35 {
		return fmt.Errorf("shortage_score %.1f outside [0,35]", r.ShortageScore)
	}
	if r.TimeScore < 0 || r.TimeScore > 20 {
		return fmt.Errorf("time_score %.1f outside [0,20]", r.TimeScore)
	}
	return nil
}

type allocationResponse struct {
	ZoneID           string  `json:"zone_id"`
	ZoneName         string  `json:"zone_name"`
	PriorityScore    float64 `json:"priority_score"`
	FoodPackages     int64   `json:"food_packages"`
	WaterLiters      int64   `json:"water_liters"`
	MedicalKits      int64   `json:"medical_kits"`
	ShelterMaterials int64   `json:"shelter_materials"`
	Blankets         int64   `json:"blankets"`
	HygieneKits      int64   `json:"hygiene_kits"`
	Justification    string  `json:"justification"`
}

type routeResponse struct {
	RouteID             int      `json:"route_id"`
	VehicleNumber       int      `json:"vehicle_number"`
	ZonesSequence       []string `json:"zones_sequence"`
	ZoneNames           []string `json:"zone_names"`
	TotalDistanceKm     float64  `json:"total_distance_km"`
	EstimatedTimeHours  float64  `json:"estimated_time_hours"`
	RoadConditions      string   `json:"road_conditions"`
	SpecialRequirements string   `json:"special_requirements"`
	DeliveryNotes       string   `json:"delivery_notes"`
}

type planResponse struct {
	Routes                 []routeResponse `json:"routes"`
	TotalVehiclesNeeded    int             `json:"total_vehicles_needed"`
	TotalDeliveryTimeHours float64         `json:"total_delivery_time_hours"`
	EstimatedCompletion    string          `json:"estimated_completion"`
	LogisticsSummary       string          `json:"logistics_summary"`
	PotentialChallenges    []string        `json:"potential_challenges"`
}

type gapResponse struct {
	ZoneID            string `json:"zone_id"`
	GapDescription    string `json:"gap_description"`
	Urgency           string `json:"urgency"`
	RecommendedAction string `json:"recommended_action"`
}

type challengeResponse struct {
	ChallengeType string `json:"challenge_type"`
	ZonesAffected int    `json:"zones_affected"`
	Impact        string `json:"impact"`
	Mitigation    string `json:"mitigation"`
}

type reallocationResponse struct {
	Zones           []string         `json:"zones"`
	ResourcesNeeded map[string]int64 `json:"resources_needed"`
	Reason          string           `json:"reason"`
}

type analysisResponse struct {
	OverallSuccessRate       float64              `json:"overall_success_rate"`
	ZonesFullyServed         []string             `json:"zones_fully_served"`
	ZonesPartiallyServed     []string             `json:"zones_partially_served"`
	ZonesRequiringFollowup   []string             `json:"zones_requiring_followup"`
	CriticalGaps             []gapResponse        `json:"critical_gaps"`
	ChallengesIdentified     []challengeResponse  `json:"challenges_identified"`
	PerformanceInsights      string               `json:"performance_insights"`
	RecommendationsNextCycle []string             `json:"recommendations_next_cycle"`
	PriorityAdjustments      string               `json:"priority_adjustments"`
	ResourceReallocation     reallocationResponse `json:"resource_reallocation_needed"`
}
