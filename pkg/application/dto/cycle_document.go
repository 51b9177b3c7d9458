// Package dto holds the serialization documents for persisted cycle results.
package dto

import (
	"time"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// CycleDocument is the JSON representation of one completed cycle. All
// decimal values are flattened to floats and quantities to plain integers so
// the document round-trips through any JSON consumer without custom types.
type CycleDocument struct {
	RunID           string  `json:"run_id"`
	CycleNumber     int     `json:"cycle_number"`
	Timestamp       string  `json:"timestamp"`
	DurationSeconds float64 `json:"duration_seconds"`
	Scenario        string  `json:"resource_scenario"`

	Settlement SettlementDocument `json:"settlement_data"`
	Resources  ResourceDocument   `json:"available_resources"`

	NeedsAssessment    AssessmentSection `json:"needs_assessment"`
	ResourceAllocation AllocationSection `json:"resource_allocation"`
	LogisticsPlan      LogisticsSection  `json:"logistics_plan"`
	DeliveryOutcomes   OutcomeSection    `json:"delivery_outcomes"`

	PerformanceMetrics MetricsDocument `json:"performance_metrics"`
}

// SettlementDocument is the zone snapshot portion of a cycle document
type SettlementDocument struct {
	TotalZones      int            `json:"total_zones"`
	TotalPopulation int            `json:"total_population"`
	Zones           []ZoneDocument `json:"zones_data"`
}

// ZoneDocument mirrors one settlement zone
type ZoneDocument struct {
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
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
}

// ResourceDocument mirrors the available resource pool
type ResourceDocument struct {
	Quantities         map[string]int64 `json:"quantities"`
	VehiclesAvailable  int              `json:"vehicles_available"`
	PersonnelAvailable int              `json:"personnel_available"`
	BudgetUSD          int64            `json:"budget_usd"`
}

// AssessmentSection carries the ranked assessments and the needs report
type AssessmentSection struct {
	PrioritizedZones []AssessmentDocument `json:"prioritized_zones"`
	Report           NeedsReportDocument  `json:"report"`
}

// AssessmentDocument mirrors one zone assessment
type AssessmentDocument struct {
	ZoneID             string   `json:"zone_id"`
	ZoneName           string   `json:"zone_name"`
	PriorityScore      float64  `json:"priority_score"`
	VulnerabilityScore float64  `json:"vulnerability_score"`
	ShortageScore      float64  `json:"shortage_score"`
	TimeScore          float64  `json:"time_score"`
	PopulationScore    float64  `json:"population_score"`
	ConditionsScore    float64  `json:"conditions_score"`
	CriticalNeeds      []string `json:"critical_needs"`
	Reasoning          string   `json:"reasoning"`
}

// NeedsReportDocument mirrors the needs report summary
type NeedsReportDocument struct {
	TotalZonesAssessed   int                `json:"total_zones_assessed"`
	CriticalZones        int                `json:"critical_zones"`
	HighPriorityZones    int                `json:"high_priority_zones"`
	AveragePriorityScore float64            `json:"average_priority_score"`
	MostCommonNeeds      map[string]int     `json:"most_common_needs"`
	TopPriorityZones     []ZoneRankDocument `json:"top_priority_zones"`
}

// ZoneRankDocument mirrors a compact ranked-zone reference
type ZoneRankDocument struct {
	ZoneID        string  `json:"zone_id"`
	ZoneName      string  `json:"zone_name"`
	PriorityScore float64 `json:"priority_score"`
}

// AllocationSection carries the allocations and their coverage stats
type AllocationSection struct {
	Allocations []AllocationDocument `json:"allocations"`
	Coverage    CoverageDocument     `json:"coverage"`
}

// AllocationDocument mirrors one zone allocation
type AllocationDocument struct {
	ZoneID        string           `json:"zone_id"`
	ZoneName      string           `json:"zone_name"`
	PriorityScore float64          `json:"priority_score"`
	Quantities    map[string]int64 `json:"quantities"`
	Justification string           `json:"justification"`
}

// CoverageDocument mirrors allocation coverage stats
type CoverageDocument struct {
	ZonesServed        int     `json:"zones_served"`
	TotalZones         int     `json:"total_zones"`
	PopulationServed   int     `json:"population_served"`
	TotalPopulation    int     `json:"total_population"`
	CoveragePercentage float64 `json:"coverage_percentage"`
}

// LogisticsSection carries the delivery plan, loading plans and schedule
type LogisticsSection struct {
	DeliveryPlan DeliveryPlanDocument  `json:"delivery_plan"`
	LoadingPlans []LoadingPlanDocument `json:"loading_plans"`
	Schedule     []ScheduleDocument    `json:"schedule"`
}

// DeliveryPlanDocument mirrors the full route plan
type DeliveryPlanDocument struct {
	Routes                 []RouteDocument `json:"routes"`
	TotalVehiclesNeeded    int             `json:"total_vehicles_needed"`
	TotalDeliveryTimeHours float64         `json:"total_delivery_time_hours"`
	EstimatedCompletion    string          `json:"estimated_completion"`
	LogisticsSummary       string          `json:"logistics_summary"`
	PotentialChallenges    []string        `json:"potential_challenges"`
}

// RouteDocument mirrors one vehicle route
type RouteDocument struct {
	RouteID             int      `json:"route_id"`
	VehicleNumber       int      `json:"vehicle_number"`
	ZoneSequence        []string `json:"zones_sequence"`
	ZoneNames           []string `json:"zone_names"`
	TotalDistanceKm     float64  `json:"total_distance_km"`
	EstimatedTimeHours  float64  `json:"estimated_time_hours"`
	RoadConditions      string   `json:"road_conditions"`
	SpecialRequirements string   `json:"special_requirements,omitempty"`
	DeliveryNotes       string   `json:"delivery_notes,omitempty"`
}

// LoadingPlanDocument mirrors one route's loading plan
type LoadingPlanDocument struct {
	RouteID             int                `json:"route_id"`
	LoadingSequence     []ZoneLoadDocument `json:"loading_sequence"`
	TotalWeightKg       float64            `json:"total_weight_kg"`
	CapacityUsedPercent float64            `json:"capacity_used_percent"`
	WeightStatus        string             `json:"weight_status"`
}

// ZoneLoadDocument mirrors the load destined for one zone
type ZoneLoadDocument struct {
	ZoneID        string                  `json:"zone_id"`
	ZoneName      string                  `json:"zone_name"`
	Items         map[string]LoadItemDocument `json:"items"`
	TotalWeightKg float64                 `json:"total_weight_kg"`
}

// LoadItemDocument mirrors one loaded resource line
type LoadItemDocument struct {
	Quantity int64   `json:"quantity"`
	WeightKg float64 `json:"weight_kg"`
}

// ScheduleDocument mirrors one route's time itinerary. Times are HH:MM
// strings on a clock that does not wrap at midnight.
type ScheduleDocument struct {
	RouteID   int            `json:"route_id"`
	StartTime string         `json:"start_time"`
	Stops     []StopDocument `json:"zones"`
	EndTime   string         `json:"end_time"`
}

// StopDocument mirrors one scheduled stop
type StopDocument struct {
	Sequence         int    `json:"sequence"`
	ZoneID           string `json:"zone_id"`
	ArrivalTime      string `json:"arrival_time"`
	UnloadingMinutes int    `json:"unloading_duration_minutes"`
	DepartureTime    string `json:"departure_time"`
}

// OutcomeSection carries the simulated outcomes and their analysis
type OutcomeSection struct {
	ActualResults []OutcomeDocument `json:"actual_results"`
	Analysis      AnalysisDocument  `json:"analysis"`
}

// OutcomeDocument mirrors one zone's delivery outcome
type OutcomeDocument struct {
	ZoneID              string           `json:"zone_id"`
	ZoneName            string           `json:"zone_name"`
	PlannedDelivery     map[string]int64 `json:"planned_delivery"`
	DeliveredPercentage float64          `json:"delivered_percentage"`
	Challenge           string           `json:"challenges"`
	DeliveryStatus      string           `json:"delivery_status"`
}

// AnalysisDocument mirrors the outcome analysis
type AnalysisDocument struct {
	OverallSuccessRate       float64                 `json:"overall_success_rate"`
	ZonesFullyServed         []string                `json:"zones_fully_served"`
	ZonesPartiallyServed     []string                `json:"zones_partially_served"`
	ZonesRequiringFollowup   []string                `json:"zones_requiring_followup"`
	CriticalGaps             []CriticalGapDocument   `json:"critical_gaps"`
	ChallengesIdentified     []ChallengeDocument     `json:"challenges_identified"`
	PerformanceInsights      string                  `json:"performance_insights"`
	RecommendationsNextCycle []string                `json:"recommendations_next_cycle"`
	PriorityAdjustments      string                  `json:"priority_adjustments"`
	ResourceReallocation     ReallocationDocument    `json:"resource_reallocation_needed"`
}

// CriticalGapDocument mirrors one critical delivery gap
type CriticalGapDocument struct {
	ZoneID            string `json:"zone_id"`
	GapDescription    string `json:"gap_description"`
	Urgency           string `json:"urgency"`
	RecommendedAction string `json:"recommended_action"`
}

// ChallengeDocument mirrors one aggregated challenge report
type ChallengeDocument struct {
	ChallengeType string `json:"challenge_type"`
	ZonesAffected int    `json:"zones_affected"`
	Impact        string `json:"impact"`
	Mitigation    string `json:"mitigation"`
}

// ReallocationDocument mirrors the next-cycle reallocation request
type ReallocationDocument struct {
	Zones           []string         `json:"zones"`
	ResourcesNeeded map[string]int64 `json:"resources"`
	Reason          string           `json:"reason"`
}

// MetricsDocument mirrors the headline cycle metrics
type MetricsDocument struct {
	ZonesServed        int     `json:"zones_served"`
	SuccessRate        float64 `json:"success_rate"`
	PopulationServed   int     `json:"population_served"`
	CoveragePercentage float64 `json:"coverage_percentage"`
}

// NewCycleDocument flattens a cycle record into its JSON document
func NewCycleDocument(rec *entities.CycleRecord) *CycleDocument {
	doc := &CycleDocument{
		RunID:           rec.RunID,
		CycleNumber:     rec.CycleNumber,
		Timestamp:       rec.Timestamp.Format(time.RFC3339),
		DurationSeconds: rec.Duration.Seconds(),
		Scenario:        string(rec.Scenario),
		Settlement: SettlementDocument{
			TotalZones:      len(rec.Zones),
			TotalPopulation: entities.TotalPopulation(rec.Zones),
			Zones:           make([]ZoneDocument, 0, len(rec.Zones)),
		},
		Resources: ResourceDocument{
			Quantities:         quantitiesDoc(rec.Resources.Quantities),
			VehiclesAvailable:  rec.Resources.VehiclesAvailable,
			PersonnelAvailable: rec.Resources.PersonnelAvailable,
			BudgetUSD:          rec.Resources.BudgetUSD,
		},
		PerformanceMetrics: MetricsDocument{
			ZonesServed:        rec.Metrics.ZonesServed,
			SuccessRate:        rec.Metrics.SuccessRate.InexactFloat64(),
			PopulationServed:   rec.Metrics.PopulationServed,
			CoveragePercentage: rec.Metrics.CoveragePercentage.InexactFloat64(),
		},
	}

	for _, z := range rec.Zones {
		doc.Settlement.Zones = append(doc.Settlement.Zones, ZoneDocument{
			ZoneID:               string(z.ZoneID),
			ZoneName:             z.ZoneName,
			Population:           z.Population,
			ChildrenRatio:        z.ChildrenRatio,
			ElderlyRatio:         z.ElderlyRatio,
			PregnantWomen:        z.PregnantWomen,
			ChronicIllnessCases:  z.ChronicIllnessCases,
			FoodShortage:         z.FoodShortage,
			WaterShortage:        z.WaterShortage,
			MedicalSeverity:      z.MedicalSeverity,
			ShelterDamage:        z.ShelterDamage,
			SanitationNeed:       z.SanitationNeed,
			DistanceFromDepot:    z.DistanceFromDepotKm,
			RoadCondition:        string(z.RoadCondition),
			Accessibility:        string(z.Accessibility),
			SecurityLevel:        string(z.SecurityLevel),
			LastAidReceivedDays:  z.LastAidReceivedDays,
			PreviousSatisfaction: z.PreviousAidSatisfaction,
			Latitude:             z.Latitude,
			Longitude:            z.Longitude,
		})
	}

	doc.NeedsAssessment = assessmentSection(rec)
	doc.ResourceAllocation = allocationSection(rec)
	doc.LogisticsPlan = logisticsSection(rec)
	doc.DeliveryOutcomes = outcomeSection(rec)

	return doc
}

func assessmentSection(rec *entities.CycleRecord) AssessmentSection {
	section := AssessmentSection{
		PrioritizedZones: make([]AssessmentDocument, 0, len(rec.Assessments)),
		Report: NeedsReportDocument{
			TotalZonesAssessed:   rec.NeedsReport.TotalZonesAssessed,
			CriticalZones:        rec.NeedsReport.CriticalZones,
			HighPriorityZones:    rec.NeedsReport.HighPriorityZones,
			AveragePriorityScore: rec.NeedsReport.AveragePriorityScore.InexactFloat64(),
			MostCommonNeeds:      rec.NeedsReport.MostCommonNeeds,
		},
	}
	for _, a := range rec.Assessments {
		section.PrioritizedZones = append(section.PrioritizedZones, AssessmentDocument{
			ZoneID:             string(a.ZoneID),
			ZoneName:           a.ZoneName,
			PriorityScore:      a.PriorityScore.InexactFloat64(),
			VulnerabilityScore: a.VulnerabilityScore.InexactFloat64(),
			ShortageScore:      a.ShortageScore.InexactFloat64(),
			TimeScore:          a.TimeScore.InexactFloat64(),
			PopulationScore:    a.PopulationScore.InexactFloat64(),
			ConditionsScore:    a.ConditionsScore.InexactFloat64(),
			CriticalNeeds:      a.CriticalNeeds,
			Reasoning:          a.Reasoning,
		})
	}
	for _, r := range rec.NeedsReport.TopPriorityZones {
		section.Report.TopPriorityZones = append(section.Report.TopPriorityZones, ZoneRankDocument{
			ZoneID:        string(r.ZoneID),
			ZoneName:      r.ZoneName,
			PriorityScore: r.PriorityScore.InexactFloat64(),
		})
	}
	return section
}

func allocationSection(rec *entities.CycleRecord) AllocationSection {
	section := AllocationSection{
		Allocations: make([]AllocationDocument, 0, len(rec.Allocations)),
		Coverage: CoverageDocument{
			ZonesServed:        rec.Coverage.ZonesServed,
			TotalZones:         rec.Coverage.TotalZones,
			PopulationServed:   rec.Coverage.PopulationServed,
			TotalPopulation:    rec.Coverage.TotalPopulation,
			CoveragePercentage: rec.Coverage.CoveragePercentage.InexactFloat64(),
		},
	}
	for _, a := range rec.Allocations {
		section.Allocations = append(section.Allocations, AllocationDocument{
			ZoneID:        string(a.ZoneID),
			ZoneName:      a.ZoneName,
			PriorityScore: a.PriorityScore.InexactFloat64(),
			Quantities:    quantitiesDoc(a.Quantities),
			Justification: a.Justification,
		})
	}
	return section
}

func logisticsSection(rec *entities.CycleRecord) LogisticsSection {
	plan := DeliveryPlanDocument{
		TotalVehiclesNeeded:    rec.DeliveryPlan.TotalVehiclesNeeded,
		TotalDeliveryTimeHours: rec.DeliveryPlan.TotalDeliveryTimeHours.InexactFloat64(),
		EstimatedCompletion:    rec.DeliveryPlan.EstimatedCompletion,
		LogisticsSummary:       rec.DeliveryPlan.LogisticsSummary,
		PotentialChallenges:    rec.DeliveryPlan.PotentialChallenges,
	}
	for _, r := range rec.DeliveryPlan.Routes {
		plan.Routes = append(plan.Routes, RouteDocument{
			RouteID:             r.RouteID,
			VehicleNumber:       r.VehicleNumber,
			ZoneSequence:        zoneIDsDoc(r.ZoneSequence),
			ZoneNames:           r.ZoneNames,
			TotalDistanceKm:     r.TotalDistanceKm.InexactFloat64(),
			EstimatedTimeHours:  r.EstimatedTimeHours.InexactFloat64(),
			RoadConditions:      r.RoadConditions,
			SpecialRequirements: r.SpecialRequirements,
			DeliveryNotes:       r.DeliveryNotes,
		})
	}

	section := LogisticsSection{DeliveryPlan: plan}

	for _, lp := range rec.LoadingPlans {
		lpDoc := LoadingPlanDocument{
			RouteID:             lp.RouteID,
			TotalWeightKg:       lp.TotalWeightKg.InexactFloat64(),
			CapacityUsedPercent: lp.CapacityUsedPercent.InexactFloat64(),
			WeightStatus:        string(lp.WeightStatus),
		}
		for _, load := range lp.LoadingSequence {
			items := make(map[string]LoadItemDocument, len(load.Items))
			for kind, item := range load.Items {
				items[string(kind)] = LoadItemDocument{
					Quantity: int64(item.Quantity),
					WeightKg: item.WeightKg.InexactFloat64(),
				}
			}
			lpDoc.LoadingSequence = append(lpDoc.LoadingSequence, ZoneLoadDocument{
				ZoneID:        string(load.ZoneID),
				ZoneName:      load.ZoneName,
				Items:         items,
				TotalWeightKg: load.TotalWeightKg.InexactFloat64(),
			})
		}
		section.LoadingPlans = append(section.LoadingPlans, lpDoc)
	}

	for _, rs := range rec.Schedule {
		rsDoc := ScheduleDocument{
			RouteID:   rs.RouteID,
			StartTime: rs.StartTime.String(),
			EndTime:   rs.EndTime.String(),
		}
		for _, stop := range rs.Stops {
			rsDoc.Stops = append(rsDoc.Stops, StopDocument{
				Sequence:         stop.Sequence,
				ZoneID:           string(stop.ZoneID),
				ArrivalTime:      stop.ArrivalTime.String(),
				UnloadingMinutes: stop.UnloadingMinutes,
				DepartureTime:    stop.DepartureTime.String(),
			})
		}
		section.Schedule = append(section.Schedule, rsDoc)
	}

	return section
}

func outcomeSection(rec *entities.CycleRecord) OutcomeSection {
	section := OutcomeSection{
		ActualResults: make([]OutcomeDocument, 0, len(rec.Outcomes)),
		Analysis: AnalysisDocument{
			OverallSuccessRate:       rec.Analysis.OverallSuccessRate.InexactFloat64(),
			ZonesFullyServed:         zoneIDsDoc(rec.Analysis.ZonesFullyServed),
			ZonesPartiallyServed:     zoneIDsDoc(rec.Analysis.ZonesPartiallyServed),
			ZonesRequiringFollowup:   zoneIDsDoc(rec.Analysis.ZonesRequiringFollowup),
			PerformanceInsights:      rec.Analysis.PerformanceInsights,
			RecommendationsNextCycle: rec.Analysis.RecommendationsNextCycle,
			PriorityAdjustments:      rec.Analysis.PriorityAdjustments,
			ResourceReallocation: ReallocationDocument{
				Zones:           zoneIDsDoc(rec.Analysis.ResourceReallocation.Zones),
				ResourcesNeeded: quantitiesDoc(rec.Analysis.ResourceReallocation.ResourcesNeeded),
				Reason:          rec.Analysis.ResourceReallocation.Reason,
			},
		},
	}
	for _, o := range rec.Outcomes {
		section.ActualResults = append(section.ActualResults, OutcomeDocument{
			ZoneID:              string(o.ZoneID),
			ZoneName:            o.ZoneName,
			PlannedDelivery:     quantitiesDoc(o.PlannedDelivery),
			DeliveredPercentage: o.DeliveredPercentage.InexactFloat64(),
			Challenge:           string(o.Challenge),
			DeliveryStatus:      string(o.Status),
		})
	}
	for _, gap := range rec.Analysis.CriticalGaps {
		section.Analysis.CriticalGaps = append(section.Analysis.CriticalGaps, CriticalGapDocument{
			ZoneID:            string(gap.ZoneID),
			GapDescription:    gap.GapDescription,
			Urgency:           gap.Urgency,
			RecommendedAction: gap.RecommendedAction,
		})
	}
	for _, ch := range rec.Analysis.ChallengesIdentified {
		section.Analysis.ChallengesIdentified = append(section.Analysis.ChallengesIdentified, ChallengeDocument{
			ChallengeType: string(ch.ChallengeType),
			ZonesAffected: ch.ZonesAffected,
			Impact:        ch.Impact,
			Mitigation:    ch.Mitigation,
		})
	}
	return section
}

func quantitiesDoc(quantities map[entities.ResourceKind]entities.Quantity) map[string]int64 {
	out := make(map[string]int64, len(quantities))
	for kind, qty := range quantities {
		out[string(kind)] = int64(qty)
	}
	return out
}

func zoneIDsDoc(ids []entities.ZoneID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}
