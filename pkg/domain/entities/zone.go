package entities

// ZoneID represents a unique settlement zone identifier, stable for the
// lifetime of one cycle's snapshot
type ZoneID string

// RoadCondition describes the road quality between the depot and a zone
type RoadCondition string

const (
	RoadGood RoadCondition = "good"
	RoadFair RoadCondition = "fair"
	RoadPoor RoadCondition = "poor"
)

// Accessibility describes how difficult a zone is to reach
type Accessibility string

const (
	AccessEasy      Accessibility = "easy"
	AccessModerate  Accessibility = "moderate"
	AccessDifficult Accessibility = "difficult"
)

// SecurityLevel describes the security situation in a zone
type SecurityLevel string

const (
	SecuritySafe    SecurityLevel = "safe"
	SecurityCaution SecurityLevel = "caution"
	SecurityRisk    SecurityLevel = "risk"
)

// Zone represents a settlement zone with its needs, logistics and history attributes
type Zone struct {
	ZoneID   ZoneID
	ZoneName string

	Population          int
	ChildrenRatio       float64 // fraction of population in [0,1]
	ElderlyRatio        float64 // fraction of population in [0,1]
	PregnantWomen       int
	ChronicIllnessCases int

	// Shortage indices in [0,1], higher = more severe shortage
	FoodShortage    float64
	WaterShortage   float64
	MedicalSeverity float64
	ShelterDamage   float64
	SanitationNeed  float64

	DistanceFromDepotKm float64
	RoadCondition       RoadCondition
	Accessibility       Accessibility
	SecurityLevel       SecurityLevel

	LastAidReceivedDays     int
	PreviousAidSatisfaction float64

	Latitude  float64
	Longitude float64
}

// TotalPopulation sums the population across zones
func TotalPopulation(zones []Zone) int {
	total := 0
	for _, z := range zones {
		total += z.Population
	}
	return total
}

// FindZone returns the zone with the given ID, or false if it is not in the snapshot
func FindZone(zones []Zone, id ZoneID) (Zone, bool) {
	for _, z := range zones {
		if z.ZoneID == id {
			return z, true
		}
	}
	return Zone{}, false
}
