package logistics

import (
	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// Scheduling constants. The first route departs at the start time; each stop
// on a route occupies one hour (travel plus unloading), with the vehicle
// arriving on the hour and unloading for thirty minutes. Routes run back to
// back with a half-hour turnaround between them.
const (
	scheduleStart         = entities.ClockTime(8.0)
	hoursPerStop          = 1.0
	unloadingMinutes      = 30
	interRouteBufferHours = 0.5
)

// GenerateDeliverySchedule builds a time-of-day itinerary for each route.
// A route's first stop is served at its start time, each later stop one hour
// after the previous, and the route ends one hour after its last arrival.
// Route N+1 starts after route N ends plus the turnaround buffer, so stop
// times are strictly increasing across the whole schedule.
func (p *Planner) GenerateDeliverySchedule(plan *entities.DeliveryPlan) []entities.RouteSchedule {
	schedules := make([]entities.RouteSchedule, 0, len(plan.Routes))

	start := scheduleStart
	for _, route := range plan.Routes {
		rs := entities.RouteSchedule{
			RouteID:   route.RouteID,
			StartTime: start,
		}

		for i, zoneID := range route.ZoneSequence {
			arrival := start.Add(float64(i) * hoursPerStop)
			rs.Stops = append(rs.Stops, entities.StopSchedule{
				Sequence:         i + 1,
				ZoneID:           zoneID,
				ArrivalTime:      arrival,
				UnloadingMinutes: unloadingMinutes,
				DepartureTime:    arrival.Add(float64(unloadingMinutes) / 60),
			})
		}

		rs.EndTime = start.Add(float64(len(route.ZoneSequence)) * hoursPerStop)

		schedules = append(schedules, rs)
		start = rs.EndTime.Add(interRouteBufferHours)
	}

	return schedules
}
