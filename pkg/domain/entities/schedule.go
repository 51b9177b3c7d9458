package entities

import (
	"fmt"
	"math"
)

// ClockTime is a time of day on a fractional-hour clock (e.g. 8.5 = 08:30).
// The clock does not roll over at midnight: back-to-back routes late in the
// day produce times past 24:00 rather than wrapping to a second calendar day.
type ClockTime float64

// Add returns the clock time advanced by the given number of hours
func (t ClockTime) Add(hours float64) ClockTime {
	return t + ClockTime(hours)
}

// Before reports whether t is earlier than u
func (t ClockTime) Before(u ClockTime) bool {
	return t < u
}

// String formats the clock time as HH:MM
func (t ClockTime) String() string {
	hours := int(t)
	minutes := int(math.Round((float64(t) - float64(hours)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// StopSchedule is the planned arrival and departure at one zone on a route
type StopSchedule struct {
	Sequence         int
	ZoneID           ZoneID
	ArrivalTime      ClockTime
	UnloadingMinutes int
	DepartureTime    ClockTime
}

// RouteSchedule is the time-of-day itinerary for one route
type RouteSchedule struct {
	RouteID   int
	StartTime ClockTime
	Stops     []StopSchedule
	EndTime   ClockTime
}
