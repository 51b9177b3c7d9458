package repositories

import (
	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// ZoneSource provides the per-cycle snapshot of zones and available resources.
// Implementations may simulate data, load fixtures, or wrap a real registry;
// each call to Zones begins a fresh snapshot for one cycle.
type ZoneSource interface {
	// Zones returns the current settlement zone records
	Zones() ([]entities.Zone, error)

	// AvailableResources returns the resource pool for the given scenario
	AvailableResources(scenario entities.Scenario) (*entities.ResourcePool, error)
}
