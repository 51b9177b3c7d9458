// Package allocation assigns pooled resources to prioritized zones under
// the conservation invariant.
package allocation

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
	"github.com/reliefops/aidcycle/pkg/infrastructure/advisory"
)

// Advisor proposes an allocation plan for the ranked target zones
type Advisor interface {
	ProposeAllocations(ctx context.Context, ranked []entities.Assessment, pool *entities.ResourcePool) ([]entities.Allocation, error)
}

// Service produces validated allocations for one cycle
type Service struct {
	advisor         Advisor
	validator       *Validator
	reserveFraction float64
	log             *logrus.Entry
}

// NewService creates an allocation service; advisor may be nil
func NewService(advisor Advisor, reserveFraction float64, log *logrus.Logger) *Service {
	return &Service{
		advisor:         advisor,
		validator:       NewValidator(log),
		reserveFraction: reserveFraction,
		log:             log.WithField("component", "allocation"),
	}
}

// AllocateResources builds an allocation for the top maxZones ranked zones.
// An advisory proposal is validated against the pool; a malformed proposal
// falls back to the deterministic triangular allocation. Either way the
// returned allocations satisfy the conservation invariant.
func (s *Service) AllocateResources(ctx context.Context, ranked []entities.Assessment, pool *entities.ResourcePool, maxZones int) ([]entities.Allocation, error) {
	targets := ranked
	if maxZones > 0 && len(targets) > maxZones {
		targets = targets[:maxZones]
	}
	if len(targets) == 0 {
		return nil, nil
	}

	proposals, err := s.propose(ctx, targets, pool)
	if err != nil {
		return nil, err
	}

	validated := s.validator.Validate(proposals, pool)
	s.log.WithField("zones", len(validated)).Info("resource allocation complete")
	return validated, nil
}

func (s *Service) propose(ctx context.Context, targets []entities.Assessment, pool *entities.ResourcePool) ([]entities.Allocation, error) {
	if s.advisor == nil {
		return Fallback(targets, pool, s.reserveFraction), nil
	}

	proposals, err := s.advisor.ProposeAllocations(ctx, targets, pool)
	if err == nil {
		return proposals, nil
	}
	if advisory.IsParseError(err) {
		s.log.WithError(err).Warn("malformed advisory allocation, using fallback strategy")
		return Fallback(targets, pool, s.reserveFraction), nil
	}
	return nil, err
}

// Coverage reports what share of zones and population the allocations reach
func (s *Service) Coverage(allocations []entities.Allocation, zones []entities.Zone) entities.CoverageStats {
	stats := entities.CoverageStats{
		ZonesServed:     len(allocations),
		TotalZones:      len(zones),
		TotalPopulation: entities.TotalPopulation(zones),
	}
	for _, a := range allocations {
		if zone, ok := entities.FindZone(zones, a.ZoneID); ok {
			stats.PopulationServed += zone.Population
		}
	}
	if stats.TotalPopulation > 0 {
		stats.CoveragePercentage = decimal.NewFromInt(int64(stats.PopulationServed)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(stats.TotalPopulation))).
			Round(1)
	}
	return stats
}
