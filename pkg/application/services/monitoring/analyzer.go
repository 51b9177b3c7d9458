// Package monitoring evaluates delivery outcomes and tracks performance
// across cycles.
package monitoring

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
	"github.com/reliefops/aidcycle/pkg/infrastructure/advisory"
)

// ErrNoOutcomes is returned when analysis is requested with nothing to analyze
var ErrNoOutcomes = fmt.Errorf("no delivery outcomes to analyze")

// Advisor proposes an outcome analysis for a completed delivery round
type Advisor interface {
	AnalyzeOutcomes(ctx context.Context, plan *entities.DeliveryPlan, outcomes []entities.Outcome, allocations []entities.Allocation) (entities.OutcomeAnalysis, error)
}

// Service analyzes outcomes and produces trend and lessons summaries
type Service struct {
	advisor Advisor
	log     *logrus.Entry
}

// NewService creates a monitoring service; advisor may be nil
func NewService(advisor Advisor, log *logrus.Logger) *Service {
	return &Service{
		advisor: advisor,
		log:     log.WithField("component", "monitoring"),
	}
}

// AnalyzeDeliveryOutcomes evaluates a cycle's delivery results. A malformed
// advisory analysis falls back to the deterministic partition-and-average
// evaluation; transport failures abort the phase.
func (s *Service) AnalyzeDeliveryOutcomes(ctx context.Context, plan *entities.DeliveryPlan, outcomes []entities.Outcome, allocations []entities.Allocation) (entities.OutcomeAnalysis, error) {
	if len(outcomes) == 0 {
		return entities.OutcomeAnalysis{}, ErrNoOutcomes
	}

	if s.advisor != nil {
		analysis, err := s.advisor.AnalyzeOutcomes(ctx, plan, outcomes, allocations)
		if err == nil {
			s.log.WithField("success_rate", analysis.OverallSuccessRate).Info("advisory outcome analysis accepted")
			return analysis, nil
		}
		if !advisory.IsParseError(err) {
			return entities.OutcomeAnalysis{}, err
		}
		s.log.WithError(err).Warn("malformed advisory analysis, using fallback evaluation")
	}

	analysis := fallbackAnalysis(outcomes)
	s.log.WithField("success_rate", analysis.OverallSuccessRate).Info("fallback outcome analysis complete")
	return analysis, nil
}

// fallbackAnalysis partitions zones by delivery status and averages the
// delivered percentages for the overall success rate.
func fallbackAnalysis(outcomes []entities.Outcome) entities.OutcomeAnalysis {
	analysis := entities.OutcomeAnalysis{
		PerformanceInsights: "Deterministic analysis of delivery percentages",
		RecommendationsNextCycle: []string{
			"Review delivery constraints",
			"Improve route planning",
		},
		PriorityAdjustments: "Increase focus on under-served zones",
	}

	total := decimal.Zero
	var followupNeeds map[entities.ResourceKind]entities.Quantity
	for _, o := range outcomes {
		total = total.Add(o.DeliveredPercentage)
		switch o.Status {
		case entities.DeliveryComplete:
			analysis.ZonesFullyServed = append(analysis.ZonesFullyServed, o.ZoneID)
		case entities.DeliveryPartial:
			analysis.ZonesPartiallyServed = append(analysis.ZonesPartiallyServed, o.ZoneID)
		default:
			analysis.ZonesRequiringFollowup = append(analysis.ZonesRequiringFollowup, o.ZoneID)
			if followupNeeds == nil {
				followupNeeds = make(map[entities.ResourceKind]entities.Quantity)
			}
			// The undelivered remainder of the planned quantities carries
			// into the next cycle's reallocation request.
			shortfall := decimal.NewFromInt(100).Sub(o.DeliveredPercentage)
			for kind, qty := range o.PlannedDelivery {
				missing := decimal.NewFromInt(int64(qty)).Mul(shortfall).Div(decimal.NewFromInt(100)).Floor()
				followupNeeds[kind] += entities.Quantity(missing.IntPart())
			}
		}
	}

	analysis.OverallSuccessRate = total.Div(decimal.NewFromInt(int64(len(outcomes)))).Round(1)

	if len(analysis.ZonesRequiringFollowup) > 0 {
		analysis.ResourceReallocation = entities.ReallocationRequest{
			Zones:           analysis.ZonesRequiringFollowup,
			ResourcesNeeded: followupNeeds,
			Reason:          "Deliveries fell below the partial threshold",
		}
	}

	return analysis
}
