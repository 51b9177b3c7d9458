// Package execution simulates field delivery of allocated resources.
package execution

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// challengeProb pairs a disruption with its draw probability and the
// multiplier it applies to the base delivery rate
type challengeProb struct {
	challenge  entities.Challenge
	prob       float64
	multiplier float64
}

var challengeTable = []challengeProb{
	{entities.ChallengeNone, 0.65, 1.00},
	{entities.ChallengeWeatherDelay, 0.15, 0.95},
	{entities.ChallengeRoadConditions, 0.10, 0.85},
	{entities.ChallengeSecurityConcern, 0.07, 0.80},
	{entities.ChallengeVehicleBreakdown, 0.03, 0.75},
}

// Simulator produces stochastic but seed-reproducible delivery outcomes
type Simulator struct {
	rng *rand.Rand
	log *logrus.Entry
}

// NewSimulator creates a delivery simulator with its own seeded source
func NewSimulator(seed int64, log *logrus.Logger) *Simulator {
	return &Simulator{
		rng: rand.New(rand.NewSource(seed)),
		log: log.WithField("component", "execution"),
	}
}

// SimulateDelivery produces one outcome per allocation, in allocation order.
// Each zone draws a base rate from U[0.85,1.0] and at most one challenge;
// the challenge multiplier degrades the base rate. The delivery status is
// derived from the rounded percentage so the two never disagree.
func (s *Simulator) SimulateDelivery(allocations []entities.Allocation) ([]entities.Outcome, error) {
	if len(allocations) == 0 {
		return nil, fmt.Errorf("no allocations to deliver")
	}

	outcomes := make([]entities.Outcome, 0, len(allocations))
	for _, alloc := range allocations {
		base := 0.85 + s.rng.Float64()*0.15
		ch := s.drawChallenge()

		pct := decimal.NewFromFloat(base * ch.multiplier * 100).Round(1)

		planned := make(map[entities.ResourceKind]entities.Quantity, len(alloc.Quantities))
		for kind, qty := range alloc.Quantities {
			planned[kind] = qty
		}

		outcomes = append(outcomes, entities.Outcome{
			ZoneID:              alloc.ZoneID,
			ZoneName:            alloc.ZoneName,
			PlannedDelivery:     planned,
			DeliveredPercentage: pct,
			Challenge:           ch.challenge,
			Status:              entities.StatusForDelivered(pct),
		})
	}

	s.log.WithField("zones", len(outcomes)).Info("delivery simulation complete")
	return outcomes, nil
}

// drawChallenge samples the challenge table by cumulative probability.
// The table sums to 1.0; the final row absorbs any floating point remainder.
func (s *Simulator) drawChallenge() challengeProb {
	r := s.rng.Float64()
	cumulative := 0.0
	for _, row := range challengeTable {
		cumulative += row.prob
		if r < cumulative {
			return row
		}
	}
	return challengeTable[len(challengeTable)-1]
}
