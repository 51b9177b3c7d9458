// Package assessment ranks settlement zones by humanitarian priority.
package assessment

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
	"github.com/reliefops/aidcycle/pkg/infrastructure/advisory"
)

// Advisor proposes a priority assessment for a single zone. A nil Advisor
// on the Service means the deterministic scorer runs for every zone.
type Advisor interface {
	AssessZone(ctx context.Context, zone entities.Zone) (entities.Assessment, error)
}

// Service assesses all zones and produces a stable priority ranking
type Service struct {
	advisor Advisor
	log     *logrus.Entry
}

// NewService creates an assessment service; advisor may be nil
func NewService(advisor Advisor, log *logrus.Logger) *Service {
	return &Service{
		advisor: advisor,
		log:     log.WithField("component", "assessment"),
	}
}

// AssessAllZones scores every zone and returns assessments ordered by
// priority descending, ties broken by input order. A malformed advisory
// response falls back to the deterministic scorer for that zone; transport
// failures abort the phase.
func (s *Service) AssessAllZones(ctx context.Context, zones []entities.Zone) ([]entities.Assessment, error) {
	if len(zones) == 0 {
		return nil, fmt.Errorf("no zones to assess")
	}

	assessments := make([]entities.Assessment, 0, len(zones))
	for _, zone := range zones {
		a, err := s.assessZone(ctx, zone)
		if err != nil {
			return nil, fmt.Errorf("failed to assess zone %s: %w", zone.ZoneID, err)
		}
		assessments = append(assessments, a)
	}

	entities.SortByPriority(assessments)

	s.log.WithFields(logrus.Fields{
		"zones":    len(assessments),
		"top_zone": assessments[0].ZoneID,
		"top_score": assessments[0].PriorityScore,
	}).Info("zone assessment complete")

	return assessments, nil
}

func (s *Service) assessZone(ctx context.Context, zone entities.Zone) (entities.Assessment, error) {
	if s.advisor == nil {
		return ScoreZone(zone), nil
	}

	a, err := s.advisor.AssessZone(ctx, zone)
	if err == nil {
		return a, nil
	}
	if advisory.IsParseError(err) {
		s.log.WithField("zone", zone.ZoneID).WithError(err).
			Warn("malformed advisory assessment, using deterministic scoring")
		return ScoreZone(zone), nil
	}
	return entities.Assessment{}, err
}

// GenerateNeedsReport summarizes a ranked assessment list
func (s *Service) GenerateNeedsReport(assessments []entities.Assessment) (entities.NeedsReport, error) {
	if len(assessments) == 0 {
		return entities.NeedsReport{}, fmt.Errorf("no assessments to report on")
	}

	critical := 0
	high := 0
	total := decimal.Zero
	needCounts := map[string]int{}
	for _, a := range assessments {
		switch {
		case a.PriorityScore.GreaterThanOrEqual(decimal.NewFromInt(75)):
			critical++
		case a.PriorityScore.GreaterThanOrEqual(decimal.NewFromInt(60)):
			high++
		}
		total = total.Add(a.PriorityScore)
		for _, need := range a.CriticalNeeds {
			needCounts[need]++
		}
	}

	topN := 5
	if len(assessments) < topN {
		topN = len(assessments)
	}
	top := make([]entities.ZoneRank, 0, topN)
	for _, a := range assessments[:topN] {
		top = append(top, entities.ZoneRank{
			ZoneID:        a.ZoneID,
			ZoneName:      a.ZoneName,
			PriorityScore: a.PriorityScore,
		})
	}

	return entities.NeedsReport{
		TotalZonesAssessed:   len(assessments),
		CriticalZones:        critical,
		HighPriorityZones:    high,
		AveragePriorityScore: total.Div(decimal.NewFromInt(int64(len(assessments)))).Round(1),
		MostCommonNeeds:      mostCommonNeeds(needCounts, 5),
		TopPriorityZones:     top,
	}, nil
}

// mostCommonNeeds keeps the n highest-count needs, breaking count ties by name
func mostCommonNeeds(counts map[string]int, n int) map[string]int {
	type needCount struct {
		need  string
		count int
	}
	ordered := make([]needCount, 0, len(counts))
	for need, count := range counts {
		ordered = append(ordered, needCount{need, count})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].need < ordered[j].need
	})
	if len(ordered) > n {
		ordered = ordered[:n]
	}
	out := make(map[string]int, len(ordered))
	for _, nc := range ordered {
		out[nc.need] = nc.count
	}
	return out
}
