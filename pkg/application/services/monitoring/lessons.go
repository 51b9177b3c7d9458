package monitoring

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// GenerateLessonsLearned distills a cycle's analysis into a lessons document
func (s *Service) GenerateLessonsLearned(analysis entities.OutcomeAnalysis) entities.Lessons {
	lessons := entities.Lessons{}

	if analysis.OverallSuccessRate.GreaterThanOrEqual(decimal.NewFromInt(90)) {
		lessons.Successes = append(lessons.Successes,
			fmt.Sprintf("High overall success rate of %s%%", analysis.OverallSuccessRate))
	}
	if len(analysis.ZonesFullyServed) > 0 {
		lessons.Successes = append(lessons.Successes,
			fmt.Sprintf("Successfully served %d zones completely", len(analysis.ZonesFullyServed)))
	}

	for _, ch := range analysis.ChallengesIdentified {
		lessons.Challenges = append(lessons.Challenges,
			fmt.Sprintf("%s: %s", ch.ChallengeType, ch.Impact))
	}

	recs := analysis.RecommendationsNextCycle
	if len(recs) > 3 {
		recs = recs[:3]
	}
	lessons.BestPractices = append(lessons.BestPractices, recs...)

	if len(analysis.ZonesRequiringFollowup) > 0 {
		lessons.AreasForImprovement = append(lessons.AreasForImprovement,
			fmt.Sprintf("%d zones need follow-up deliveries", len(analysis.ZonesRequiringFollowup)))
	}
	for _, gap := range analysis.CriticalGaps {
		lessons.AreasForImprovement = append(lessons.AreasForImprovement, gap.GapDescription)
	}

	return lessons
}
