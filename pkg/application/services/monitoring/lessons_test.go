package monitoring

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

func TestGenerateLessonsLearnedSuccesses(t *testing.T) {
	svc := NewService(nil, testLogger())

	analysis := entities.OutcomeAnalysis{
		OverallSuccessRate: decimal.NewFromFloat(92.5),
		ZonesFullyServed:   []entities.ZoneID{"Z01", "Z02"},
	}

	lessons := svc.GenerateLessonsLearned(analysis)
	if len(lessons.Successes) != 2 {
		t.Fatalf("got %d successes, want 2: %v", len(lessons.Successes), lessons.Successes)
	}
	if !strings.Contains(lessons.Successes[0], "92.5") {
		t.Errorf("first success should cite the rate, got %q", lessons.Successes[0])
	}
	if !strings.Contains(lessons.Successes[1], "2 zones") {
		t.Errorf("second success should cite the zone count, got %q", lessons.Successes[1])
	}
}

func TestGenerateLessonsLearnedBelowThreshold(t *testing.T) {
	svc := NewService(nil, testLogger())

	lessons := svc.GenerateLessonsLearned(entities.OutcomeAnalysis{
		OverallSuccessRate: decimal.NewFromFloat(89.9),
	})
	if len(lessons.Successes) != 0 {
		t.Errorf("rate below 90 with no served zones should yield no successes, got %v", lessons.Successes)
	}
}

func TestGenerateLessonsLearnedChallengesAndGaps(t *testing.T) {
	svc := NewService(nil, testLogger())

	analysis := entities.OutcomeAnalysis{
		OverallSuccessRate: decimal.NewFromFloat(70),
		ChallengesIdentified: []entities.ChallengeReport{
			{ChallengeType: entities.ChallengeWeatherDelay, Impact: "two routes delayed"},
		},
		ZonesRequiringFollowup: []entities.ZoneID{"Z03"},
		CriticalGaps: []entities.CriticalGap{
			{ZoneID: "Z03", GapDescription: "medical kits short by 40"},
		},
		RecommendationsNextCycle: []string{"a", "b", "c", "d"},
	}

	lessons := svc.GenerateLessonsLearned(analysis)
	if len(lessons.Challenges) != 1 || lessons.Challenges[0] != "weather_delay: two routes delayed" {
		t.Errorf("challenges = %v", lessons.Challenges)
	}
	if len(lessons.BestPractices) != 3 {
		t.Errorf("best practices capped at 3, got %d", len(lessons.BestPractices))
	}
	if len(lessons.AreasForImprovement) != 2 {
		t.Fatalf("areas = %v, want followup count plus gap", lessons.AreasForImprovement)
	}
	if lessons.AreasForImprovement[1] != "medical kits short by 40" {
		t.Errorf("gap description missing: %v", lessons.AreasForImprovement)
	}
}
