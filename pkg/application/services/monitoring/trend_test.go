package monitoring

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

func analysisWithRate(rate float64) entities.OutcomeAnalysis {
	return entities.OutcomeAnalysis{OverallSuccessRate: decimal.NewFromFloat(rate)}
}

func TestTrackHistoricalPerformanceFirstCycle(t *testing.T) {
	svc := NewService(nil, testLogger())

	trend := svc.TrackHistoricalPerformance(analysisWithRate(80), nil)

	if trend.Trend != entities.TrendFirstCycle {
		t.Errorf("trend = %s, want first cycle", trend.Trend)
	}
	if trend.TotalCyclesCompleted != 1 {
		t.Errorf("cycles = %d, want 1", trend.TotalCyclesCompleted)
	}
	if trend.BestCycleNumber != 1 {
		t.Errorf("best cycle = %d, want 1", trend.BestCycleNumber)
	}
}

func TestTrackHistoricalPerformanceBands(t *testing.T) {
	svc := NewService(nil, testLogger())
	previous := []entities.OutcomeAnalysis{analysisWithRate(80)}

	tests := []struct {
		name    string
		current float64
		want    entities.Trend
	}{
		{"well above band", 90.0, entities.TrendImproving},
		{"just above band", 85.1, entities.TrendImproving},
		{"exactly at band", 85.0, entities.TrendStable},
		{"unchanged", 80.0, entities.TrendStable},
		{"exactly at lower band", 75.0, entities.TrendStable},
		{"just below band", 74.9, entities.TrendDeclining},
		{"well below band", 70.0, entities.TrendDeclining},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := svc.TrackHistoricalPerformance(analysisWithRate(tt.current), previous)
			if trend.Trend != tt.want {
				t.Errorf("current %.1f vs avg 80: trend = %s, want %s", tt.current, trend.Trend, tt.want)
			}
		})
	}
}

func TestTrackHistoricalPerformanceAverages(t *testing.T) {
	svc := NewService(nil, testLogger())
	previous := []entities.OutcomeAnalysis{
		analysisWithRate(70),
		analysisWithRate(81),
	}

	trend := svc.TrackHistoricalPerformance(analysisWithRate(90), previous)

	if !trend.AveragePreviousRate.Equal(decimal.NewFromFloat(75.5)) {
		t.Errorf("average previous = %s, want 75.5", trend.AveragePreviousRate)
	}
	if !trend.ImprovementPercentage.Equal(decimal.NewFromFloat(14.5)) {
		t.Errorf("improvement = %s, want 14.5", trend.ImprovementPercentage)
	}
	if trend.TotalCyclesCompleted != 3 {
		t.Errorf("cycles = %d, want 3", trend.TotalCyclesCompleted)
	}
}

func TestTrackHistoricalPerformanceBestCycle(t *testing.T) {
	svc := NewService(nil, testLogger())

	t.Run("best in history", func(t *testing.T) {
		previous := []entities.OutcomeAnalysis{
			analysisWithRate(70),
			analysisWithRate(95),
			analysisWithRate(80),
		}
		trend := svc.TrackHistoricalPerformance(analysisWithRate(85), previous)
		if trend.BestCycleNumber != 2 {
			t.Errorf("best cycle = %d, want 2", trend.BestCycleNumber)
		}
	})

	t.Run("current is best", func(t *testing.T) {
		previous := []entities.OutcomeAnalysis{
			analysisWithRate(70),
			analysisWithRate(80),
		}
		trend := svc.TrackHistoricalPerformance(analysisWithRate(95), previous)
		if trend.BestCycleNumber != 3 {
			t.Errorf("best cycle = %d, want 3", trend.BestCycleNumber)
		}
	})
}
