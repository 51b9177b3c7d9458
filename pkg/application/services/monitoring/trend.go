package monitoring

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/reliefops/aidcycle/pkg/domain/entities"
)

// trendBand is the success-rate delta (in percentage points) within which
// performance counts as stable rather than improving or declining
var trendBand = decimal.NewFromInt(5)

// TrackHistoricalPerformance compares the current cycle's success rate
// against the mean of all previous cycles. With no history the result is the
// first-cycle sentinel and carries no rates.
func (s *Service) TrackHistoricalPerformance(current entities.OutcomeAnalysis, previous []entities.OutcomeAnalysis) entities.TrendAnalysis {
	if len(previous) == 0 {
		return entities.TrendAnalysis{
			Trend:                entities.TrendFirstCycle,
			TotalCyclesCompleted: 1,
			BestCycleNumber:      1,
			Message:              "No historical data available yet",
		}
	}

	sum := decimal.Zero
	for _, p := range previous {
		sum = sum.Add(p.OverallSuccessRate)
	}
	avgPrevious := sum.Div(decimal.NewFromInt(int64(len(previous)))).Round(1)

	improvement := current.OverallSuccessRate.Sub(avgPrevious).Round(1)

	trend := entities.TrendStable
	switch {
	case improvement.GreaterThan(trendBand):
		trend = entities.TrendImproving
	case improvement.LessThan(trendBand.Neg()):
		trend = entities.TrendDeclining
	}

	best := 1
	bestRate := previous[0].OverallSuccessRate
	for i, p := range previous[1:] {
		if p.OverallSuccessRate.GreaterThan(bestRate) {
			bestRate = p.OverallSuccessRate
			best = i + 2
		}
	}
	if current.OverallSuccessRate.GreaterThan(bestRate) {
		best = len(previous) + 1
	}

	return entities.TrendAnalysis{
		Trend:                 trend,
		CurrentSuccessRate:    current.OverallSuccessRate,
		AveragePreviousRate:   avgPrevious,
		ImprovementPercentage: improvement,
		TotalCyclesCompleted:  len(previous) + 1,
		BestCycleNumber:       best,
		Message:               fmt.Sprintf("Success rate changed by %s points against the prior average", improvement),
	}
}
