package scorer

import (
	"math"

	"github.com/ternarybob/specula/internal/models"
)

// Aggregate reduces a scored batch into per-origin and total statistics.
// An empty batch yields a zeroed record; an empty origin subset
// contributes 0, never an undefined value. Pure reduction, no side
// effects.
func Aggregate(items []models.ScoredItem) models.AggregateScores {
	if len(items) == 0 {
		return models.AggregateScores{}
	}

	var totalSum, domesticSum, foreignSum int
	var domesticCount, foreignCount, zeroCount int

	for _, item := range items {
		totalSum += item.ImpactScore
		switch item.Origin {
		case models.OriginDomestic:
			domesticSum += item.ImpactScore
			domesticCount++
		case models.OriginForeign:
			foreignSum += item.ImpactScore
			foreignCount++
		}
		if item.ImpactScore == 0 {
			zeroCount++
		}
	}

	domesticAvg := 0.0
	if domesticCount > 0 {
		domesticAvg = float64(domesticSum) / float64(domesticCount)
	}
	foreignAvg := 0.0
	if foreignCount > 0 {
		foreignAvg = float64(foreignSum) / float64(foreignCount)
	}
	totalAvg := float64(totalSum) / float64(len(items))

	return models.AggregateScores{
		TotalScore:         round1(totalAvg),
		DomesticScore:      round1(domesticAvg),
		ForeignScore:       round1(foreignAvg),
		DomesticForeignGap: round1(domesticAvg - foreignAvg),
		NewsCount:          len(items),
		ZeroScoreCount:     zeroCount,
	}
}

// ComputeRatios derives the percentage ratios used by the trigger rules
// and the daily history record. macroMatched is the count of distinct
// items that touched at least one macro topic (see services/macro).
func ComputeRatios(items []models.ScoredItem, macroMatched int) models.BatchRatios {
	if len(items) == 0 {
		return models.BatchRatios{}
	}

	var zero, plus2, minus2 int
	for _, item := range items {
		switch {
		case item.ImpactScore == 0:
			zero++
		case item.ImpactScore >= 2:
			plus2++
		case item.ImpactScore <= -2:
			minus2++
		}
	}

	total := float64(len(items))
	return models.BatchRatios{
		ZeroRatio:   round1(float64(zero) / total * 100),
		Plus2Ratio:  round1(float64(plus2) / total * 100),
		Minus2Ratio: round1(float64(minus2) / total * 100),
		MacroRatio:  round1(float64(macroMatched) / total * 100),
	}
}

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
