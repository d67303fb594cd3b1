package history

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/interfaces"
	"github.com/ternarybob/specula/internal/models"
)

const (
	// RetentionDays bounds how far back daily records are kept.
	RetentionDays = 30

	// ComparisonDays is the trailing window used for run-over-history
	// comparison.
	ComparisonDays = 7

	// HighZeroThreshold marks a day as "mostly deferred" when more than
	// this percentage of items scored exactly zero.
	HighZeroThreshold = 80.0
)

// Service maintains the daily record store. Past data is comparison
// material only and never feeds forecasting or signals.
type Service struct {
	storage interfaces.HistoryStorage
	logger  arbor.ILogger
	now     func() time.Time
}

// NewService creates a new history service
func NewService(storage interfaces.HistoryStorage, logger arbor.ILogger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// AddDailyRecord records today's aggregate under today's date, updating
// in place when a record for today already exists. Records older than
// the retention window are pruned after each insert.
func (s *Service) AddDailyRecord(ctx context.Context, aggregate models.AggregateScores, ratios models.BatchRatios) error {
	today := s.now().Format(models.DateLayout)

	record := &models.DailyRecord{
		Date:        today,
		TotalScore:  aggregate.TotalScore,
		ZeroRatio:   ratios.ZeroRatio,
		Plus2Ratio:  ratios.Plus2Ratio,
		Minus2Ratio: ratios.Minus2Ratio,
		NewsCount:   aggregate.NewsCount,
		MacroRatio:  ratios.MacroRatio,
	}

	isNew, err := s.storage.Upsert(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to record daily history: %w", err)
	}

	if isNew {
		cutoff := s.now().AddDate(0, 0, -RetentionDays).Format(models.DateLayout)
		if _, err := s.storage.DeleteBefore(ctx, cutoff); err != nil {
			s.logger.Warn().Err(err).Str("cutoff", cutoff).Msg("Failed to prune daily history")
		}
	}

	s.logger.Debug().
		Str("date", today).
		Bool("new", isNew).
		Float64("total_score", aggregate.TotalScore).
		Msg("Daily history recorded")

	return nil
}

// GetLastNDays returns records from the past n calendar days, excluding
// today. Date strings compare lexically in chronological order.
func (s *Service) GetLastNDays(ctx context.Context, n int) ([]models.DailyRecord, error) {
	today := s.now().Format(models.DateLayout)
	cutoff := s.now().AddDate(0, 0, -n).Format(models.DateLayout)

	records, err := s.storage.ListRange(ctx, cutoff, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent history: %w", err)
	}
	return records, nil
}

// Get7DayComparison compares the current aggregate against the trailing
// 7-day averages. HasHistory is false when no prior records exist.
func (s *Service) Get7DayComparison(ctx context.Context, aggregate models.AggregateScores, ratios models.BatchRatios) (*models.HistoryComparison, error) {
	past, err := s.GetLastNDays(ctx, ComparisonDays)
	if err != nil {
		return nil, err
	}

	if len(past) == 0 {
		return &models.HistoryComparison{HasHistory: false, DaysCount: 0}, nil
	}

	var sumTotal, sumZero, sumPlus2, sumMinus2 float64
	for _, r := range past {
		sumTotal += r.TotalScore
		sumZero += r.ZeroRatio
		sumPlus2 += r.Plus2Ratio
		sumMinus2 += r.Minus2Ratio
	}
	n := float64(len(past))

	return &models.HistoryComparison{
		HasHistory:         true,
		DaysCount:          len(past),
		AvgTotalScore:      roundTo(sumTotal/n, 2),
		AvgZeroRatio:       roundTo(sumZero/n, 1),
		AvgPlus2Ratio:      roundTo(sumPlus2/n, 1),
		AvgMinus2Ratio:     roundTo(sumMinus2/n, 1),
		CurrentTotalScore:  aggregate.TotalScore,
		CurrentZeroRatio:   ratios.ZeroRatio,
		CurrentPlus2Ratio:  ratios.Plus2Ratio,
		CurrentMinus2Ratio: ratios.Minus2Ratio,
	}, nil
}

// ConsecutiveHighZeroDays counts the unbroken run of most-recent days,
// excluding today, whose zero ratio exceeded 80%. Gaps in the calendar
// do not break the run; only a recorded day at or below the threshold
// does.
func (s *Service) ConsecutiveHighZeroDays(ctx context.Context) (int, error) {
	records, err := s.storage.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load history: %w", err)
	}

	today := s.now().Format(models.DateLayout)
	count := 0
	// Records arrive sorted ascending; walk newest first.
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Date == today {
			continue
		}
		if records[i].ZeroRatio > HighZeroThreshold {
			count++
		} else {
			break
		}
	}
	return count, nil
}

func roundTo(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}
