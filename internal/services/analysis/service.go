// Package analysis orchestrates one observation run: classify, score,
// aggregate, observe macro and political context, detect alerts and
// triggers, and record the day's aggregate into history.
package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/interfaces"
	"github.com/ternarybob/specula/internal/models"
	"github.com/ternarybob/specula/internal/services/alerts"
	"github.com/ternarybob/specula/internal/services/history"
	"github.com/ternarybob/specula/internal/services/macro"
	"github.com/ternarybob/specula/internal/services/political"
	"github.com/ternarybob/specula/internal/services/scorer"
	"github.com/ternarybob/specula/internal/services/triggers"
)

// Service runs the full observation pipeline over a submitted batch.
// Items are independent: one malformed item is skipped, never fatal.
type Service struct {
	classifier interfaces.Classifier
	scorer     *scorer.Service
	macro      *macro.Observer
	political  *political.Detector
	alerts     *alerts.Detector
	triggers   *triggers.Detector
	history    *history.Service
	logger     arbor.ILogger
}

// NewService creates an analysis service over the given collaborators.
func NewService(
	classifier interfaces.Classifier,
	scorerSvc *scorer.Service,
	macroObs *macro.Observer,
	politicalDet *political.Detector,
	alertDet *alerts.Detector,
	triggerDet *triggers.Detector,
	historySvc *history.Service,
	logger arbor.ILogger,
) *Service {
	return &Service{
		classifier: classifier,
		scorer:     scorerSvc,
		macro:      macroObs,
		political:  politicalDet,
		alerts:     alertDet,
		triggers:   triggerDet,
		history:    historySvc,
		logger:     logger,
	}
}

// SeedAlertHistory restores the alert detector's score sequence from
// persisted daily records so reversal and day-over-day rules survive a
// restart. Call once at startup.
func (s *Service) SeedAlertHistory(ctx context.Context) error {
	records, err := s.history.GetLastNDays(ctx, history.RetentionDays)
	if err != nil {
		return err
	}

	seed := make([]models.AggregateScores, 0, len(records))
	for _, r := range records {
		seed = append(seed, models.AggregateScores{
			TotalScore: r.TotalScore,
			NewsCount:  r.NewsCount,
		})
	}
	s.alerts.Seed(seed)

	s.logger.Info().
		Int("count", len(seed)).
		Msg("Alert detector seeded from daily history")

	return nil
}

// Analyze runs the pipeline over one batch and returns the structured
// result. The day's aggregate is recorded into history as a side
// effect; a failed history write degrades the comparison section but
// never fails the run.
func (s *Service) Analyze(ctx context.Context, items []models.NewsItem) (*models.AnalysisResult, error) {
	runID := uuid.New().String()
	started := time.Now()

	accepted, skipped := normalize(items)

	classified := s.classifier.ClassifyBatch(accepted)
	scored := s.scorer.ScoreBatch(classified)

	aggregate := scorer.Aggregate(scored)
	observation := s.macro.Observe(accepted)
	priority := s.macro.DetectPriority(accepted)
	politicalEvents := s.political.Detect(accepted)
	ratios := scorer.ComputeRatios(scored, observation.MatchedItems)

	// Alerts compare against the sequence before today's entry joins it.
	alertResults := s.alerts.DetectAlerts(aggregate)
	s.alerts.AddDailyScore(aggregate)

	if err := s.history.AddDailyRecord(ctx, aggregate, ratios); err != nil {
		s.logger.Warn().Err(err).Str("run_id", runID).Msg("Failed to persist daily record")
	}

	highZeroDays, err := s.history.ConsecutiveHighZeroDays(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("run_id", runID).Msg("Failed to count high-zero streak")
		highZeroDays = 0
	}
	// Today's batch extends the streak immediately; the noise trigger
	// must see it on the day it happens, not one run later.
	if ratios.ZeroRatio > history.HighZeroThreshold {
		highZeroDays++
	}
	triggerResults := s.triggers.Detect(ratios, highZeroDays)

	comparison, err := s.history.Get7DayComparison(ctx, aggregate, ratios)
	if err != nil {
		s.logger.Warn().Err(err).Str("run_id", runID).Msg("Failed to build history comparison")
		comparison = nil
	}

	result := &models.AnalysisResult{
		RunID:           runID,
		GeneratedAt:     started,
		SubmittedCount:  len(items),
		ScoredCount:     len(scored),
		SkippedCount:    skipped,
		Items:           scored,
		Aggregate:       aggregate,
		Ratios:          ratios,
		Alerts:          alertResults,
		Triggers:        triggerResults,
		Macro:           observation,
		PriorityMacro:   priority,
		PoliticalEvents: politicalEvents,
		Comparison:      comparison,
	}

	s.logger.Info().
		Str("run_id", runID).
		Int("submitted", result.SubmittedCount).
		Int("scored", result.ScoredCount).
		Int("skipped", result.SkippedCount).
		Float64("total_score", aggregate.TotalScore).
		Int("alerts", len(alertResults)).
		Int("triggers", len(triggerResults)).
		Str("duration", time.Since(started).String()).
		Msg("Analysis run completed")

	return result, nil
}

// MovingAverage exposes the alert detector's trailing average over the
// given window, for reporting collaborators.
func (s *Service) MovingAverage(window int) (float64, bool) {
	return s.alerts.GetMovingAverage(window)
}

// normalize drops items with empty text and defaults a missing origin
// to domestic. Invalid origins are also treated as domestic rather than
// rejected; origin only strengthens foreign items, so the conservative
// reading is the unweighted one.
func normalize(items []models.NewsItem) ([]models.NewsItem, int) {
	accepted := make([]models.NewsItem, 0, len(items))
	skipped := 0
	for _, item := range items {
		if strings.TrimSpace(item.Text) == "" {
			skipped++
			continue
		}
		if !item.Origin.Valid() {
			item.Origin = models.OriginDomestic
		}
		accepted = append(accepted, item)
	}
	return accepted, skipped
}
