// Package alerts detects day-over-day and windowed changes in aggregate
// scores. The detector keeps an append-only in-memory sequence for the
// process lifetime; callers that need continuity across restarts seed
// it from persisted history.
package alerts

import (
	"fmt"
	"math"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/models"
)

const (
	// DailyChangeThreshold is the absolute day-over-day total-score
	// change that fires an alert.
	DailyChangeThreshold = 3.0

	// DailyChangeWarning upgrades the daily-change alert to warning.
	DailyChangeWarning = 5.0

	// MAWindow is the moving-average window for reversal detection.
	MAWindow = 3

	// GapThreshold is the absolute domestic/foreign gap that fires.
	GapThreshold = 5.0
)

// Detector evaluates independent alert rules against the current
// aggregate and the recorded sequence. Zero or more rules may fire.
type Detector struct {
	mu      sync.Mutex
	history []models.AggregateScores
	logger  arbor.ILogger
}

// NewDetector creates an alert detector with empty history.
func NewDetector(logger arbor.ILogger) *Detector {
	return &Detector{logger: logger}
}

// Seed replaces the detector history with records restored from
// persistence, oldest first. Intended for startup continuity.
func (d *Detector) Seed(history []models.AggregateScores) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.history = append([]models.AggregateScores(nil), history...)
}

// AddDailyScore appends unconditionally. There is no per-date
// de-duplication at this layer; date-keyed upserts belong to the
// history store.
func (d *Detector) AddDailyScore(scores models.AggregateScores) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.history = append(d.history, scores)
}

// HistoryLen returns the number of recorded entries.
func (d *Detector) HistoryLen() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.history)
}

// DetectAlerts evaluates all rules against the current aggregate.
// Detection does not record the current value; call AddDailyScore
// afterwards.
func (d *Detector) DetectAlerts(current models.AggregateScores) []models.Alert {
	d.mu.Lock()
	defer d.mu.Unlock()

	var result []models.Alert

	if alert := d.detectDailyChange(current); alert != nil {
		result = append(result, *alert)
	}
	if alert := d.detectMAReversal(); alert != nil {
		result = append(result, *alert)
	}
	if alert := detectGap(current); alert != nil {
		result = append(result, *alert)
	}

	if len(result) > 0 {
		d.logger.Info().
			Int("count", len(result)).
			Float64("total_score", current.TotalScore).
			Msg("Alerts detected")
	}

	return result
}

// detectDailyChange fires when the total score moved by at least
// DailyChangeThreshold against the previous record; warning severity at
// DailyChangeWarning and above.
func (d *Detector) detectDailyChange(current models.AggregateScores) *models.Alert {
	if len(d.history) < 1 {
		return nil
	}

	delta := current.TotalScore - d.history[len(d.history)-1].TotalScore
	if math.Abs(delta) < DailyChangeThreshold {
		return nil
	}

	severity := models.SeverityInfo
	if math.Abs(delta) >= DailyChangeWarning {
		severity = models.SeverityWarning
	}

	direction := "上昇"
	if delta < 0 {
		direction = "下落"
	}

	return &models.Alert{
		Type:     models.AlertDailyChange,
		Severity: severity,
		Message:  fmt.Sprintf("総合スコアが前日比 %+.1f 変化（%s傾向への変化）", delta, direction),
	}
}

// detectMAReversal fires when the average of the last MAWindow records
// sits on the other side of zero from the average of the MAWindow
// records ending one step earlier. Requires more than MAWindow records;
// the windows overlap by MAWindow-1 entries.
func (d *Detector) detectMAReversal() *models.Alert {
	if len(d.history) <= MAWindow {
		return nil
	}

	n := len(d.history)
	ma := windowAverage(d.history[n-MAWindow:])
	prevMA := windowAverage(d.history[n-MAWindow-1 : n-1])

	switch {
	case ma >= 0 && prevMA < 0:
		return &models.Alert{
			Type:     models.AlertMAReversal,
			Severity: models.SeverityInfo,
			Message:  fmt.Sprintf("%d日移動平均がプラス圏に転換（市場センチメント改善の可能性）", MAWindow),
		}
	case ma < 0 && prevMA >= 0:
		return &models.Alert{
			Type:     models.AlertMAReversal,
			Severity: models.SeverityWarning,
			Message:  fmt.Sprintf("%d日移動平均がマイナス圏に転換（市場センチメント悪化の可能性）", MAWindow),
		}
	}
	return nil
}

// detectGap fires when domestic and foreign means diverge by at least
// GapThreshold. Domestic optimism reads as info, domestic pessimism as
// warning.
func detectGap(current models.AggregateScores) *models.Alert {
	gap := current.DomesticForeignGap
	if math.Abs(gap) < GapThreshold {
		return nil
	}

	if gap > 0 {
		return &models.Alert{
			Type:     models.AlertDomesticForeignGap,
			Severity: models.SeverityInfo,
			Message:  fmt.Sprintf("国内スコアが海外より %+.1f 高い（国内市場が海外より楽観的）", gap),
		}
	}
	return &models.Alert{
		Type:     models.AlertDomesticForeignGap,
		Severity: models.SeverityWarning,
		Message:  fmt.Sprintf("国内スコアが海外より %.1f 低い（国内市場が海外より悲観的）", gap),
	}
}

// GetMovingAverage returns the average total score of the last window
// records, or false when not enough records exist.
func (d *Detector) GetMovingAverage(window int) (float64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if window <= 0 || len(d.history) < window {
		return 0, false
	}
	return windowAverage(d.history[len(d.history)-window:]), true
}

func windowAverage(records []models.AggregateScores) float64 {
	sum := 0.0
	for _, r := range records {
		sum += r.TotalScore
	}
	return sum / float64(len(records))
}
