package alerts

import (
	"strings"
	"testing"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/models"
)

func seeded(totals ...float64) *Detector {
	d := NewDetector(arbor.NewLogger())
	history := make([]models.AggregateScores, 0, len(totals))
	for _, total := range totals {
		history = append(history, models.AggregateScores{TotalScore: total})
	}
	d.Seed(history)
	return d
}

func findAlert(alerts []models.Alert, alertType models.AlertType) *models.Alert {
	for i := range alerts {
		if alerts[i].Type == alertType {
			return &alerts[i]
		}
	}
	return nil
}

func TestDetectDailyChange(t *testing.T) {
	tests := []struct {
		name         string
		previous     float64
		current      float64
		wantFired    bool
		wantSeverity models.AlertSeverity
		wantInMsg    string
	}{
		{
			name:     "below threshold stays quiet",
			previous: 2.0,
			current:  4.9,
		},
		{
			name:         "exactly at threshold fires info",
			previous:     2.0,
			current:      5.0,
			wantFired:    true,
			wantSeverity: models.SeverityInfo,
			wantInMsg:    "上昇",
		},
		{
			name:         "warning at larger swing",
			previous:     2.0,
			current:      7.0,
			wantFired:    true,
			wantSeverity: models.SeverityWarning,
			wantInMsg:    "上昇",
		},
		{
			name:         "negative direction reported",
			previous:     1.0,
			current:      -2.5,
			wantFired:    true,
			wantSeverity: models.SeverityInfo,
			wantInMsg:    "下落",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := seeded(tt.previous)
			alerts := d.DetectAlerts(models.AggregateScores{TotalScore: tt.current})
			alert := findAlert(alerts, models.AlertDailyChange)

			if !tt.wantFired {
				if alert != nil {
					t.Fatalf("daily change alert fired unexpectedly: %+v", alert)
				}
				return
			}
			if alert == nil {
				t.Fatal("expected daily change alert, got none")
			}
			if alert.Severity != tt.wantSeverity {
				t.Errorf("severity = %s, want %s", alert.Severity, tt.wantSeverity)
			}
			if !strings.Contains(alert.Message, tt.wantInMsg) {
				t.Errorf("message = %q, want it to contain %q", alert.Message, tt.wantInMsg)
			}
		})
	}
}

func TestDetectDailyChange_NoHistory(t *testing.T) {
	d := NewDetector(arbor.NewLogger())
	alerts := d.DetectAlerts(models.AggregateScores{TotalScore: 9})
	if alert := findAlert(alerts, models.AlertDailyChange); alert != nil {
		t.Errorf("daily change alert fired with empty history: %+v", alert)
	}
}

func TestDetectMAReversal(t *testing.T) {
	tests := []struct {
		name         string
		totals       []float64
		wantFired    bool
		wantSeverity models.AlertSeverity
	}{
		{
			name:   "needs more than window records",
			totals: []float64{-2, -2, 2},
		},
		{
			name:         "upward reversal fires info",
			totals:       []float64{-5, -1, -1, 5},
			wantFired:    true,
			wantSeverity: models.SeverityInfo,
		},
		{
			name:         "downward reversal fires warning",
			totals:       []float64{5, 1, 1, -5},
			wantFired:    true,
			wantSeverity: models.SeverityWarning,
		},
		{
			name:   "no sign change stays quiet",
			totals: []float64{1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := seeded(tt.totals...)
			// Keep the current total equal to the last record so the
			// daily change rule stays out of the way.
			current := models.AggregateScores{TotalScore: tt.totals[len(tt.totals)-1]}
			alerts := d.DetectAlerts(current)
			alert := findAlert(alerts, models.AlertMAReversal)

			if !tt.wantFired {
				if alert != nil {
					t.Fatalf("MA reversal fired unexpectedly: %+v", alert)
				}
				return
			}
			if alert == nil {
				t.Fatal("expected MA reversal alert, got none")
			}
			if alert.Severity != tt.wantSeverity {
				t.Errorf("severity = %s, want %s", alert.Severity, tt.wantSeverity)
			}
		})
	}
}

func TestDetectGap(t *testing.T) {
	tests := []struct {
		name         string
		gap          float64
		wantFired    bool
		wantSeverity models.AlertSeverity
	}{
		{name: "below threshold", gap: 4.9},
		{name: "domestic optimism fires info", gap: 6, wantFired: true, wantSeverity: models.SeverityInfo},
		{name: "domestic pessimism fires warning", gap: -6, wantFired: true, wantSeverity: models.SeverityWarning},
		{name: "exactly at threshold fires", gap: 5, wantFired: true, wantSeverity: models.SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDetector(arbor.NewLogger())
			alerts := d.DetectAlerts(models.AggregateScores{DomesticForeignGap: tt.gap})
			alert := findAlert(alerts, models.AlertDomesticForeignGap)

			if !tt.wantFired {
				if alert != nil {
					t.Fatalf("gap alert fired unexpectedly: %+v", alert)
				}
				return
			}
			if alert == nil {
				t.Fatal("expected gap alert, got none")
			}
			if alert.Severity != tt.wantSeverity {
				t.Errorf("severity = %s, want %s", alert.Severity, tt.wantSeverity)
			}
		})
	}
}

func TestGetMovingAverage(t *testing.T) {
	d := seeded(1, 2, 3, 4)

	if _, ok := d.GetMovingAverage(5); ok {
		t.Error("GetMovingAverage(5) reported ok with only 4 records")
	}

	ma, ok := d.GetMovingAverage(3)
	if !ok {
		t.Fatal("GetMovingAverage(3) reported not ok")
	}
	if ma != 3 {
		t.Errorf("GetMovingAverage(3) = %v, want 3", ma)
	}
}

func TestAddDailyScore_AppendsUnconditionally(t *testing.T) {
	d := NewDetector(arbor.NewLogger())
	d.AddDailyScore(models.AggregateScores{TotalScore: 1})
	d.AddDailyScore(models.AggregateScores{TotalScore: 1})

	if got := d.HistoryLen(); got != 2 {
		t.Errorf("HistoryLen() = %d, want 2", got)
	}
}
