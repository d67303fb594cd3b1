package models

import "time"

// AggregateScores is the statistical reduction of one scored batch.
// Fully derived on every run, never mutated in place. Score fields are
// arithmetic means rounded to one decimal; an empty origin subset
// contributes 0 rather than an undefined value.
type AggregateScores struct {
	TotalScore         float64 `json:"total_score"`
	DomesticScore      float64 `json:"domestic_score"`
	ForeignScore       float64 `json:"foreign_score"`
	DomesticForeignGap float64 `json:"domestic_foreign_gap"`
	NewsCount          int     `json:"news_count"`
	ZeroScoreCount     int     `json:"zero_score_count"`
}

// BatchRatios are percentage ratios over one scored batch. They feed the
// trigger rules and the daily history record, never the score itself.
type BatchRatios struct {
	ZeroRatio   float64 `json:"zero_ratio"`   // % of items scoring exactly 0
	Plus2Ratio  float64 `json:"plus2_ratio"`  // % of items scoring >= +2
	Minus2Ratio float64 `json:"minus2_ratio"` // % of items scoring <= -2
	MacroRatio  float64 `json:"macro_ratio"`  // % of items touching a macro topic
}

// AlertType identifies which day-over-day rule fired.
type AlertType string

const (
	AlertDailyChange        AlertType = "daily_change"
	AlertMAReversal         AlertType = "ma_reversal"
	AlertDomesticForeignGap AlertType = "domestic_foreign_gap"
)

// AlertSeverity grades an alert. Alerts are observations, not directives.
type AlertSeverity string

const (
	SeverityInfo    AlertSeverity = "info"
	SeverityWarning AlertSeverity = "warning"
)

// Alert is an ephemeral change-detection event produced per run.
type Alert struct {
	Type     AlertType     `json:"type"`
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
}

// Trigger is a stateless observation note raised when batch ratios cross
// fixed thresholds. Triggers are fully decoupled from the numeric score
// and never suggest action.
type Trigger struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Fired   bool   `json:"fired"`
}

// MacroObservation summarizes which items referenced exchange-rate,
// interest-rate or economic-indicator topics. It feeds the Trigger-D
// ratio only and never contributes to any score.
type MacroObservation struct {
	FXCount       int      `json:"fx_count"`
	RatesCount    int      `json:"rates_count"`
	DataCount     int      `json:"data_count"`
	FXKeywords    []string `json:"fx_keywords,omitempty"`
	RatesKeywords []string `json:"rates_keywords,omitempty"`
	DataKeywords  []string `json:"data_keywords,omitempty"`

	// MatchedItems counts distinct items that touched at least one
	// bucket. Used for the macro ratio so an item matching several
	// buckets is only counted once.
	MatchedItems int `json:"matched_items"`
}

// TotalCount returns the sum of per-bucket matches (an item may appear
// in more than one bucket).
func (m MacroObservation) TotalCount() int {
	return m.FXCount + m.RatesCount + m.DataCount
}

// PriorityMacro flags the presence of first-order macro topics. For
// these, existence matters more than volume: a single Fed headline is a
// premise change regardless of how much other news arrived.
type PriorityMacro struct {
	FedCount        int `json:"fed_count"`
	TreasuryCount   int `json:"treasury_count"`
	USDJPYCount     int `json:"usdjpy_count"`
	DXYCount        int `json:"dxy_count"`
	EmploymentCount int `json:"employment_count"`
	InflationCount  int `json:"inflation_count"`
	ISMCount        int `json:"ism_count"`
}

// HasAny reports whether any first-order macro topic appeared.
func (p PriorityMacro) HasAny() bool {
	return p.FedCount > 0 || p.TreasuryCount > 0 || p.USDJPYCount > 0 ||
		p.EmploymentCount > 0 || p.InflationCount > 0 || p.ISMCount > 0
}

// TotalCount returns the sum of all priority-macro mentions.
func (p PriorityMacro) TotalCount() int {
	return p.FedCount + p.TreasuryCount + p.USDJPYCount + p.DXYCount +
		p.EmploymentCount + p.InflationCount + p.ISMCount
}

// PoliticalEvent records a market-sensitive statement by a tracked
// public figure. Observation only: the event names the speaker and the
// policy context but carries no score and no direction.
type PoliticalEvent struct {
	Speaker          string   `json:"speaker"`
	Summary          string   `json:"summary"`
	Context          string   `json:"context"`
	SourceName       string   `json:"source_name"`
	OriginalText     string   `json:"original_text"`
	DetectedKeywords []string `json:"detected_keywords"`
	URL              string   `json:"url,omitempty"`
	Evaluation       string   `json:"evaluation"`
	Position         string   `json:"position"`
}

// HistoryComparison compares the current run against the trailing 7-day
// averages. HasHistory is false when no prior entries exist; the
// remaining fields are zero in that case.
type HistoryComparison struct {
	HasHistory bool `json:"has_history"`
	DaysCount  int  `json:"days_count"`

	AvgTotalScore  float64 `json:"avg_total_score"`
	AvgZeroRatio   float64 `json:"avg_zero_ratio"`
	AvgPlus2Ratio  float64 `json:"avg_plus2_ratio"`
	AvgMinus2Ratio float64 `json:"avg_minus2_ratio"`

	CurrentTotalScore  float64 `json:"current_total_score"`
	CurrentZeroRatio   float64 `json:"current_zero_ratio"`
	CurrentPlus2Ratio  float64 `json:"current_plus2_ratio"`
	CurrentMinus2Ratio float64 `json:"current_minus2_ratio"`
}

// AnalysisResult is the structured output of one pipeline run, consumed
// by external reporting and UI collaborators.
type AnalysisResult struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	// SubmittedCount is what the caller handed in; ScoredCount is what
	// survived classification and scoring. Items that fail a stage are
	// skipped, not fatal.
	SubmittedCount int `json:"submitted_count"`
	ScoredCount    int `json:"scored_count"`
	SkippedCount   int `json:"skipped_count"`

	Items           []ScoredItem       `json:"items"`
	Aggregate       AggregateScores    `json:"aggregate"`
	Ratios          BatchRatios        `json:"ratios"`
	Alerts          []Alert            `json:"alerts"`
	Triggers        []Trigger          `json:"triggers"`
	Macro           MacroObservation   `json:"macro"`
	PriorityMacro   PriorityMacro      `json:"priority_macro"`
	PoliticalEvents []PoliticalEvent   `json:"political_events"`
	Comparison      *HistoryComparison `json:"comparison,omitempty"`
}
