// Package macro identifies items referencing exchange-rate,
// interest-rate and economic-indicator topics. It observes only: macro
// matches feed the Trigger-D ratio and the daily record, and never
// contribute to any impact score.
package macro

import (
	"sort"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/models"
)

// fxKeywords select exchange-rate related items.
var fxKeywords = []string{
	"dollar", "yen", "usd/jpy", "exchange rate", "currency",
	"ドル", "円", "為替", "円安", "円高", "ドル高", "ドル安",
	"euro", "eur", "gbp", "pound",
}

// ratesKeywords select interest-rate and sovereign-bond items.
var ratesKeywords = []string{
	"treasury", "yield", "bond", "interest rate", "10-year",
	"国債", "金利", "利回り", "長期金利", "短期金利",
	"jgb", "bund", "gilt",
}

// dataKeywords select economic-indicator items.
var dataKeywords = []string{
	"cpi", "inflation", "jobs report", "employment", "gdp",
	"pce", "nonfarm payroll", "unemployment", "retail sales",
	"consumer price", "producer price", "pmi", "ism",
	"インフレ", "消費者物価", "雇用統計", "失業率",
}

// Observer classifies items into macro buckets by keyword.
type Observer struct {
	logger arbor.ILogger
}

// NewObserver creates a macro observer.
func NewObserver(logger arbor.ILogger) *Observer {
	return &Observer{logger: logger}
}

// Observe scans a batch and reports per-bucket counts and the matched
// keywords (de-duplicated, sorted). MatchedItems counts each item at
// most once regardless of how many buckets it touched.
func (o *Observer) Observe(items []models.NewsItem) models.MacroObservation {
	var obs models.MacroObservation

	fxSeen := map[string]bool{}
	ratesSeen := map[string]bool{}
	dataSeen := map[string]bool{}

	for _, item := range items {
		textLower := strings.ToLower(item.Text)
		matched := false

		if collect(textLower, fxKeywords, fxSeen) {
			obs.FXCount++
			matched = true
		}
		if collect(textLower, ratesKeywords, ratesSeen) {
			obs.RatesCount++
			matched = true
		}
		if collect(textLower, dataKeywords, dataSeen) {
			obs.DataCount++
			matched = true
		}
		if matched {
			obs.MatchedItems++
		}
	}

	obs.FXKeywords = sortedKeys(fxSeen)
	obs.RatesKeywords = sortedKeys(ratesSeen)
	obs.DataKeywords = sortedKeys(dataSeen)

	o.logger.Debug().
		Int("fx", obs.FXCount).
		Int("rates", obs.RatesCount).
		Int("data", obs.DataCount).
		Int("matched_items", obs.MatchedItems).
		Msg("Macro observation complete")

	return obs
}

// collect records every keyword found in the text and reports whether
// any matched.
func collect(textLower string, keywords []string, seen map[string]bool) bool {
	matched := false
	for _, kw := range keywords {
		if strings.Contains(textLower, strings.ToLower(kw)) {
			seen[kw] = true
			matched = true
		}
	}
	return matched
}

func sortedKeys(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
