package macro

import (
	"strings"

	"github.com/ternarybob/specula/internal/models"
)

// Priority macro topics form the premise for any market read: central
// bank decisions, sovereign yields, USD/JPY, and the headline economic
// releases. Their presence matters, not their volume.

var fedKeywords = []string{
	"federal reserve", "fed", "frb", "fomc",
	"powell", "パウエル", "連邦準備", "中央銀行",
	"rate decision", "金利決定",
}

var treasuryKeywords = []string{
	"treasury yield", "10-year yield", "2-year yield",
	"bond yield", "米国債", "利回り", "長期金利",
}

// usdjpyKeywords include the intervention vocabulary: rate checks and
// verbal intervention are premise changes even without a level move.
var usdjpyKeywords = []string{
	"usd/jpy", "dollar yen", "ドル円", "円安", "円高",
	"yen", "円", "usdjpy",
	"rate check", "レートチェック", "forex intervention", "為替介入",
	"intervention", "介入警戒", "口先介入", "verbal intervention",
	"boj intervention", "日銀介入", "mof intervention", "財務省介入",
	"kanda", "神田財務官", "三者会合",
}

var dxyKeywords = []string{
	"dollar index", "dxy", "ドル指数",
}

var employmentKeywords = []string{
	"nonfarm payroll", "payroll", "雇用統計",
	"jobs report", "unemployment", "失業率",
	"employment", "jobless claims",
}

var inflationKeywords = []string{
	"cpi", "consumer price", "消費者物価",
	"pce", "pce deflator", "inflation", "インフレ",
	"producer price", "ppi",
}

var ismKeywords = []string{
	"ism", "pmi", "景況感", "manufacturing",
	"services pmi", "製造業景況",
}

// DetectPriority scans a batch for first-order macro topics. An item
// can count toward several buckets.
func (o *Observer) DetectPriority(items []models.NewsItem) models.PriorityMacro {
	var result models.PriorityMacro

	for _, item := range items {
		textLower := strings.ToLower(item.Text)

		if containsAny(textLower, fedKeywords) {
			result.FedCount++
		}
		if containsAny(textLower, treasuryKeywords) {
			result.TreasuryCount++
		}
		if containsAny(textLower, usdjpyKeywords) {
			result.USDJPYCount++
		}
		if containsAny(textLower, dxyKeywords) {
			result.DXYCount++
		}
		if containsAny(textLower, employmentKeywords) {
			result.EmploymentCount++
		}
		if containsAny(textLower, inflationKeywords) {
			result.InflationCount++
		}
		if containsAny(textLower, ismKeywords) {
			result.ISMCount++
		}
	}

	return result
}

func containsAny(textLower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(textLower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
