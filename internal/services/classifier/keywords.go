package classifier

// KeywordGroup names a sub-category and the keywords that select it.
// Groups are evaluated in slice order; the first match wins within a table.
type KeywordGroup struct {
	Name     string
	Keywords []string
}

// Keywords is the full classification table set. Tables are treated as
// immutable once a Service is constructed; tests inject their own.
type Keywords struct {
	// Market keywords have the highest priority: a match always forces
	// the market category and clears any sub-category.
	Market []string

	// Sectors set a provisional sector classification.
	Sectors []KeywordGroup

	// Themes override a sector classification when matched.
	Themes []KeywordGroup
}

// DefaultKeywords returns the built-in classification tables covering
// Japanese and US market vocabulary.
func DefaultKeywords() Keywords {
	return Keywords{
		Market: []string{
			"日経平均", "TOPIX", "ダウ", "S&P", "ナスダック", "NASDAQ",
			"FRB", "日銀", "金融政策", "金利", "円安", "円高",
			"GDP", "インフレ", "CPI", "雇用統計", "景気",
			"利上げ", "利下げ", "量的緩和", "QE",
		},
		Sectors: []KeywordGroup{
			{Name: "テクノロジー", Keywords: []string{"AI", "半導体", "クラウド", "ソフトウェア", "IT", "エヌビディア", "NVIDIA"}},
			{Name: "金融", Keywords: []string{"銀行", "証券", "保険", "メガバンク", "金融機関"}},
			{Name: "自動車", Keywords: []string{"自動車", "EV", "電気自動車", "トヨタ", "ホンダ"}},
			{Name: "不動産", Keywords: []string{"不動産", "REIT", "住宅"}},
			{Name: "エネルギー", Keywords: []string{"原油", "石油", "ガス", "電力", "再エネ"}},
			{Name: "ヘルスケア", Keywords: []string{"製薬", "医療", "バイオ", "ヘルスケア"}},
			{Name: "消費", Keywords: []string{"小売", "消費", "EC", "通販"}},
		},
		Themes: []KeywordGroup{
			{Name: "地政学リスク", Keywords: []string{"戦争", "紛争", "制裁", "地政学", "ウクライナ", "中東", "台湾"}},
			{Name: "規制・政策", Keywords: []string{"規制", "法案", "法律", "独禁法", "規制緩和"}},
			{Name: "決算・業績", Keywords: []string{"決算", "業績", "売上", "利益", "増収", "減益"}},
			{Name: "M&A", Keywords: []string{"買収", "合併", "M&A", "TOB", "統合"}},
		},
	}
}
