// Package models defines the entities that flow through the observation
// pipeline. Items are built by explicit field copy at each stage boundary;
// caller-supplied metadata rides along in a side-channel map and is never
// touched by the pipeline.
package models

// Origin identifies where a news item was sourced from.
type Origin string

const (
	// OriginDomestic marks items from domestic feeds.
	OriginDomestic Origin = "domestic"

	// OriginForeign marks items from foreign feeds. Foreign items are
	// weighted slightly higher by the scorer as a leading indicator.
	OriginForeign Origin = "foreign"
)

// Valid reports whether the origin is one of the two known values.
func (o Origin) Valid() bool {
	return o == OriginDomestic || o == OriginForeign
}

// Category is the coarse classification of a news item.
type Category string

const (
	// CategoryMarket covers index-level and monetary-policy news.
	CategoryMarket Category = "market"

	// CategorySector covers industry-group news.
	CategorySector Category = "sector"

	// CategoryTheme covers cross-cutting topics (geopolitics, M&A, earnings).
	CategoryTheme Category = "theme"
)

// NewsItem is a raw ingested item. Immutable once created.
type NewsItem struct {
	Text     string            `json:"text"`
	Origin   Origin            `json:"origin"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Classification holds the category assigned by a classifier.
// SubCategory is empty for market-level items.
type Classification struct {
	Category    Category `json:"category"`
	SubCategory string   `json:"sub_category,omitempty"`
}

// ClassifiedItem is a news item with its classification attached.
type ClassifiedItem struct {
	NewsItem
	Classification
}

// ScoredItem is a classified item with its bounded impact score.
// ImpactScore is always within [ScoreMin, ScoreMax]; Reason is a short
// templated explanation of how the score came about, never advice.
type ScoredItem struct {
	ClassifiedItem
	ImpactScore int    `json:"impact_score"`
	Reason      string `json:"reason"`
}
