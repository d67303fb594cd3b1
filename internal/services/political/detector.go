// Package political detects market-sensitive statements by tracked
// public figures. Like the macro observer it only observes: a detected
// event names the speaker and the policy context, and never carries a
// score or a direction.
package political

import (
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/models"
)

// Tables are ordered slices, not maps: the first matching speaker and
// the first matching keyword's context win, and that order must be
// stable across runs.

type speakerEntry struct {
	keyword string
	name    string
}

var speakers = []speakerEntry{
	{"trump", "トランプ大統領"},
	{"president trump", "トランプ大統領"},
	{"donald trump", "トランプ大統領"},
	{"biden", "バイデン前大統領"},
	{"powell", "パウエルFRB議長"},
	{"yellen", "イエレン財務長官"},
}

type sensitiveEntry struct {
	keyword string
	context string
}

var sensitiveKeywords = []sensitiveEntry{
	{"tariff", "関税政策"},
	{"tariffs", "関税政策"},
	{"関税", "関税政策"},
	{"trade", "貿易政策"},
	{"trade war", "貿易政策"},
	{"貿易", "貿易政策"},
	{"china", "対中国政策"},
	{"中国", "対中国政策"},
	{"nato", "外交・安全保障"},
	{"greenland", "外交・安全保障"},
	{"canada", "対北米政策"},
	{"mexico", "対北米政策"},
	{"fed", "金融政策"},
	{"federal reserve", "金融政策"},
	{"frb", "金融政策"},
	{"interest rate", "金融政策"},
	{"rate cut", "金融政策"},
	{"rate hike", "金融政策"},
	{"金利", "金融政策"},
	{"sanction", "経済制裁"},
	{"制裁", "経済制裁"},
}

type summaryEntry struct {
	keyword string
	summary string
}

var summaryTemplates = map[string][]summaryEntry{
	"関税政策": {{"tariff", "関税変更に関する発言"}},
	"貿易政策": {{"trade war", "貿易摩擦に関する発言"}},
	"金融政策": {
		{"rate cut", "FRBに対する利下げ圧力を示唆"},
		{"rate hike", "金利上昇への言及"},
		{"fed", "中央銀行政策への言及"},
	},
	"外交・安全保障": {
		{"greenland", "グリーンランドに関する発言"},
		{"nato", "NATO同盟に関する発言"},
	},
}

var summaryDefaults = map[string]string{
	"関税政策":    "関税政策に関する発言",
	"貿易政策":    "貿易政策に関する発言",
	"対中国政策":   "対中国政策に関する発言",
	"金融政策":    "金融政策に関する発言",
	"外交・安全保障": "外交・安全保障に関する発言",
	"対北米政策":   "北米諸国への政策発言",
	"経済制裁":    "経済制裁に関する発言",
}

const (
	evaluationWithheld = "未評価（方向性保留）"
	positionNote       = "市場変動の引き金になり得る事象"

	// originalTextLimit bounds the echoed source text in runes.
	originalTextLimit = 200
)

// Detector scans batches for political statements.
type Detector struct {
	logger arbor.ILogger
}

// NewDetector creates a political statement detector.
func NewDetector(logger arbor.ILogger) *Detector {
	return &Detector{logger: logger}
}

// Detect returns one event per item that names a tracked speaker AND
// touches a market-sensitive topic. Items matching only one of the two
// produce nothing. Source name and URL ride in from item metadata.
func (d *Detector) Detect(items []models.NewsItem) []models.PoliticalEvent {
	var events []models.PoliticalEvent

	for _, item := range items {
		textLower := strings.ToLower(item.Text)

		speaker := ""
		for _, s := range speakers {
			if strings.Contains(textLower, s.keyword) {
				speaker = s.name
				break
			}
		}
		if speaker == "" {
			continue
		}

		var detected []string
		context := ""
		for _, s := range sensitiveKeywords {
			if strings.Contains(textLower, strings.ToLower(s.keyword)) {
				detected = append(detected, s.keyword)
				if context == "" {
					context = s.context
				}
			}
		}
		if len(detected) == 0 {
			continue
		}

		events = append(events, models.PoliticalEvent{
			Speaker:          speaker,
			Summary:          buildSummary(context, detected),
			Context:          context,
			SourceName:       sourceName(item.Metadata),
			OriginalText:     truncateRunes(item.Text, originalTextLimit),
			DetectedKeywords: detected,
			URL:              item.Metadata["url"],
			Evaluation:       evaluationWithheld,
			Position:         positionNote,
		})
	}

	if len(events) > 0 {
		d.logger.Info().
			Int("count", len(events)).
			Msg("Political statements detected")
	}

	return events
}

// buildSummary picks the most specific summary for the context: the
// first detected keyword with a dedicated template wins, then the
// context default.
func buildSummary(context string, detected []string) string {
	templates := summaryTemplates[context]
	for _, kw := range detected {
		for _, entry := range templates {
			if entry.keyword == kw {
				return entry.summary
			}
		}
	}
	if def, ok := summaryDefaults[context]; ok {
		return def
	}
	return "市場感応度の高い発言"
}

func sourceName(metadata map[string]string) string {
	if name := metadata["source"]; name != "" {
		return name
	}
	return "Unknown"
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
