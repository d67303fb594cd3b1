// Package scorer derives a bounded impact score for classified news
// items and reduces scored batches into aggregate statistics.
//
// A score of 0 is not a failure: it means the item gives no basis to
// call a direction. Scores are observations, never forecasts.
package scorer

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/models"
)

const (
	// ScoreMin and ScoreMax bound every impact score. The clamp is the
	// final step of scoring, after all multiplicative adjustments.
	ScoreMin = -10
	ScoreMax = 10

	categoryFactorMarket = 1.2
	categoryFactorSector = 1.0
	categoryFactorTheme  = 0.8
	originFactorForeign  = 1.1
)

// neutralReasons is the fixed phrase pool for items where nothing
// matched. Selection is deterministic by text hash so the wording is
// stable per item; the numeric score is never affected.
var neutralReasons = []string{
	"市場影響が限定的と判断",
	"定性的情報に留まり、価格材料不足",
	"市場全体への波及が不明確",
	"個別・話題性中心で指数影響は限定的",
	"事実報道で方向性を断定できず",
}

// Service scores classified items against weighted keyword tables.
type Service struct {
	keywords ScoreKeywords
	logger   arbor.ILogger
}

// NewService creates a scorer with the given tables. Pass
// DefaultScoreKeywords() for production tables.
func NewService(keywords ScoreKeywords, logger arbor.ILogger) *Service {
	return &Service{
		keywords: keywords,
		logger:   logger,
	}
}

// Score maps a classified item to an integer impact score in
// [ScoreMin, ScoreMax] and a templated reason string.
//
// The score is the sum of all matched keyword weights, multiplied by a
// category factor (market 1.2, sector 1.0, theme 0.8) and an origin
// factor (foreign 1.1), truncating toward zero at each step, then
// clamped. Pure function; batch items never influence each other.
func (s *Service) Score(item models.ClassifiedItem) (int, string) {
	textLower := strings.ToLower(item.Text)

	score := 0
	var matchedPositive, matchedNegative []string

	for _, wk := range s.keywords.Positive {
		if strings.Contains(textLower, strings.ToLower(wk.Keyword)) {
			score += wk.Weight
			matchedPositive = append(matchedPositive, wk.Keyword)
		}
	}

	for _, wk := range s.keywords.Negative {
		if strings.Contains(textLower, strings.ToLower(wk.Keyword)) {
			score += wk.Weight
			matchedNegative = append(matchedNegative, wk.Keyword)
		}
	}

	// Category factor: market-wide news carries the most weight,
	// themes the least. int() truncates toward zero, as does Go.
	switch item.Category {
	case models.CategoryMarket:
		score = int(float64(score) * categoryFactorMarket)
	case models.CategorySector:
		score = int(float64(score) * categoryFactorSector)
	case models.CategoryTheme:
		score = int(float64(score) * categoryFactorTheme)
	}

	// Origin factor: foreign news is weighted as a leading indicator.
	if item.Origin == models.OriginForeign {
		score = int(float64(score) * originFactorForeign)
	}

	if score < ScoreMin {
		score = ScoreMin
	}
	if score > ScoreMax {
		score = ScoreMax
	}

	reason := buildReason(score, matchedPositive, matchedNegative, item.Text)
	return score, reason
}

// ScoreBatch scores each item independently with no cross-item state.
func (s *Service) ScoreBatch(items []models.ClassifiedItem) []models.ScoredItem {
	scored := make([]models.ScoredItem, 0, len(items))
	for _, item := range items {
		score, reason := s.Score(item)
		scored = append(scored, models.ScoredItem{
			ClassifiedItem: item,
			ImpactScore:    score,
			Reason:         reason,
		})
	}

	s.logger.Debug().
		Int("count", len(scored)).
		Msg("Scored news batch")

	return scored
}

// buildReason produces the explanation string for a score. The wording
// is observational bookkeeping, never advice.
func buildReason(score int, positive, negative []string, text string) string {
	switch {
	case score == 0:
		if len(positive) == 0 && len(negative) == 0 {
			return neutralReasons[textHash(text)%uint32(len(neutralReasons))]
		}
		if len(positive) > 0 && len(negative) > 0 {
			return fmt.Sprintf("好悪材料が混在（+: %s / -: %s）",
				joinFirst(positive, 2), joinFirst(negative, 2))
		}
		return "定性的情報に留まり、価格材料不足"

	case score >= 5:
		return fmt.Sprintf("強い好材料あり（%s）", joinFirst(positive, 3))
	case score >= 2:
		return fmt.Sprintf("やや好材料（%s）", joinFirst(positive, 2))
	case score > 0:
		return fmt.Sprintf("弱い好材料の示唆（%s）", joinFirst(positive, 2))

	case score <= -5:
		return fmt.Sprintf("強い懸念材料あり（%s）", joinFirst(negative, 3))
	case score <= -2:
		return fmt.Sprintf("やや懸念材料（%s）", joinFirst(negative, 2))
	default:
		return fmt.Sprintf("弱い懸念材料の示唆（%s）", joinFirst(negative, 2))
	}
}

// joinFirst joins at most n keywords with a comma.
func joinFirst(keywords []string, n int) string {
	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return strings.Join(keywords, ", ")
}

// textHash gives a stable index into the neutral phrase pool.
func textHash(text string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	return h.Sum32()
}
