// Package classifier tags news items with a market / sector / theme
// category from ordered keyword tables. Classification is a pure
// function of the text; no I/O.
package classifier

import (
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/interfaces"
	"github.com/ternarybob/specula/internal/models"
)

// Service implements interfaces.Classifier over keyword tables.
type Service struct {
	keywords Keywords
	logger   arbor.ILogger
}

// NewService creates a classifier with the given tables. Pass
// DefaultKeywords() for production tables.
func NewService(keywords Keywords, logger arbor.ILogger) interfaces.Classifier {
	return &Service{
		keywords: keywords,
		logger:   logger,
	}
}

// Classify assigns a category to a text. Evaluation order matters:
// a sector match sets a provisional category, a theme match overrides
// it, and a market keyword always wins last, clearing the sub-category.
// No match defaults to market with no sub-category.
func (s *Service) Classify(text string) models.Classification {
	textLower := strings.ToLower(text)

	result := models.Classification{Category: models.CategoryMarket}

	for _, group := range s.keywords.Sectors {
		if matchesAny(textLower, group.Keywords) {
			result.Category = models.CategorySector
			result.SubCategory = group.Name
			break
		}
	}

	for _, group := range s.keywords.Themes {
		if matchesAny(textLower, group.Keywords) {
			result.Category = models.CategoryTheme
			result.SubCategory = group.Name
			break
		}
	}

	// Market keywords take final priority
	if matchesAny(textLower, s.keywords.Market) {
		result.Category = models.CategoryMarket
		result.SubCategory = ""
	}

	return result
}

// ClassifyBatch classifies each item independently, copying origin and
// metadata through unmodified.
func (s *Service) ClassifyBatch(items []models.NewsItem) []models.ClassifiedItem {
	classified := make([]models.ClassifiedItem, 0, len(items))
	for _, item := range items {
		classified = append(classified, models.ClassifiedItem{
			NewsItem:       item,
			Classification: s.Classify(item.Text),
		})
	}

	s.logger.Debug().
		Int("count", len(classified)).
		Msg("Classified news batch")

	return classified
}

// matchesAny reports whether any keyword appears in the lowercased text.
func matchesAny(textLower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(textLower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
