package interfaces

import "github.com/ternarybob/specula/internal/models"

// Classifier assigns a category to a news item. The rule-based keyword
// classifier is the default implementation; any alternative (e.g. an
// LLM-backed classifier supplied as an external collaborator) must
// satisfy the same contract: deterministic output shape, origin and
// metadata passed through unmodified by the batch form.
type Classifier interface {
	// Classify tags a single text. Pure function of the text.
	Classify(text string) models.Classification

	// ClassifyBatch tags a batch, preserving each item's origin and
	// metadata alongside the new classification fields.
	ClassifyBatch(items []models.NewsItem) []models.ClassifiedItem
}
