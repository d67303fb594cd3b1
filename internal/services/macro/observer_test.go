package macro

import (
	"testing"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/models"
)

func newsItems(texts ...string) []models.NewsItem {
	items := make([]models.NewsItem, 0, len(texts))
	for _, text := range texts {
		items = append(items, models.NewsItem{Text: text, Origin: models.OriginDomestic})
	}
	return items
}

func TestObserve_CountsItemOncePerBucket(t *testing.T) {
	observer := NewObserver(arbor.NewLogger())

	// The first item touches both the FX and rates buckets but must
	// count only once toward MatchedItems.
	obs := observer.Observe(newsItems(
		"円安が進行し長期金利も上昇",
		"小売大手が新店舗を出店",
		"cpi release points to sticky inflation",
	))

	if obs.FXCount != 1 {
		t.Errorf("FXCount = %d, want 1", obs.FXCount)
	}
	if obs.RatesCount != 1 {
		t.Errorf("RatesCount = %d, want 1", obs.RatesCount)
	}
	if obs.DataCount != 1 {
		t.Errorf("DataCount = %d, want 1", obs.DataCount)
	}
	if obs.MatchedItems != 2 {
		t.Errorf("MatchedItems = %d, want 2", obs.MatchedItems)
	}
	if obs.TotalCount() != 3 {
		t.Errorf("TotalCount() = %d, want 3", obs.TotalCount())
	}
}

func TestObserve_DeduplicatesKeywords(t *testing.T) {
	observer := NewObserver(arbor.NewLogger())

	obs := observer.Observe(newsItems(
		"円安が一段と進む",
		"輸出企業には円安が追い風",
	))

	seen := map[string]int{}
	for _, kw := range obs.FXKeywords {
		seen[kw]++
	}
	if seen["円安"] != 1 {
		t.Errorf("FXKeywords contains 円安 %d times, want 1: %v", seen["円安"], obs.FXKeywords)
	}
}

func TestObserve_EmptyBatch(t *testing.T) {
	observer := NewObserver(arbor.NewLogger())

	obs := observer.Observe(nil)
	if obs.MatchedItems != 0 || obs.TotalCount() != 0 {
		t.Errorf("Observe(nil) = %+v, want zeroed", obs)
	}
	if obs.FXKeywords != nil {
		t.Errorf("FXKeywords = %v, want nil", obs.FXKeywords)
	}
}

func TestDetectPriority(t *testing.T) {
	observer := NewObserver(arbor.NewLogger())

	tests := []struct {
		name   string
		texts  []string
		want   models.PriorityMacro
		hasAny bool
	}{
		{
			name:   "fed decision",
			texts:  []string{"FOMCは金利据え置きを決定"},
			want:   models.PriorityMacro{FedCount: 1},
			hasAny: true,
		},
		{
			name:   "employment release",
			texts:  []string{"nonfarm payrolls beat forecasts"},
			want:   models.PriorityMacro{EmploymentCount: 1},
			hasAny: true,
		},
		{
			name:  "intervention vocabulary counts as usdjpy",
			texts: []string{"財務省が為替介入の可能性を示唆"},
			want: models.PriorityMacro{
				USDJPYCount: 1,
			},
			hasAny: true,
		},
		{
			name:   "nothing priority",
			texts:  []string{"大手小売が新業態を発表"},
			want:   models.PriorityMacro{},
			hasAny: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := observer.DetectPriority(newsItems(tt.texts...))
			if got != tt.want {
				t.Errorf("DetectPriority() = %+v, want %+v", got, tt.want)
			}
			if got.HasAny() != tt.hasAny {
				t.Errorf("HasAny() = %v, want %v", got.HasAny(), tt.hasAny)
			}
		})
	}
}

func TestDetectPriority_ItemCountsInMultipleBuckets(t *testing.T) {
	observer := NewObserver(arbor.NewLogger())

	got := observer.DetectPriority(newsItems("FRBの利上げでドル円が急伸、米国債利回りも上昇"))

	if got.FedCount != 1 {
		t.Errorf("FedCount = %d, want 1", got.FedCount)
	}
	if got.USDJPYCount != 1 {
		t.Errorf("USDJPYCount = %d, want 1", got.USDJPYCount)
	}
	if got.TreasuryCount != 1 {
		t.Errorf("TreasuryCount = %d, want 1", got.TreasuryCount)
	}
	if got.TotalCount() != 3 {
		t.Errorf("TotalCount() = %d, want 3", got.TotalCount())
	}
}
