package classifier

import (
	"testing"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/models"
)

func TestClassify_Priority(t *testing.T) {
	service := NewService(DefaultKeywords(), arbor.NewLogger())

	tests := []struct {
		name       string
		text       string
		wantCat    models.Category
		wantSubCat string
	}{
		{
			name:       "market keyword",
			text:       "日経平均が大幅に反発",
			wantCat:    models.CategoryMarket,
			wantSubCat: "",
		},
		{
			name:       "sector keyword",
			text:       "半導体メーカーが新工場を建設",
			wantCat:    models.CategorySector,
			wantSubCat: "テクノロジー",
		},
		{
			name:       "theme keyword",
			text:       "ウクライナ情勢が緊迫",
			wantCat:    models.CategoryTheme,
			wantSubCat: "地政学リスク",
		},
		{
			name:       "theme overrides sector",
			text:       "トヨタが決算を発表",
			wantCat:    models.CategoryTheme,
			wantSubCat: "決算・業績",
		},
		{
			name:       "market overrides sector and clears sub-category",
			text:       "日銀の利上げ観測で銀行株が動意",
			wantCat:    models.CategoryMarket,
			wantSubCat: "",
		},
		{
			name:       "no match defaults to market",
			text:       "特段の材料が見当たらない一日",
			wantCat:    models.CategoryMarket,
			wantSubCat: "",
		},
		{
			name:       "english market keyword case-insensitive",
			text:       "nasdaq futures point higher",
			wantCat:    models.CategoryMarket,
			wantSubCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Classify(tt.text)
			if got.Category != tt.wantCat {
				t.Errorf("Classify(%q).Category = %s, want %s", tt.text, got.Category, tt.wantCat)
			}
			if got.SubCategory != tt.wantSubCat {
				t.Errorf("Classify(%q).SubCategory = %q, want %q", tt.text, got.SubCategory, tt.wantSubCat)
			}
		})
	}
}

func TestClassifyBatch_PassesItemsThrough(t *testing.T) {
	service := NewService(DefaultKeywords(), arbor.NewLogger())

	items := []models.NewsItem{
		{Text: "銀行の収益が拡大", Origin: models.OriginDomestic, Metadata: map[string]string{"source": "feed-a"}},
		{Text: "treasury yields climb", Origin: models.OriginForeign},
	}

	classified := service.ClassifyBatch(items)
	if len(classified) != 2 {
		t.Fatalf("ClassifyBatch() returned %d items, want 2", len(classified))
	}

	if classified[0].Origin != models.OriginDomestic {
		t.Errorf("classified[0].Origin = %s, want domestic", classified[0].Origin)
	}
	if classified[0].Metadata["source"] != "feed-a" {
		t.Errorf("classified[0].Metadata not passed through: %v", classified[0].Metadata)
	}
	if classified[1].Origin != models.OriginForeign {
		t.Errorf("classified[1].Origin = %s, want foreign", classified[1].Origin)
	}
}

func TestClassify_FirstSectorGroupWins(t *testing.T) {
	keywords := Keywords{
		Sectors: []KeywordGroup{
			{Name: "first", Keywords: []string{"shared"}},
			{Name: "second", Keywords: []string{"shared"}},
		},
	}
	service := NewService(keywords, arbor.NewLogger())

	got := service.Classify("a shared keyword")
	if got.SubCategory != "first" {
		t.Errorf("SubCategory = %q, want %q", got.SubCategory, "first")
	}
}
