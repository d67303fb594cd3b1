package political

import (
	"strings"
	"testing"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/models"
)

func item(text string, metadata map[string]string) models.NewsItem {
	return models.NewsItem{Text: text, Origin: models.OriginForeign, Metadata: metadata}
}

func TestDetect(t *testing.T) {
	detector := NewDetector(arbor.NewLogger())

	tests := []struct {
		name        string
		text        string
		wantEvent   bool
		wantSpeaker string
		wantContext string
		wantSummary string
	}{
		{
			name:        "speaker with tariff topic",
			text:        "Trump threatens new tariffs on imports",
			wantEvent:   true,
			wantSpeaker: "トランプ大統領",
			wantContext: "関税政策",
			wantSummary: "関税変更に関する発言",
		},
		{
			name:        "rate cut pressure gets the specific summary",
			text:        "Powell faces calls for a rate cut",
			wantEvent:   true,
			wantSpeaker: "パウエルFRB議長",
			wantContext: "金融政策",
			wantSummary: "FRBに対する利下げ圧力を示唆",
		},
		{
			name:        "context without a dedicated template falls back to default",
			text:        "Biden comments on China relations",
			wantEvent:   true,
			wantSpeaker: "バイデン前大統領",
			wantContext: "対中国政策",
			wantSummary: "対中国政策に関する発言",
		},
		{
			name:      "sensitive topic without a tracked speaker",
			text:      "Lawmakers debate new tariffs",
			wantEvent: false,
		},
		{
			name:      "tracked speaker without a sensitive topic",
			text:      "Trump attends a sporting event",
			wantEvent: false,
		},
		{
			name:      "unrelated item",
			text:      "小売大手が新店舗を出店",
			wantEvent: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := detector.Detect([]models.NewsItem{item(tt.text, nil)})

			if !tt.wantEvent {
				if len(events) != 0 {
					t.Fatalf("Detect(%q) = %+v, want no events", tt.text, events)
				}
				return
			}
			if len(events) != 1 {
				t.Fatalf("Detect(%q) returned %d events, want 1", tt.text, len(events))
			}

			event := events[0]
			if event.Speaker != tt.wantSpeaker {
				t.Errorf("Speaker = %q, want %q", event.Speaker, tt.wantSpeaker)
			}
			if event.Context != tt.wantContext {
				t.Errorf("Context = %q, want %q", event.Context, tt.wantContext)
			}
			if event.Summary != tt.wantSummary {
				t.Errorf("Summary = %q, want %q", event.Summary, tt.wantSummary)
			}
			if len(event.DetectedKeywords) == 0 {
				t.Error("DetectedKeywords is empty")
			}
			if event.Evaluation == "" || event.Position == "" {
				t.Error("event missing evaluation or position note")
			}
		})
	}
}

func TestDetect_MetadataPassthrough(t *testing.T) {
	detector := NewDetector(arbor.NewLogger())

	events := detector.Detect([]models.NewsItem{
		item("Trump escalates the trade war rhetoric", map[string]string{
			"source": "feed-a",
			"url":    "https://example.com/article",
		}),
		item("Yellen warns about new sanctions", nil),
	})

	if len(events) != 2 {
		t.Fatalf("Detect() returned %d events, want 2", len(events))
	}
	if events[0].SourceName != "feed-a" {
		t.Errorf("SourceName = %q, want feed-a", events[0].SourceName)
	}
	if events[0].URL != "https://example.com/article" {
		t.Errorf("URL = %q, want the metadata url", events[0].URL)
	}
	if events[1].SourceName != "Unknown" {
		t.Errorf("SourceName = %q, want Unknown when metadata is absent", events[1].SourceName)
	}
}

func TestDetect_TruncatesOriginalText(t *testing.T) {
	detector := NewDetector(arbor.NewLogger())

	long := "trump on tariffs " + strings.Repeat("あ", 300)
	events := detector.Detect([]models.NewsItem{item(long, nil)})

	if len(events) != 1 {
		t.Fatalf("Detect() returned %d events, want 1", len(events))
	}
	if got := len([]rune(events[0].OriginalText)); got != originalTextLimit {
		t.Errorf("OriginalText length = %d runes, want %d", got, originalTextLimit)
	}
}
