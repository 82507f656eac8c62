package retrieval

import (
	"strings"
	"testing"

	"github.com/sapatmohit/smart-farming-ai-agent/internal/knowledge"
)

func testCorpus() []knowledge.Document {
	return []knowledge.Document{
		{Title: "Wheat Basics", Content: "wheat needs cool weather", Category: "crops", Source: "doc-a"},
		{Title: "Irrigation", Content: "water your wheat and rice fields", Category: "crops", Source: "doc-b"},
		{Title: "Pest Notes", Content: "aphids attack wheat", Category: "pest_control", Source: "doc-c"},
		{Title: "Storage", Content: "store grain in dry rooms", Category: "crops", Source: "doc-d"},
	}
}

func TestRetrieve_Scenarios(t *testing.T) {
	tests := []struct {
		name            string
		query           string
		expectedSources []string
	}{
		{
			name:            "No_Matching_Terms_Returns_Empty",
			query:           "spaceship quantum reactor",
			expectedSources: nil,
		},
		{
			name:            "Empty_Query_Returns_Empty",
			query:           "   ",
			expectedSources: nil,
		},
		{
			name:  "Title_Match_Outranks_Content_Match",
			query: "wheat",
			// doc-a: 1 content + 2 title = 3; doc-b and doc-c: 1 content each
			expectedSources: []string{"doc-a", "doc-b", "doc-c"},
		},
		{
			name:  "Zero_Score_Documents_Excluded_Even_Below_K",
			query: "grain",
			// only doc-d matches, the rest must not pad the result
			expectedSources: []string{"doc-d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(testCorpus())
			result := r.Retrieve(tt.query)

			if len(result.Sources) != len(tt.expectedSources) {
				t.Fatalf("Sources got %v, want %v", result.Sources, tt.expectedSources)
			}
			for i, want := range tt.expectedSources {
				if result.Sources[i] != want {
					t.Errorf("Sources[%d] got %s, want %s", i, result.Sources[i], want)
				}
			}
			if len(result.Contents) != len(result.Sources) {
				t.Errorf("Contents and Sources length mismatch: %d vs %d", len(result.Contents), len(result.Sources))
			}
		})
	}
}

func TestRetrieve_StableTieBreak(t *testing.T) {
	// identical documents score identically - corpus order must win
	docs := []knowledge.Document{
		{Title: "First", Content: "tomato tomato", Category: "crops", Source: "first"},
		{Title: "Second", Content: "tomato tomato", Category: "crops", Source: "second"},
		{Title: "Third", Content: "tomato tomato", Category: "crops", Source: "third"},
	}

	result := New(docs).Retrieve("tomato")

	want := []string{"first", "second", "third"}
	for i, w := range want {
		if result.Sources[i] != w {
			t.Errorf("tie-break order broken at %d: got %s, want %s", i, result.Sources[i], w)
		}
	}
}

func TestRetrieve_CapsAtTopK(t *testing.T) {
	var docs []knowledge.Document
	for i := 0; i < 10; i++ {
		docs = append(docs, knowledge.Document{
			Title: "Doc", Content: "onion farming tips", Category: "crops", Source: "s",
		})
	}

	result := New(docs).Retrieve("onion")
	if len(result.Contents) > 3 {
		t.Errorf("retrieval returned %d results, cap is 3", len(result.Contents))
	}
}

func TestRetrieve_CategoryBonus(t *testing.T) {
	docs := []knowledge.Document{
		{Title: "A", Content: "general advisory", Category: "weather", Source: "weather-doc"},
		{Title: "B", Content: "weather note", Category: "crops", Source: "crops-doc"},
	}

	// "weather" scores 1.5 on doc A (category) vs 1.0 on doc B (content)
	result := New(docs).Retrieve("weather")
	if result.Sources[0] != "weather-doc" {
		t.Errorf("category bonus not applied, got %v", result.Sources)
	}
}

func TestRetrieve_ContentFormat(t *testing.T) {
	result := New(testCorpus()).Retrieve("grain")

	if len(result.Contents) != 1 {
		t.Fatalf("expected 1 match, got %d", len(result.Contents))
	}
	if !strings.HasPrefix(result.Contents[0], "[Storage] ") {
		t.Errorf("content missing bracketed title prefix: %q", result.Contents[0])
	}
}

func TestRetrieve_DefaultCorpus(t *testing.T) {
	result := Default().Retrieve("wheat sowing time")

	if result.Empty() {
		t.Fatal("default corpus should match a wheat query")
	}
	if result.Sources[0] != "ICAR Wheat Guidelines" {
		t.Errorf("top source got %s, want ICAR Wheat Guidelines", result.Sources[0])
	}
}
