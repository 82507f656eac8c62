package knowledge

import (
	"strings"
	"testing"
)

func TestAll(t *testing.T) {
	docs := All()
	if len(docs) != 14 {
		t.Fatalf("corpus holds %d documents, want 14", len(docs))
	}

	seen := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		if doc.Title == "" || doc.Content == "" || doc.Category == "" || doc.Source == "" {
			t.Errorf("document %q has an empty field", doc.Title)
		}
		if _, dup := seen[doc.Title]; dup {
			t.Errorf("duplicate title %q", doc.Title)
		}
		seen[doc.Title] = struct{}{}
	}
}

func TestByCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     int
	}{
		{"Crops", "crops", 4},
		{"Weather", "weather", 3},
		{"Pest_Control", "pest_control", 3},
		{"Market_Prices", "market_prices", 2},
		{"Soil", "soil", 2},
		{"Case_Insensitive", "CROPS", 4},
		{"Unknown_Category", "aviation", 0},
		{"Empty_Category", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByCategory(tt.category)
			if len(got) != tt.want {
				t.Errorf("ByCategory(%q) returned %d documents, want %d", tt.category, len(got), tt.want)
			}
			for _, doc := range got {
				if !strings.EqualFold(doc.Category, tt.category) {
					t.Errorf("document %q has category %q, want %q", doc.Title, doc.Category, tt.category)
				}
			}
		})
	}
}
