package language

import (
	"strings"
	"testing"

	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
)

func TestAnnotateEnglish(t *testing.T) {
	annotated := AnnotateEnglish("गेहूं का भाव क्या है?")

	if !strings.Contains(annotated, "गेहूं का भाव क्या है?") {
		t.Error("original query text must pass through unchanged")
	}
	if !strings.Contains(annotated, "[गेहूं=wheat]") {
		t.Errorf("missing wheat hint in %q", annotated)
	}
	if !strings.Contains(annotated, "[भाव=price]") {
		t.Errorf("missing price hint in %q", annotated)
	}
	if !strings.Contains(annotated, "Original query (in Indian language):") {
		t.Error("missing LLM context note")
	}
}

func TestAnnotateEnglish_NoKnownTerms(t *testing.T) {
	annotated := AnnotateEnglish("ट्रॅक्टर")

	if strings.Contains(annotated, "[") && strings.Contains(annotated, "=") {
		t.Errorf("unexpected term hints for unknown text: %q", annotated)
	}
}

func TestGlossTerms(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		target   chatmodel.LanguageCode
		contains []string
		excludes []string
	}{
		{
			name:     "Hindi_Target_Glosses_Terms",
			text:     "Wheat price depends on the market.",
			target:   chatmodel.LanguageHindi,
			contains: []string{"Wheat (गेहूं)", "price (भाव/दाम)", "market (मंडी)"},
		},
		{
			name:     "English_Target_Untouched",
			text:     "Wheat price depends on the market.",
			target:   chatmodel.LanguageEnglish,
			excludes: []string{"गेहूं", "मंडी"},
		},
		{
			name:   "Word_Boundary_Respected",
			text:   "The price is fair.",
			target: chatmodel.LanguageMarathi,
			// "rice" inside "price" must not be glossed
			contains: []string{"price (भाव/दाम)"},
			excludes: []string{"(धान)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GlossTerms(tt.text, tt.target)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("result %q missing %q", got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("result %q should not contain %q", got, unwanted)
				}
			}
		})
	}
}
