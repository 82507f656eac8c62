package prompt

import (
	"strings"
	"testing"

	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
)

func TestBuild_InstructShape(t *testing.T) {
	context := []string{"[Wheat Guide] Sow in November.", "[Mandi Prices] Wheat at 2200/quintal."}
	got := Build("When should I sow wheat?", context, chatmodel.LanguageEnglish, TemplateInstruct)

	if !strings.HasSuffix(got, AssistantTurnMarker) {
		t.Errorf("instruct prompt must end with %q, got tail %q", AssistantTurnMarker, got[len(got)-30:])
	}
	if !strings.Contains(got, UserTurnMarker) {
		t.Error("instruct prompt missing user turn marker")
	}
	if !strings.Contains(got, "CONTEXT FROM KNOWLEDGE BASE:") {
		t.Error("context block header missing")
	}
	if !strings.Contains(got, "[Wheat Guide] Sow in November.\n\n[Mandi Prices] Wheat at 2200/quintal.") {
		t.Error("context items must be joined with a blank line")
	}
	if !strings.Contains(got, "Respond in English.") {
		t.Error("language directive missing")
	}
	if !strings.Contains(got, "KrishiMitra") {
		t.Error("persona missing")
	}
}

func TestBuild_VisionShape(t *testing.T) {
	got := Build("What is wrong with this leaf?", nil, chatmodel.LanguageHindi, TemplateVision)

	if strings.Contains(got, UserTurnMarker) || strings.Contains(got, AssistantTurnMarker) {
		t.Error("vision prompt must not contain dialogue turn markers")
	}
	if !strings.Contains(got, "Respond in Hindi (Devanagari script).") {
		t.Error("hindi directive missing")
	}
	if !strings.HasSuffix(got, "What is wrong with this leaf?") {
		t.Error("vision prompt must end with the query")
	}
}

func TestBuild_EmptyContextOmitsBlock(t *testing.T) {
	for _, tmpl := range []Template{TemplateInstruct, TemplateVision} {
		got := Build("hello", nil, chatmodel.LanguageEnglish, tmpl)
		if strings.Contains(got, "CONTEXT FROM KNOWLEDGE BASE:") {
			t.Errorf("template %d: empty context must omit the context header", tmpl)
		}
	}
}

func TestBuild_UnknownLanguageDefaultsEnglish(t *testing.T) {
	got := Build("hello", nil, chatmodel.LanguageCode("xx"), TemplateInstruct)
	if !strings.Contains(got, "Respond in English.") {
		t.Error("unknown language must fall back to the English directive")
	}
}

func TestTemplateFor(t *testing.T) {
	if TemplateFor(true) != TemplateVision {
		t.Error("image queries take the vision template")
	}
	if TemplateFor(false) != TemplateInstruct {
		t.Error("text queries take the instruct template")
	}
}

func TestBuildTranslation(t *testing.T) {
	tests := []struct {
		name   string
		target chatmodel.LanguageCode
		want   string
	}{
		{"Hindi", chatmodel.LanguageHindi, "Translate the following text to Hindi."},
		{"Marathi", chatmodel.LanguageMarathi, "Translate the following text to Marathi."},
		{"English", chatmodel.LanguageEnglish, "Translate the following text to English."},
		{"Unknown_Defaults_English", chatmodel.LanguageCode("fr"), "Translate the following text to English."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildTranslation("Sow wheat in November.", tt.target)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("got %q, want prefix %q", got, tt.want)
			}
			if !strings.HasSuffix(got, "Text: Sow wheat in November.") {
				t.Errorf("translation prompt must end with the source text, got %q", got)
			}
		})
	}
}
