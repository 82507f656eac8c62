package language

import (
	"testing"

	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
)

func TestDetect_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected chatmodel.LanguageCode
	}{
		{
			name:     "Plain_English",
			text:     "What is the price of tomato today?",
			expected: chatmodel.LanguageEnglish,
		},
		{
			name:     "Hindi_Query",
			text:     "आज टमाटर का भाव क्या है?",
			expected: chatmodel.LanguageHindi,
		},
		{
			name:     "Marathi_Query",
			text:     "आज बाजार भाव काय आहे?",
			expected: chatmodel.LanguageMarathi,
		},
		{
			name:     "Empty_String",
			text:     "",
			expected: chatmodel.LanguageEnglish,
		},
		{
			name:     "Devanagari_Without_Markers_Defaults_Hindi",
			text:     "ट्रॅक्टर",
			expected: chatmodel.LanguageHindi,
		},
		{
			name:     "Mixed_Script_With_Hindi_Markers",
			text:     "wheat की खेती कैसे करें",
			expected: chatmodel.LanguageHindi,
		},
		{
			name:     "Numbers_And_Punctuation_Only",
			text:     "1234 !!! ???",
			expected: chatmodel.LanguageEnglish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.expected {
				t.Errorf("Detect(%q) got %s, want %s", tt.text, got, tt.expected)
			}
		})
	}
}
