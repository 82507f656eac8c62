package language

import (
	"strings"

	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
)

// Marker words tuned for Hindi farming queries
var hindiMarkers = []string{
	"क्या", "है", "में", "को", "की", "का", "और", "से", "पर", "कैसे",
	"खेती", "फसल", "मंडी", "किसान", "बारिश", "मिट्टी", "कीट", "रोग",
	"आज", "कल", "अभी", "कितना", "कौन", "कहाँ", "भाव", "पानी",
}

// Marker words tuned for Marathi farming queries
var marathiMarkers = []string{
	"काय", "आहे", "मध्ये", "ला", "ची", "चा", "आणि", "वर", "कसा",
	"शेती", "पीक", "बाजार", "शेतकरी", "पाऊस", "माती", "कीड", "रोग",
	"आज", "उद्या", "आता", "किती", "कोण", "कुठे", "भाव",
}

// Detect classifies text as en, hi or mr. This is a script and
// marker-word heuristic, not a statistical classifier: any text without
// Devanagari code points is English, and Devanagari text defaults to
// Hindi unless strictly more Marathi markers are present. Total over any
// input, including the empty string.
func Detect(text string) chatmodel.LanguageCode {
	if !hasDevanagari(text) {
		return chatmodel.LanguageEnglish
	}

	hindiCount := countMarkers(text, hindiMarkers)
	marathiCount := countMarkers(text, marathiMarkers)

	if marathiCount > hindiCount {
		return chatmodel.LanguageMarathi
	}
	return chatmodel.LanguageHindi
}

func hasDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}

// substring containment, not tokenized - a marker counts once per query
func countMarkers(text string, markers []string) int {
	count := 0
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			count++
		}
	}
	return count
}
