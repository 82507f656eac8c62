package language

import (
	"fmt"
	"regexp"
	"strings"

	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
)

type termPair struct {
	native  string
	english string
}

// Dictionary of common farming terms. Ordered slices, not maps, so that
// annotation output is deterministic.
var hindiToEnglish = []termPair{
	{"गेहूं", "wheat"},
	{"धान", "rice/paddy"},
	{"टमाटर", "tomato"},
	{"प्याज", "onion"},
	{"आलू", "potato"},
	{"मंडी", "market/mandi"},
	{"भाव", "price"},
	{"खेती", "farming"},
	{"फसल", "crop"},
	{"किसान", "farmer"},
	{"बारिश", "rain"},
	{"पानी", "water"},
	{"सिंचाई", "irrigation"},
	{"कीट", "pest"},
	{"रोग", "disease"},
	{"मिट्टी", "soil"},
	{"खाद", "fertilizer"},
	{"बीज", "seed"},
	{"हंगाम", "season"},
}

var englishToHindi = []termPair{
	{"wheat", "गेहूं"},
	{"rice", "धान"},
	{"paddy", "धान"},
	{"tomato", "टमाटर"},
	{"onion", "प्याज"},
	{"potato", "आलू"},
	{"market", "मंडी"},
	{"mandi", "मंडी"},
	{"price", "भाव/दाम"},
	{"farming", "खेती"},
	{"crop", "फसल"},
	{"farmer", "किसान"},
	{"rain", "बारिश"},
	{"water", "पानी"},
	{"irrigation", "सिंचाई"},
	{"pest", "कीट"},
	{"disease", "रोग"},
	{"soil", "मिट्टी"},
	{"fertilizer", "खाद"},
	{"seed", "बीज"},
	{"season", "मौसम"},
}

// AnnotateEnglish produces an English-biased version of a Hindi or
// Marathi query. This is dictionary term-tagging, not translation: known
// farming terms found in the text are appended as bracketed
// [term=english] hints and the original text passes through unchanged.
func AnnotateEnglish(text string) string {
	annotated := text
	for _, pair := range hindiToEnglish {
		if strings.Contains(text, pair.native) {
			annotated = fmt.Sprintf("%s [%s=%s]", annotated, pair.native, pair.english)
		}
	}
	return fmt.Sprintf("Original query (in Indian language): %s \n\nPlease understand the context and respond appropriately.", annotated)
}

// GlossTerms adds the Hindi form of known farming terms in parentheses
// after their English occurrences, for hi/mr readers of an English
// answer. English targets get the text back untouched.
func GlossTerms(text string, target chatmodel.LanguageCode) string {
	if target != chatmodel.LanguageHindi && target != chatmodel.LanguageMarathi {
		return text
	}

	result := text
	for _, pair := range englishToHindi {
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(pair.english) + `\b`)
		if err != nil {
			continue
		}
		native := pair.native
		result = pattern.ReplaceAllStringFunc(result, func(match string) string {
			return match + " (" + native + ")"
		})
	}
	return result
}
