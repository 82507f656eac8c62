package cache

import (
	"context"
	"strings"

	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
)

// CachedAnswer is everything needed to replay a chat response without
// touching the provider again.
type CachedAnswer struct {
	Answer           string                `json:"answer"`
	Sources          []string              `json:"sources,omitempty"`
	Confidence       chatmodel.Confidence  `json:"confidence"`
	DetectedLanguage chatmodel.LanguageCode `json:"detected_language"`
}

// AnswerCache is an exact-match cache keyed by normalized query and
// target language. Generation dominates request latency, so even a
// literal-match cache pays for itself on repeated mandi-price queries.
type AnswerCache interface {
	Get(ctx context.Context, query string, lang chatmodel.LanguageCode) (CachedAnswer, bool)
	Save(ctx context.Context, query string, lang chatmodel.LanguageCode, answer CachedAnswer) error
}

// cacheKey collapses whitespace and case so trivially different
// phrasings of the same query share an entry.
func cacheKey(query string, lang chatmodel.LanguageCode) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	return "answer:" + string(lang) + ":" + normalized
}
