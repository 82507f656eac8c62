package orchestrator

import (
	"context"

	"github.com/sapatmohit/smart-farming-ai-agent/internal/cache"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/config"
	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/language"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/metrics"
)

// confidenceFor maps retrieval hit count to the coarse confidence tier.
// The signal comes from grounding, not from the model.
func confidenceFor(sourceCount int) chatmodel.Confidence {
	switch {
	case sourceCount >= config.ConfidenceHighSources:
		return chatmodel.ConfidenceHigh
	case sourceCount >= config.ConfidenceMediumSources:
		return chatmodel.ConfidenceMedium
	default:
		return chatmodel.ConfidenceLow
	}
}

func (s *service) checkAnswerCache(ctx context.Context, query chatmodel.ChatQuery) (chatmodel.ChatQuery, bool) {
	if s.answers == nil {
		return query, false
	}
	cached, found := s.answers.Get(ctx, query.Query, query.TargetLanguage)
	if !found {
		return query, false
	}
	metrics.IncrementCacheHit()
	query.Answer = cached.Answer
	query.Sources = cached.Sources
	query.Confidence = cached.Confidence
	query.DetectedLanguage = cached.DetectedLanguage
	return query, true
}

func (s *service) saveAnswerInBackground(ctx context.Context, query chatmodel.ChatQuery) {
	if s.answers == nil {
		return
	}
	saveCtx := context.WithoutCancel(ctx)
	go func() {
		err := s.answers.Save(saveCtx, query.Query, query.TargetLanguage, cache.CachedAnswer{
			Answer:           query.Answer,
			Sources:          query.Sources,
			Confidence:       query.Confidence,
			DetectedLanguage: query.DetectedLanguage,
		})
		if err != nil {
			s.logger.Error("Failed to save answer to cache", "error", err)
		}
	}()
}

// glossIfNeeded adds native-script glosses for key farming terms when a
// hi/mr reader got an answer the model produced in English anyway.
func (s *service) glossIfNeeded(answer string, target chatmodel.LanguageCode) string {
	if target == chatmodel.LanguageEnglish {
		return answer
	}
	if language.Detect(answer) != chatmodel.LanguageEnglish {
		return answer
	}
	return language.GlossTerms(answer, target)
}
