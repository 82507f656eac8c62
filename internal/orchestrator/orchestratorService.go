package orchestrator

import (
	"context"
	"strings"

	"github.com/sapatmohit/smart-farming-ai-agent/internal/cache"
	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/generation"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/language"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/prompt"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/retrieval"
	"github.com/sapatmohit/smart-farming-ai-agent/pkg/logger_i"
)

// Service is the public contract the handlers call. The handler doesn't
// need to know about retrieval, prompts or the provider - it hands over
// a query and gets a filled-in result back.
type Service interface {
	ProcessQuery(ctx context.Context, query chatmodel.ChatQuery) (chatmodel.ChatQuery, error)
	Translate(ctx context.Context, text string, target chatmodel.LanguageCode) (string, error)
}

type service struct {
	retriever *retrieval.Retriever
	generator generation.Provider
	answers   cache.AnswerCache
	logger    *logger_i.Logger
}

// NewService constructor - dependency injection keeps the pipeline
// testable with mocks.
func NewService(r *retrieval.Retriever, g generation.Provider, answers cache.AnswerCache) Service {
	return &service{
		retriever: r,
		generator: g,
		answers:   answers,
		logger:    logger_i.NewLogger("Orchestrator"),
	}
}

// ProcessQuery runs the full pipeline for one chat query:
// detect -> annotate -> cache check -> retrieve -> assemble -> generate
// -> confidence. Stages are strictly sequential within a request.
func (s *service) ProcessQuery(ctx context.Context, query chatmodel.ChatQuery) (chatmodel.ChatQuery, error) {
	log := s.logger.With("traceId", query.TraceId)

	query.Query = strings.TrimSpace(query.Query)
	if query.Query == "" {
		// rejected before any network call is attempted
		return query, chatmodel.ErrEmptyQuery
	}

	query.DetectedLanguage = language.Detect(query.Query)
	target := query.TargetLanguage
	if target == "" {
		target = query.DetectedLanguage
	}
	query.TargetLanguage = target
	log.Debug("Detected language", "detected", query.DetectedLanguage, "target", target)

	if cached, found := s.checkAnswerCache(ctx, query); found {
		log.Info("Answer cache hit")
		return cached, nil
	}

	// dictionary term-tagging, not translation - retrieval and the
	// corpus are English
	englishQuery := query.Query
	if query.DetectedLanguage != chatmodel.LanguageEnglish {
		englishQuery = language.AnnotateEnglish(query.Query)
	}

	result := s.retriever.Retrieve(englishQuery)
	query.Contents = result.Contents
	query.Sources = result.Sources
	log.Debug("Retrieved context", "matches", len(result.Contents))

	template := prompt.TemplateFor(query.Image != "")
	promptText := prompt.Build(englishQuery, query.Contents, target, template)

	answer, err := s.generator.Generate(ctx, generation.Request{
		Prompt:         promptText,
		Query:          query.Query,
		Context:        query.Contents,
		TargetLanguage: target,
		Image:          query.Image,
	})
	if err != nil {
		return query, err
	}

	query.Answer = s.glossIfNeeded(answer, target)
	query.Confidence = confidenceFor(len(query.Sources))

	s.saveAnswerInBackground(ctx, query)
	return query, nil
}

// Translate reuses the generation path with a narrow translation
// prompt and an empty context. Unlike the chat path, upstream failure
// surfaces to the caller.
func (s *service) Translate(ctx context.Context, text string, target chatmodel.LanguageCode) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", chatmodel.ErrEmptyQuery
	}

	translated, err := s.generator.Run(ctx, prompt.BuildTranslation(text, target), "")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(translated), nil
}
