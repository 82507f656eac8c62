package orchestrator_test

import (
	"context"

	"github.com/sapatmohit/smart-farming-ai-agent/internal/cache"
	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/generation"
)

// MockProvider implements generation.Provider
type MockProvider struct {
	// Control fields to simulate different behaviors
	OnGenerate func(ctx context.Context, req generation.Request) (string, error)
	OnRun      func(ctx context.Context, promptText string, image string) (string, error)
}

func (m *MockProvider) Generate(ctx context.Context, req generation.Request) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, req)
	}
	return "mocked answer", nil
}

func (m *MockProvider) Run(ctx context.Context, promptText string, image string) (string, error) {
	if m.OnRun != nil {
		return m.OnRun(ctx, promptText, image)
	}
	return "mocked output", nil
}

// MockAnswerCache implements cache.AnswerCache
type MockAnswerCache struct {
	OnGet  func(ctx context.Context, query string, lang chatmodel.LanguageCode) (cache.CachedAnswer, bool)
	OnSave func(ctx context.Context, query string, lang chatmodel.LanguageCode, answer cache.CachedAnswer) error
}

func (m *MockAnswerCache) Get(ctx context.Context, query string, lang chatmodel.LanguageCode) (cache.CachedAnswer, bool) {
	if m.OnGet != nil {
		return m.OnGet(ctx, query, lang)
	}
	return cache.CachedAnswer{}, false
}

func (m *MockAnswerCache) Save(ctx context.Context, query string, lang chatmodel.LanguageCode, answer cache.CachedAnswer) error {
	if m.OnSave != nil {
		return m.OnSave(ctx, query, lang, answer)
	}
	return nil
}
