package cache

import (
	"context"
	"sync"

	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
	"github.com/sapatmohit/smart-farming-ai-agent/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem AnswerCache")

// InMemoryAnswerCache covers single-instance deployments and the
// Redis-offline fallback path. No TTL - process restart clears it.
type InMemoryAnswerCache struct {
	mutex   *sync.RWMutex
	answers map[string]CachedAnswer
}

func InitInMemoryAnswerCache() *InMemoryAnswerCache {
	return &InMemoryAnswerCache{
		mutex:   new(sync.RWMutex),
		answers: make(map[string]CachedAnswer),
	}
}

func (c *InMemoryAnswerCache) Get(ctx context.Context, query string, lang chatmodel.LanguageCode) (CachedAnswer, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	answer, found := c.answers[cacheKey(query, lang)]
	return answer, found
}

func (c *InMemoryAnswerCache) Save(ctx context.Context, query string, lang chatmodel.LanguageCode, answer CachedAnswer) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.answers[cacheKey(query, lang)] = answer
	inMemLogger.Debug("Saved answer to in-memory cache")
	return nil
}
