package cache

import (
	"context"
	"encoding/json"

	"github.com/sapatmohit/smart-farming-ai-agent/internal/config"
	"github.com/sapatmohit/smart-farming-ai-agent/internal/data/redisStore"
	chatmodel "github.com/sapatmohit/smart-farming-ai-agent/internal/domain/chatModel"
	"github.com/sapatmohit/smart-farming-ai-agent/pkg/logger_i"
)

type RedisAnswerCache struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisAnswerCache returns nil when Redis is offline - callers fall
// back to the in-memory cache, same as the rest of the stack does.
func GetRedisAnswerCache(ctx context.Context) *RedisAnswerCache {
	store := redisStore.GetRedisStore(ctx, config.RedisAnswerCacheDB)
	if store == nil {
		return nil
	}
	return &RedisAnswerCache{
		store:  store,
		logger: logger_i.NewLogger("AnswerCache"),
	}
}

func (c *RedisAnswerCache) Get(ctx context.Context, query string, lang chatmodel.LanguageCode) (CachedAnswer, bool) {
	var answer CachedAnswer
	val, err := c.store.Get(ctx, cacheKey(query, lang))
	if c.store.IsNil(err) {
		return answer, false
	} else if err != nil {
		c.logger.Error("Cache lookup failed", "error", err)
		return answer, false
	}

	if err := json.Unmarshal([]byte(val), &answer); err != nil {
		c.logger.Error("Corrupt cache entry, ignoring", "error", err)
		return answer, false
	}
	return answer, true
}

func (c *RedisAnswerCache) Save(ctx context.Context, query string, lang chatmodel.LanguageCode, answer CachedAnswer) error {
	data, err := json.Marshal(answer)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, cacheKey(query, lang), data, config.RedisAnswerCacheTTL)
}

// TestAnswerCache wires an externally constructed store, for tests
func TestAnswerCache(store *redisStore.Store) *RedisAnswerCache {
	return &RedisAnswerCache{
		store:  store,
		logger: logger_i.NewLogger("test answer cache"),
	}
}
