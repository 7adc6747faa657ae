package repository

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/abyssmaljib/irene-training/internal/store"
)

// configCacheTTL keeps admin edits visible within a minute while sparing
// the DB one round-trip per request.
const configCacheTTL = 60 * time.Second

// cachedValue distinguishes a cached "key absent" from a cache miss.
type cachedValue struct {
	Value string `json:"value"`
}

// CachedAIConfigRepo wraps an AIConfigRepo with a KV (Redis) cache.
// Cache errors degrade to the underlying repo, never to the caller.
type CachedAIConfigRepo struct {
	inner  AIConfigRepo
	kv     store.KV
	logger *zap.Logger
}

func NewCachedAIConfigRepo(inner AIConfigRepo, kv store.KV, logger *zap.Logger) *CachedAIConfigRepo {
	return &CachedAIConfigRepo{inner: inner, kv: kv, logger: logger}
}

var _ AIConfigRepo = (*CachedAIConfigRepo)(nil)

func (r *CachedAIConfigRepo) GetValue(ctx context.Context, key string) (string, error) {
	cacheKey := "ai-config:" + key

	if raw, err := r.kv.Get(ctx, cacheKey); err == nil {
		var cached cachedValue
		if json.Unmarshal([]byte(raw), &cached) == nil {
			return cached.Value, nil
		}
	} else if err != store.ErrMiss {
		r.logger.Warn("ai config cache read failed", zap.String("key", key), zap.Error(err))
	}

	value, err := r.inner.GetValue(ctx, key)
	if err != nil {
		return "", err
	}

	if raw, err := json.Marshal(cachedValue{Value: value}); err == nil {
		if err := r.kv.Set(ctx, cacheKey, string(raw), configCacheTTL); err != nil {
			r.logger.Warn("ai config cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return value, nil
}
