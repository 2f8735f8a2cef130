package apikeys

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// package-level Redis client used as an optional secret->key lookup cache.
// Authentication happens on every protected request, so a short-lived cache
// spares the keys collection a FindOne per request.
var cacheClient *redis.Client

const (
	cachePrefix = "apikey:secret:"
	cacheTTL    = 30 * time.Second
)

// SetCacheClient configures the Redis client used for key lookup caching.
// Safe to call with nil to disable caching.
func SetCacheClient(c *redis.Client) {
	cacheClient = c
}

func cacheGet(ctx context.Context, secret string) (*Key, bool) {
	if cacheClient == nil {
		return nil, false
	}
	b, err := cacheClient.Get(ctx, cachePrefix+secret).Bytes()
	if err != nil {
		return nil, false
	}
	var k Key
	if err := json.Unmarshal(b, &k); err != nil {
		return nil, false
	}
	return &k, true
}

func cachePut(ctx context.Context, k *Key) {
	if cacheClient == nil {
		return
	}
	b, err := json.Marshal(k)
	if err != nil {
		return
	}
	_ = cacheClient.Set(ctx, cachePrefix+k.Secret, b, cacheTTL).Err()
}

func cacheDel(ctx context.Context, secret string) {
	if cacheClient == nil {
		return
	}
	_ = cacheClient.Del(ctx, cachePrefix+secret).Err()
}
