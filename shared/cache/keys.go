package cache

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

const keySeparator = ":"

// BuildCacheKey joins parts into a namespaced key, e.g. booking:date:2026-10-19.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, keySeparator)
}

// InvalidateCaches deletes every key. Failures are logged, not returned; a stale entry still
// expires with its TTL.
func InvalidateCaches(ctx context.Context, cache RedisCache, keys ...string) {
	for _, key := range keys {
		if err := cache.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to invalidate cache")
		}
	}
}
