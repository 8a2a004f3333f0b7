package cache_test

import (
	"context"
	"errors"
	"slotbook/shared/cache"
	"slotbook/shared/cache/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:date:2026-10-19", cache.BuildCacheKey("booking", "date", "2026-10-19"))
	assert.Equal(t, "limiter", cache.BuildCacheKey("limiter"))
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	noop := cache.NewNoopCache()

	assert.NoError(t, noop.Save(ctx, "k", 1, 10))

	var value int
	assert.ErrorIs(t, noop.Get(ctx, "k", &value), cache.Nil)
	assert.Zero(t, value)
	assert.NoError(t, noop.Delete(ctx, "k"))
	assert.NoError(t, noop.Clear(ctx, "k*"))

	count, err := noop.Increment(ctx, "k", 10)
	assert.ErrorIs(t, err, cache.Nil)
	assert.Zero(t, count)
}

func TestInvalidateCaches(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	gomock.InOrder(
		redisCache.EXPECT().Delete(ctx, "a").Return(errors.New("redis down")),
		redisCache.EXPECT().Delete(ctx, "b").Return(nil),
	)

	cache.InvalidateCaches(ctx, redisCache, "a", "b")
}
