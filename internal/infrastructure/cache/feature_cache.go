package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-ddd-resource-api/internal/application"
	"github.com/oksasatya/go-ddd-resource-api/internal/domain/view"
	"github.com/oksasatya/go-ddd-resource-api/pkg/helpers"
)

const featureListKey = "feature:list"

func featureKey(id string) string { return "feature:view:" + id }

// FeatureCache stores feature views as JSON strings.
type FeatureCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewFeatureCache(rdb *redis.Client, ttl time.Duration) *FeatureCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &FeatureCache{rdb: rdb, ttl: ttl}
}

var _ application.FeatureCache = (*FeatureCache)(nil)

func (c *FeatureCache) GetFeature(ctx context.Context, id string) (view.Feature, bool, error) {
	var v view.Feature
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, featureKey(id), &v)
	return v, ok, err
}

func (c *FeatureCache) SetFeature(ctx context.Context, v view.Feature) error {
	return helpers.RedisSetJSON(ctx, c.rdb, featureKey(v.IDFeature), v, c.ttl)
}

func (c *FeatureCache) GetList(ctx context.Context) ([]view.Feature, bool, error) {
	var vs []view.Feature
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, featureListKey, &vs)
	return vs, ok, err
}

func (c *FeatureCache) SetList(ctx context.Context, vs []view.Feature) error {
	return helpers.RedisSetJSON(ctx, c.rdb, featureListKey, vs, c.ttl)
}

// Invalidate always drops the list; ids name individual views to drop too.
func (c *FeatureCache) Invalidate(ctx context.Context, ids ...string) error {
	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, featureListKey)
	for _, id := range ids {
		keys = append(keys, featureKey(id))
	}
	return helpers.RedisDel(ctx, c.rdb, keys...)
}
