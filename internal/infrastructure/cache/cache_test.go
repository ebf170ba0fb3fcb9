package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "account:session:abc", SessionKey("abc"))
	assert.Equal(t, "feature:view:f1", featureKey("f1"))
}

func TestNewFeatureCache_DefaultTTL(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer func() { _ = rdb.Close() }()

	assert.Equal(t, 10*time.Minute, NewFeatureCache(rdb, 0).ttl)
	assert.Equal(t, time.Minute, NewFeatureCache(rdb, time.Minute).ttl)
}

func TestSessionStore_UnreachableRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer func() { _ = rdb.Close() }()

	_, ok, err := NewSessionStore(rdb).Get(context.Background(), "abc")
	require.Error(t, err)
	assert.False(t, ok)
}
