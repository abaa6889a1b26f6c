package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedisProviderDefaultTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	p := NewRedisProvider("redis://"+mr.Addr(), zap.NewNop(), time.Minute)
	defer p.Close()

	ctx := context.Background()
	require.NoError(t, p.SetEX(ctx, "k1", "v1", p.TTL(0)).Err())
	require.NoError(t, p.SetEX(ctx, "k2", "v2", p.TTL(10*time.Second)).Err())

	assert.Equal(t, time.Minute, mr.TTL("k1"))
	assert.Equal(t, 10*time.Second, mr.TTL("k2"))

	v, err := p.Get(ctx, "k1").Result()
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	n, err := p.Del(ctx, "k1", "k2").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.False(t, mr.Exists("k1"))
}

func TestRedisProviderAcceptsBareAddress(t *testing.T) {
	mr := miniredis.RunT(t)
	p := NewRedisProvider(mr.Addr(), zap.NewNop(), time.Minute)
	defer p.Close()

	require.NoError(t, p.SetEX(context.Background(), "k", "v", time.Second).Err())
	assert.True(t, mr.Exists("k"))
}

func TestRedisProviderTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	p := NewRedisProvider(mr.Addr(), zap.NewNop(), time.Minute)
	defer p.Close()

	assert.Equal(t, time.Minute, p.TTL(0))
	assert.Equal(t, time.Minute, p.TTL(-time.Second))
	assert.Equal(t, 5*time.Second, p.TTL(5*time.Second))
}

func TestRedisProviderMissIsNotLoggedAsFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	core, logs := observer.New(zap.DebugLevel)
	p := NewRedisProvider(mr.Addr(), zap.New(core), time.Minute)
	defer p.Close()

	_, err := p.Get(context.Background(), "comments:thread:none").Result()
	require.ErrorIs(t, err, redis.Nil)

	assert.Zero(t, logs.FilterMessage("Cache command failed").Len())
	entries := logs.FilterMessage("Cache command").All()
	require.NotEmpty(t, entries)
	assert.Equal(t, "comments:thread:none", entries[len(entries)-1].ContextMap()["key"])
}
