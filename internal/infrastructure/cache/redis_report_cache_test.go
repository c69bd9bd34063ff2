package cache

import (
	"context"
	"testing"
	"time"

	"thirupugazh_pos/internal/domain/entities"

	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_DisabledWithoutAddr(t *testing.T) {
	assert.Nil(t, NewRedisClient("  ", "", 0))

	client := NewRedisClient("localhost:6379", "", 2)
	require.NotNil(t, client)
	assert.Equal(t, 2, client.Options().DB)
	_ = client.Close()
}

func TestNewRedisReportCache_DefaultTTL(t *testing.T) {
	c := NewRedisReportCache(nil, 0)
	assert.Equal(t, defaultReportTTL, c.ttl)
	assert.Equal(t, time.Hour, NewRedisReportCache(nil, time.Hour).ttl)
}

func TestRedisReportCache_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	c := NewRedisReportCache(client, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, ok, err := c.GetReport(ctx, "report:daily:2026-10-16")
	assert.Error(t, err)
	assert.False(t, ok)

	err = c.PutReport(ctx, "report:daily:2026-10-16", entities.DailyReport{From: "2026-10-16", To: "2026-10-16"})
	assert.Error(t, err)
}
