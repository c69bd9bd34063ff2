package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"

	redis "github.com/redis/go-redis/v9"
)

const defaultReportTTL = 30 * 24 * time.Hour

// RedisReportCache stores serialized daily reports under caller-provided keys.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IReportCache = (*RedisReportCache)(nil)

// NewRedisClient returns nil when addr is empty, which disables caching.
func NewRedisClient(addr, password string, db int) *redis.Client {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(password),
		DB:       db,
	})
}

func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	if ttl <= 0 {
		ttl = defaultReportTTL
	}
	return &RedisReportCache{client: client, ttl: ttl}
}

func (c *RedisReportCache) GetReport(ctx context.Context, key string) (entities.DailyReport, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.DailyReport{}, false, nil
	}
	if err != nil {
		return entities.DailyReport{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var report entities.DailyReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return entities.DailyReport{}, false, fmt.Errorf("decode cached report %s: %w", key, err)
	}
	return report, true, nil
}

func (c *RedisReportCache) PutReport(ctx context.Context, key string, report entities.DailyReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
