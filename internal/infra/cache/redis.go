package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"carwash-booking/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// AvailabilityCache keeps computed slot lists for a short TTL. Failures are
// logged and treated as cache misses so Redis outages never break reads.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(cfg config.RedisConfig) (*AvailabilityCache, func()) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	cache := &AvailabilityCache{
		client: client,
		ttl:    cfg.AvailableTimesTTL,
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return cache, cleanup
}

func (c *AvailabilityCache) GetAvailableTimes(ctx context.Context, carWashID, serviceID uuid.UUID, date time.Time) ([]string, bool) {
	data, err := c.client.Get(ctx, availableTimesKey(carWashID, serviceID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("redis get failed", "error", err.Error())
		}
		return nil, false
	}

	var times []string
	if err := json.Unmarshal(data, &times); err != nil {
		slog.Warn("failed to decode cached available times", "error", err.Error())
		return nil, false
	}
	return times, true
}

func (c *AvailabilityCache) SetAvailableTimes(ctx context.Context, carWashID, serviceID uuid.UUID, date time.Time, times []string) {
	payload, err := json.Marshal(times)
	if err != nil {
		slog.Warn("failed to encode available times", "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, availableTimesKey(carWashID, serviceID, date), payload, c.ttl).Err(); err != nil {
		slog.Warn("redis set failed", "error", err.Error())
	}
}

// InvalidateDay drops every cached slot list for the car wash on the date.
// Keys are per service, hence the pattern scan.
func (c *AvailabilityCache) InvalidateDay(ctx context.Context, carWashID uuid.UUID, date time.Time) {
	pattern := fmt.Sprintf("cache:slots:%s:*:%s", carWashID, date.Format("2006-01-02"))

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("redis scan failed", "error", err.Error())
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("redis del failed", "error", err.Error())
	}
}

func availableTimesKey(carWashID, serviceID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("cache:slots:%s:%s:%s", carWashID, serviceID, date.Format("2006-01-02"))
}
