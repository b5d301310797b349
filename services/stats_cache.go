package services

import (
	"context"
	"fmt"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// StatsCache is a Redis-backed TTL cache for upstream payloads. It
// stands in for a time-based fetch cache: within the TTL window the
// stored JSON is served without touching the upstream. A nil
// *StatsCache is valid and disables caching entirely.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(redisURL string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &StatsCache{client: client, ttl: ttl}, nil
}

// CalendarKey is the cache key for the contribution calendar. There is
// only one profile owner, so the key carries no identity.
func CalendarKey() string {
	return "github:calendar"
}

// StatsKey is the cache key for one range of time-tracking stats.
func StatsKey(r model.Range) string {
	return fmt.Sprintf("wakatime:stats:%s", r)
}

// Get returns the cached payload for key, or false on a miss. Cache
// errors are logged and treated as misses so the upstream path still
// works when Redis is unhappy.
func (sc *StatsCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if sc == nil {
		return nil, false
	}
	data, err := sc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache read failed")
		return nil, false
	}
	return data, true
}

// Set stores a payload under key for the configured TTL. Failures are
// logged and swallowed; caching is best effort.
func (sc *StatsCache) Set(ctx context.Context, key string, payload []byte) {
	if sc == nil {
		return
	}
	if err := sc.client.Set(ctx, key, payload, sc.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

func (sc *StatsCache) IsConnected() bool {
	if sc == nil || sc.client == nil {
		return false
	}
	return sc.client.Ping(context.Background()).Err() == nil
}

func (sc *StatsCache) Close() error {
	if sc == nil || sc.client == nil {
		return nil
	}
	return sc.client.Close()
}
