package handler

import (
	"context"
	"encoding/json"
	"time"

	"main/middleware"
	"main/model"
	"main/services"
)

// CalendarFetcher is what the contribution endpoints need from the
// GitHub adapter.
type CalendarFetcher interface {
	FetchCalendar(ctx context.Context) (model.ContributionCalendar, error)
}

// StatsFetcher is what the time-tracking endpoints need from the
// WakaTime adapter.
type StatsFetcher interface {
	FetchStats(ctx context.Context, r model.Range) (model.WakaStats, error)
}

// StatsCache is the TTL cache the handlers consult before going
// upstream. A nil cache disables caching.
type StatsCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
}

// loadCalendar serves the calendar from cache when possible and falls
// through to the upstream on a miss. Within the cache TTL repeated
// requests make zero upstream calls.
func loadCalendar(ctx context.Context, fetcher CalendarFetcher, cache StatsCache) (model.ContributionCalendar, error) {
	if cache != nil {
		if data, ok := cache.Get(ctx, services.CalendarKey()); ok {
			var calendar model.ContributionCalendar
			if err := json.Unmarshal(data, &calendar); err == nil {
				middleware.TrackCacheHit("github")
				return calendar, nil
			}
		}
		middleware.TrackCacheMiss("github")
	}

	start := time.Now()
	calendar, err := fetcher.FetchCalendar(ctx)
	if err != nil {
		return calendar, err
	}
	middleware.TrackUpstreamRequest("github", "success", time.Since(start))

	if cache != nil {
		if data, err := json.Marshal(calendar); err == nil {
			cache.Set(ctx, services.CalendarKey(), data)
		}
	}
	return calendar, nil
}

// loadStats is the cache-aware counterpart for the time-tracking
// upstream, keyed per range.
func loadStats(ctx context.Context, fetcher StatsFetcher, cache StatsCache, r model.Range) (model.WakaStats, error) {
	key := services.StatsKey(r)

	if cache != nil {
		if data, ok := cache.Get(ctx, key); ok {
			var stats model.WakaStats
			if err := json.Unmarshal(data, &stats); err == nil {
				middleware.TrackCacheHit("wakatime")
				return stats, nil
			}
		}
		middleware.TrackCacheMiss("wakatime")
	}

	start := time.Now()
	stats, err := fetcher.FetchStats(ctx, r)
	if err != nil {
		return stats, err
	}
	middleware.TrackUpstreamRequest("wakatime", "success", time.Since(start))

	if cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			cache.Set(ctx, key, data)
		}
	}
	return stats, nil
}
