package handler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"main/model"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var errTest = errors.New("boom")

type stubCalendarFetcher struct {
	calls    int64
	calendar model.ContributionCalendar
	err      error
}

func (s *stubCalendarFetcher) FetchCalendar(ctx context.Context) (model.ContributionCalendar, error) {
	atomic.AddInt64(&s.calls, 1)
	return s.calendar, s.err
}

type stubStatsFetcher struct {
	calls     int64
	lastRange atomic.Value
	stats     model.WakaStats
	err       error
}

func (s *stubStatsFetcher) FetchStats(ctx context.Context, r model.Range) (model.WakaStats, error) {
	atomic.AddInt64(&s.calls, 1)
	s.lastRange.Store(r)
	return s.stats, s.err
}

type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.store[key]
	return data, ok
}

func (f *fakeCache) Set(ctx context.Context, key string, payload []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = payload
}

func testCalendar() model.ContributionCalendar {
	return model.ContributionCalendar{
		TotalContributions: 7,
		Weeks: []model.ContributionWeek{
			{ContributionDays: []model.ContributionDay{
				{Count: 2, Date: "2025-06-01", Color: "#9be9a8", Weekday: 0},
				{Count: 5, Date: "2025-06-02", Color: "#26a641", Weekday: 1},
			}},
		},
	}
}

func testStats() model.WakaStats {
	return model.WakaStats{
		TotalSeconds:       3600,
		HumanReadableTotal: "1 hr",
		Languages: []model.LanguageStat{
			{Name: "Go", TotalSeconds: 3000, Percent: 83.3},
			{Name: "Rust", TotalSeconds: 600, Percent: 16.7},
		},
	}
}
