package handler

import (
	"net/http"
	"sync"

	"main/dto"
	"main/model"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	owner    string
	calendar CalendarFetcher
	stats    StatsFetcher
	cache    StatsCache
}

func NewDashboardHandler(owner string, calendar CalendarFetcher, stats StatsFetcher, cache StatsCache) *DashboardHandler {
	return &DashboardHandler{
		owner:    owner,
		calendar: calendar,
		stats:    stats,
		cache:    cache,
	}
}

// GetDashboard renders the portfolio page. Both sources are fetched
// concurrently and fail independently: a broken upstream turns its own
// section into a static message and leaves the other alone.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	r := model.ParseRange(c.Query("range"))

	var (
		wg          sync.WaitGroup
		calendar    model.ContributionCalendar
		calendarErr error
		stats       model.WakaStats
		statsErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		calendar, calendarErr = loadCalendar(ctx, h.calendar, h.cache)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = loadStats(ctx, h.stats, h.cache, r)
	}()
	wg.Wait()

	view := dto.DashboardView{
		Owner:       h.owner,
		ActiveRange: r,
		Ranges:      dto.RangeOptions(r),
	}

	if calendarErr != nil {
		logrus.WithField("request_id", c.GetString("request_id")).
			WithError(calendarErr).Error("dashboard: contribution calendar unavailable")
		view.CalendarFailed = true
	} else {
		view.Calendar = dto.ToCalendarView(calendar)
	}

	if statsErr != nil {
		logrus.WithField("request_id", c.GetString("request_id")).
			WithError(statsErr).Error("dashboard: time-tracking stats unavailable")
		view.StatsFailed = true
	} else {
		view.Stats = dto.ToStatsView(stats)
	}

	c.HTML(http.StatusOK, "index.html", view)
}
