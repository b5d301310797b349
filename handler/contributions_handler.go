package handler

import (
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ContributionsHandler struct {
	fetcher CalendarFetcher
	cache   StatsCache
}

func NewContributionsHandler(fetcher CalendarFetcher, cache StatsCache) *ContributionsHandler {
	return &ContributionsHandler{
		fetcher: fetcher,
		cache:   cache,
	}
}

// GetContributions proxies the contribution calendar. No parameters:
// the profile owner is fixed configuration.
func (h *ContributionsHandler) GetContributions(c *gin.Context) {
	calendar, err := loadCalendar(c.Request.Context(), h.fetcher, h.cache)
	if err != nil {
		adapterFailure(c, "github", err)
		return
	}
	utils.Success(c, calendar)
}
